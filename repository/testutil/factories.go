package testutil

import (
	"lotofacil/domain/entities"
)

// CreateTestDrawResult builds a valid draw: the fifteen numbers starting at offset, wrapping past 25
func CreateTestDrawResult(contestID, offset int) *entities.DrawResult {
	numbers := make([]int, 0, entities.DrawSize)
	for i := 0; i < entities.DrawSize; i++ {
		numbers = append(numbers, (offset+i)%entities.UniverseSize+1)
	}
	draw, err := entities.NewDrawResult(contestID, "01/02/2024", numbers...)
	if err != nil {
		panic(err)
	}
	return draw
}

// CreateTestTicket builds a generated fifteen-number ticket
func CreateTestTicket(mode entities.GenerationMode, numbers ...int) *entities.Ticket {
	if len(numbers) == 0 {
		numbers = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	}
	return entities.NewGeneratedTicket(mode, entities.NewNumberSet(numbers...))
}

// CreateTestManualTicket builds a labelled manual ticket
func CreateTestManualTicket(label string, numbers ...int) *entities.Ticket {
	if len(numbers) == 0 {
		numbers = []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25}
	}
	ticket, err := entities.NewManualTicket(label, numbers...)
	if err != nil {
		panic(err)
	}
	return ticket
}
