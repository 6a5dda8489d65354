package ingestion

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"lotofacil/domain/entities"
)

var (
	datePattern    = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	integerPattern = regexp.MustCompile(`\d+`)
)

// parseRow recognises a result row: a contest number, a dd/mm/yyyy date and fifteen distinct
// numbers in 1..25, in that order. Cells hold one value each in exported spreadsheets; when they
// do not, the numbers are taken from the row text after the date.
func parseRow(cells []string) (*entities.DrawResult, bool) {
	dateIndex := -1
	date := ""
	for i, cell := range cells {
		if match := datePattern.FindString(cell); match != "" {
			dateIndex, date = i, match
			break
		}
	}
	if dateIndex == -1 {
		return nil, false
	}

	contestID := 0
	for _, cell := range cells[:dateIndex] {
		if n, ok := cellInt(cell); ok && n > 0 {
			contestID = n
			break
		}
	}
	if contestID == 0 {
		// the contest number may share the date's cell, e.g. "3000 - 01/02/2024"
		before := strings.SplitN(cells[dateIndex], date, 2)[0]
		if token := integerPattern.FindString(before); token != "" {
			contestID, _ = strconv.Atoi(token)
		}
	}
	if contestID <= 0 {
		return nil, false
	}

	balls := ballsFromCells(cells[dateIndex+1:])
	if len(balls) < entities.DrawSize {
		after := strings.SplitN(strings.Join(cells[dateIndex:], " "), date, 2)
		balls = ballsFromText(after[len(after)-1])
	}
	if len(balls) < entities.DrawSize {
		return nil, false
	}

	draw, err := entities.NewDrawResult(contestID, date, balls[:entities.DrawSize]...)
	if err != nil {
		return nil, false
	}
	return draw, true
}

// ballsFromCells collects distinct single-value cells in 1..25, in cell order
func ballsFromCells(cells []string) []int {
	seen := make(map[int]bool)
	var balls []int
	for _, cell := range cells {
		n, ok := cellInt(cell)
		if !ok || n < 1 || n > entities.UniverseSize || seen[n] {
			continue
		}
		seen[n] = true
		balls = append(balls, n)
	}
	return balls
}

// ballsFromText collects distinct integer tokens in 1..25 from free text
func ballsFromText(text string) []int {
	seen := make(map[int]bool)
	var balls []int
	for _, token := range integerPattern.FindAllString(text, -1) {
		n, err := strconv.Atoi(token)
		if err != nil || n < 1 || n > entities.UniverseSize || seen[n] {
			continue
		}
		seen[n] = true
		balls = append(balls, n)
	}
	return balls
}

func cellInt(cell string) (int, bool) {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ".", ""))
	if cell == "" {
		return 0, false
	}
	n, err := strconv.Atoi(cell)
	return n, err == nil
}

// newestFirst deduplicates by contest id (first occurrence wins) and sorts descending
func newestFirst(draws []*entities.DrawResult) []*entities.DrawResult {
	seen := make(map[int]bool, len(draws))
	out := make([]*entities.DrawResult, 0, len(draws))
	for _, draw := range draws {
		if seen[draw.ContestID] {
			continue
		}
		seen[draw.ContestID] = true
		out = append(out, draw)
	}
	slices.SortFunc(out, func(a, b *entities.DrawResult) int {
		return cmp.Compare(b.ContestID, a.ContestID)
	})
	return out
}
