package cmd

import (
	"flag"
	"testing"

	"lotofacil/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "commas", input: "1,2,3", want: []int{1, 2, 3}},
		{name: "mixed separators", input: "4; 5 6,,7", want: []int{4, 5, 6, 7}},
		{name: "empty", input: "", want: []int{}},
		{name: "not a number", input: "1,x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseNumbers(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTicketNumbers(t *testing.T) {
	t.Parallel()

	set, err := parseTicketNumbers("15,14,13,12,11,10,9,8,7,6,5,4,3,2,1")
	require.NoError(t, err)
	assert.Equal(t, entities.NewNumberSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15), set)

	_, err = parseTicketNumbers("1,2,3")
	assert.ErrorIs(t, err, entities.ErrInvalidTicket)

	_, err = parseTicketNumbers("1,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15")
	assert.ErrorIs(t, err, entities.ErrInvalidTicket)

	_, err = parseTicketNumbers("1,2,3,4,5,6,7,8,9,10,11,12,13,14,26")
	assert.ErrorIs(t, err, entities.ErrInvalidTicket)
}

func TestConstraintFlags(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		parse := constraintFlags(fs)
		require.NoError(t, fs.Parse([]string{"-fixed", "3,1,2", "-exclude", "25", "-size", "16"}))

		constraints, err := parse()
		require.NoError(t, err)
		assert.Equal(t, entities.NumberSet{1, 2, 3}, constraints.Fixed)
		assert.Equal(t, entities.NumberSet{25}, constraints.Excluded)
		assert.Equal(t, 16, constraints.TargetSize)
	})

	t.Run("overlap rejected", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		parse := constraintFlags(fs)
		require.NoError(t, fs.Parse([]string{"-fixed", "1,2", "-exclude", "2"}))

		_, err := parse()
		assert.ErrorIs(t, err, entities.ErrInvalidConstraints)
	})
}

func TestUsageListsEveryCommand(t *testing.T) {
	usage := Usage()
	for name := range commands {
		assert.Contains(t, usage, name)
	}
	assert.Contains(t, usage, "migrate")
}
