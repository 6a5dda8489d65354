package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDrawResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		contestID int
		numbers   []int
		wantErr   bool
	}{
		{
			name:      "valid draw",
			contestID: 3000,
			numbers:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		},
		{
			name:      "unsorted input is canonicalised",
			contestID: 3001,
			numbers:   []int{25, 24, 23, 22, 21, 20, 19, 18, 17, 16, 15, 14, 13, 12, 11},
		},
		{
			name:      "too few numbers",
			contestID: 3002,
			numbers:   []int{1, 2, 3},
			wantErr:   true,
		},
		{
			name:      "repeated number",
			contestID: 3003,
			numbers:   []int{1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
			wantErr:   true,
		},
		{
			name:      "out of range",
			contestID: 3004,
			numbers:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 26},
			wantErr:   true,
		},
		{
			name:      "non-positive contest",
			contestID: 0,
			numbers:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			draw, err := NewDrawResult(tt.contestID, "01/01/2024", tt.numbers...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDraw))
				assert.Nil(t, draw)
				return
			}
			require.NoError(t, err)
			assert.Len(t, draw.Numbers, DrawSize)
			assert.Equal(t, NewNumberSet(tt.numbers...), draw.Numbers)
		})
	}
}

func mustDraw(t *testing.T, contestID int, numbers ...int) *DrawResult {
	t.Helper()
	draw, err := NewDrawResult(contestID, "", numbers...)
	require.NoError(t, err)
	return draw
}

func TestHistory_Accessors(t *testing.T) {
	t.Parallel()

	history := History{
		mustDraw(t, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15),
		mustDraw(t, 11, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25),
		mustDraw(t, 10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 2, 4, 6),
	}

	assert.Equal(t, 12, history.Latest().ContestID)
	assert.Nil(t, History{}.Latest())
	assert.Len(t, history.Recent(2), 2)
	assert.Len(t, history.Recent(0), 3)
	assert.Len(t, history.Recent(10), 3)
	assert.Equal(t, 11, history.Previous(0).ContestID)
	assert.Nil(t, history.Previous(2))
	assert.Equal(t, 3, history.CountIn(11))
	assert.Equal(t, 1, history.CountIn(25))
}

func TestHistory_Gap(t *testing.T) {
	t.Parallel()

	history := History{
		mustDraw(t, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15),
		mustDraw(t, 11, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25),
		mustDraw(t, 10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 2, 4, 6),
	}

	tests := []struct {
		name      string
		number    int
		reference int
		want      int
	}{
		{name: "drawn in latest", number: 1, reference: 13, want: 0},
		{name: "drawn two contests back", number: 16, reference: 13, want: 1},
		{name: "drawn three contests back", number: 17, reference: 13, want: 1},
		{name: "reference excludes newer draws", number: 1, reference: 12, want: 1},
		{name: "only the oldest draw qualifies", number: 6, reference: 12, want: 1},
		{name: "never drawn before reference", number: 16, reference: 11, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, history.Gap(tt.number, tt.reference))
		})
	}
}
