package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGroupConfig() GroupConfig {
	return GroupConfig{
		Primary:   NumberGroup{Name: "A", Numbers: NewNumberSet(2, 3, 5, 6, 8, 9, 12, 13, 15, 16, 18, 19, 22, 23, 25)},
		Secondary: NumberGroup{Name: "B", Numbers: NewNumberSet(1, 4, 7, 10, 11, 14, 17, 20, 21, 24)},
		Auxiliary: []NumberGroup{
			{Name: "C", Numbers: NewNumberSet(1, 3, 6, 8, 11, 13, 16, 18, 21, 23)},
			{Name: "D", Numbers: NewNumberSet(1, 4, 6, 9, 11, 14, 16, 19, 21, 24)},
		},
	}
}

func TestGroupConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*GroupConfig)
		wantErr bool
	}{
		{name: "valid table", mutate: func(*GroupConfig) {}},
		{
			name:    "overlapping partition",
			mutate:  func(c *GroupConfig) { c.Secondary.Numbers = c.Secondary.Numbers.Union(NumberSet{2}) },
			wantErr: true,
		},
		{
			name:    "partition does not cover the universe",
			mutate:  func(c *GroupConfig) { c.Secondary.Numbers = c.Secondary.Numbers.Difference(NumberSet{24}) },
			wantErr: true,
		},
		{
			name:    "auxiliary out of range",
			mutate:  func(c *GroupConfig) { c.Auxiliary[0].Numbers = NumberSet{1, 26} },
			wantErr: true,
		},
		{
			name:    "unnamed group",
			mutate:  func(c *GroupConfig) { c.Auxiliary[1].Name = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testGroupConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidGroups))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGroupConfig_ValidateSplit(t *testing.T) {
	t.Parallel()

	smallPrimary := GroupConfig{
		Primary:   NumberGroup{Name: "A", Numbers: NewNumberSet(1, 2, 3, 4, 5, 6, 7, 8)},
		Secondary: NumberGroup{Name: "B", Numbers: Universe(UniverseSize).Difference(NewNumberSet(1, 2, 3, 4, 5, 6, 7, 8))},
	}
	smallSecondary := GroupConfig{
		Primary:   NumberGroup{Name: "A", Numbers: Universe(UniverseSize).Difference(NewNumberSet(20, 21, 22, 23, 24, 25))},
		Secondary: NumberGroup{Name: "B", Numbers: NewNumberSet(20, 21, 22, 23, 24, 25)},
	}

	tests := []struct {
		name      string
		cfg       GroupConfig
		primary   int
		secondary int
		wantErr   bool
	}{
		{name: "default table and split", cfg: testGroupConfig(), primary: 9, secondary: 6},
		{name: "primary too small for the split", cfg: smallPrimary, primary: 9, secondary: 6, wantErr: true},
		{name: "secondary has no spare member", cfg: smallSecondary, primary: 9, secondary: 6, wantErr: true},
		{name: "secondary fits a smaller share", cfg: smallSecondary, primary: 10, secondary: 5},
		{name: "split does not add up", cfg: testGroupConfig(), primary: 9, secondary: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NoError(t, tt.cfg.Validate())

			err := tt.cfg.ValidateSplit(tt.primary, tt.secondary)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGroups)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGroupConfig_MembershipCount(t *testing.T) {
	t.Parallel()

	cfg := testGroupConfig()

	assert.Equal(t, 2, cfg.MembershipCount(1))
	assert.Equal(t, 1, cfg.MembershipCount(3))
	assert.Equal(t, 0, cfg.MembershipCount(2))
}
