package services

import (
	"testing"

	"lotofacil/domain/entities"
	"lotofacil/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditTestGroups() entities.GroupConfig {
	return entities.GroupConfig{
		Primary:   entities.NumberGroup{Name: "A", Numbers: entities.Universe(15)},
		Secondary: entities.NumberGroup{Name: "B", Numbers: entities.Universe(25).Difference(entities.Universe(15))},
		Auxiliary: []entities.NumberGroup{
			{Name: "C", Numbers: entities.NewNumberSet(1, 2, 3, 4, 5)},
			{Name: "D", Numbers: entities.NewNumberSet(1, 2, 16, 17)},
		},
	}
}

func TestAuditGroups(t *testing.T) {
	low := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	high := []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25}
	history := entities.History{
		testhelpers.MustDraw(4, high...),
		testhelpers.MustDraw(3, low...),
		testhelpers.MustDraw(2, high...),
		testhelpers.MustDraw(1, high...),
	}
	draw := history[1]

	t.Run("window of two", func(t *testing.T) {
		audits := AuditGroups(draw, history, 2, auditTestGroups())
		require.Len(t, audits, 4)

		tests := []struct {
			want entities.GroupAudit
		}{
			{entities.GroupAudit{Name: "A", Size: 15, Hits: 15, Percent: 100, Heat: entities.GroupHot, WindowDraws: 2, WindowAverage: 10, WindowMax: 15}},
			{entities.GroupAudit{Name: "B", Size: 10, Hits: 0, Percent: 0, Heat: entities.GroupCold, WindowDraws: 2, WindowAverage: 5, WindowMax: 10, ZeroHitDraws: 1}},
			{entities.GroupAudit{Name: "C", Size: 5, Hits: 5, Percent: 100, Heat: entities.GroupHot, WindowDraws: 2, WindowAverage: 2.5, WindowMax: 5, ZeroHitDraws: 1}},
			{entities.GroupAudit{Name: "D", Size: 4, Hits: 2, Percent: 50, Heat: entities.GroupStable, WindowDraws: 2, WindowAverage: 2, WindowMax: 2}},
		}
		for i, tt := range tests {
			assert.Equal(t, tt.want, audits[i])
		}
	})

	t.Run("later draws are ignored and window 0 takes everything before", func(t *testing.T) {
		audits := AuditGroups(draw, history, 0, auditTestGroups())
		require.Len(t, audits, 4)

		assert.Equal(t, 3, audits[0].WindowDraws)
		assert.InDelta(t, 25.0/3, audits[0].WindowAverage, 1e-9)
		assert.InDelta(t, 20.0/3, audits[1].WindowAverage, 1e-9)
		assert.Equal(t, 1, audits[1].ZeroHitDraws)
	})

	t.Run("no history", func(t *testing.T) {
		audits := AuditGroups(draw, entities.History{}, 10, auditTestGroups())
		require.Len(t, audits, 4)
		assert.Equal(t, 15, audits[0].Hits)
		assert.Zero(t, audits[0].WindowDraws)
		assert.Zero(t, audits[0].WindowAverage)
	})
}

func TestGroupHeat(t *testing.T) {
	tests := []struct {
		percent int
		want    entities.GroupHeat
	}{
		{percent: 100, want: entities.GroupHot},
		{percent: 70, want: entities.GroupHot},
		{percent: 69, want: entities.GroupStable},
		{percent: 31, want: entities.GroupStable},
		{percent: 30, want: entities.GroupCold},
		{percent: 0, want: entities.GroupCold},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, groupHeat(tt.percent), "percent %d", tt.percent)
	}
}
