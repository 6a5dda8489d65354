package services

import (
	"math"

	"lotofacil/domain/entities"
)

const (
	hotGroupPercent  = 70
	coldGroupPercent = 30
)

// AuditGroups measures every configured group against draw, and against the window draws up to
// and including it found in history (all of them when window <= 0)
func AuditGroups(draw *entities.DrawResult, history entities.History, window int, groups entities.GroupConfig) []entities.GroupAudit {
	analysed := make(entities.History, 0, len(history))
	for _, d := range history {
		if d.ContestID <= draw.ContestID {
			analysed = append(analysed, d)
		}
	}
	analysed = analysed.Recent(window)

	audits := make([]entities.GroupAudit, 0, len(groups.Auxiliary)+2)
	for _, group := range groups.All() {
		audit := entities.GroupAudit{
			Name:        group.Name,
			Size:        len(group.Numbers),
			Hits:        draw.Numbers.IntersectCount(group.Numbers),
			WindowDraws: len(analysed),
		}
		if audit.Size > 0 {
			audit.Percent = int(math.Round(float64(audit.Hits) * 100 / float64(audit.Size)))
		}
		audit.Heat = groupHeat(audit.Percent)

		total := 0
		for _, d := range analysed {
			hits := d.Numbers.IntersectCount(group.Numbers)
			total += hits
			audit.WindowMax = max(audit.WindowMax, hits)
			if hits == 0 {
				audit.ZeroHitDraws++
			}
		}
		if len(analysed) > 0 {
			audit.WindowAverage = float64(total) / float64(len(analysed))
		}

		audits = append(audits, audit)
	}
	return audits
}

func groupHeat(percent int) entities.GroupHeat {
	switch {
	case percent >= hotGroupPercent:
		return entities.GroupHot
	case percent <= coldGroupPercent:
		return entities.GroupCold
	}
	return entities.GroupStable
}
