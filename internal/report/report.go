package report

import "time"

// Dashboard is the shape the dashboards consume: every grouping cut
// over settled items, plus the two daily series. Pure composition over
// Aggregate; no logic of its own.
type Dashboard struct {
	Overall           Metrics       `json:"overall"`
	ByMarket          []Group       `json:"by_market"`
	ByStrategy        []Group       `json:"by_strategy"`
	ByCompetition     []Group       `json:"by_competition"`
	ByTeam            []Group       `json:"by_team"`
	ByEmotionalState  []Group       `json:"by_emotional_state"`
	ByEntryMotivation []Group       `json:"by_entry_motivation"`
	BySelfAssessment  []Group       `json:"by_self_assessment"`
	ByMonth           []Group       `json:"by_month"`
	Heatmap           []HeatmapCell `json:"heatmap"`
	Last30Days        []Group       `json:"last_30_days"`
	YearToDate        []Group       `json:"year_to_date"`
}

func BuildDashboard(items []Item, now time.Time) Dashboard {
	since30 := now.AddDate(0, 0, -30).Format("2006-01-02")
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	var last30, ytd []Item
	for _, item := range items {
		if item.MatchDate >= since30 {
			last30 = append(last30, item)
		}
		if item.MatchDate >= yearStart {
			ytd = append(ytd, item)
		}
	}

	return Dashboard{
		Overall:           Overall(items).Rounded(),
		ByMarket:          rounded(Aggregate(items, ByMarket)),
		ByStrategy:        rounded(Aggregate(items, ByStrategy)),
		ByCompetition:     rounded(Aggregate(items, ByCompetition)),
		ByTeam:            rounded(Aggregate(items, ByTeam)),
		ByEmotionalState:  rounded(Aggregate(items, ByEmotionalState)),
		ByEntryMotivation: rounded(Aggregate(items, ByEntryMotivation)),
		BySelfAssessment:  rounded(Aggregate(items, BySelfAssessment)),
		ByMonth:           rounded(Aggregate(items, ByMonth)),
		Heatmap:           roundedCells(MotivationAssessmentMatrix(items)),
		Last30Days:        rounded(Aggregate(last30, ByDay)),
		YearToDate:        rounded(Aggregate(ytd, ByDay)),
	}
}

func rounded(groups []Group) []Group {
	for i := range groups {
		groups[i].Metrics = groups[i].Metrics.Rounded()
	}
	return groups
}

func roundedCells(cells []HeatmapCell) []HeatmapCell {
	for i := range cells {
		cells[i].Metrics = cells[i].Metrics.Rounded()
	}
	return cells
}
