// Package report holds the pure aggregation core: grouped financial
// metrics over operation items, the dashboard assembly, and the annual
// summary fold. Nothing in here touches storage.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"betdiary/internal/repository"
)

var hundred = decimal.NewFromInt(100)

// Item is one operation item flattened with the labels the aggregator
// groups by. Result stays nil for unsettled legs; unsettled legs count
// toward Count and StakeTotal but contribute zero profit.
type Item struct {
	Stake              decimal.Decimal
	Result             *decimal.Decimal
	MarketName         string
	StrategyName       string
	StrategyMarketName string
	CompetitionName    string
	HomeTeamName       string
	AwayTeamName       string
	MatchDate          string // "2006-01-02"
	EmotionalState     string
	EntryMotivation    string
	SelfAssessment     string
}

func FromDetail(d repository.ItemDetail) Item {
	return Item{
		Stake:              d.Stake,
		Result:             d.FinancialResult,
		MarketName:         d.MarketName,
		StrategyName:       d.StrategyName,
		StrategyMarketName: d.StrategyMarketName,
		CompetitionName:    d.CompetitionName,
		HomeTeamName:       d.HomeTeamName,
		AwayTeamName:       d.AwayTeamName,
		MatchDate:          d.MatchDate,
		EmotionalState:     d.EmotionalState,
		EntryMotivation:    d.EntryMotivation,
		SelfAssessment:     d.SelfAssessment,
	}
}

func FromDetails(details []repository.ItemDetail) []Item {
	items := make([]Item, 0, len(details))
	for _, d := range details {
		items = append(items, FromDetail(d))
	}
	return items
}

type Metrics struct {
	Profit     decimal.Decimal `json:"profit"`
	StakeTotal decimal.Decimal `json:"stake_total"`
	ROI        decimal.Decimal `json:"roi"`
	Count      int             `json:"count"`
	Wins       int             `json:"wins"`
	HitRate    decimal.Decimal `json:"hit_rate"`
}

func (m Metrics) add(item Item) Metrics {
	m.StakeTotal = m.StakeTotal.Add(item.Stake)
	m.Count++
	if item.Result != nil {
		m.Profit = m.Profit.Add(*item.Result)
		if item.Result.IsPositive() {
			m.Wins++
		}
	}
	return m
}

// finalize computes the ratios. Zero stake means ROI 0, never a
// division error; same guard for an empty group's hit rate.
func (m Metrics) finalize() Metrics {
	if m.StakeTotal.IsPositive() {
		m.ROI = m.Profit.Div(m.StakeTotal).Mul(hundred)
	} else {
		m.ROI = decimal.Zero
	}
	if m.Count > 0 {
		m.HitRate = decimal.NewFromInt(int64(m.Wins)).
			Div(decimal.NewFromInt(int64(m.Count))).
			Mul(hundred)
	} else {
		m.HitRate = decimal.Zero
	}
	return m
}

// Rounded returns a display copy with money and percentages at 2dp.
func (m Metrics) Rounded() Metrics {
	m.Profit = m.Profit.Round(2)
	m.StakeTotal = m.StakeTotal.Round(2)
	m.ROI = m.ROI.Round(2)
	m.HitRate = m.HitRate.Round(2)
	return m
}

// GroupRef identifies the group(s) an item belongs to under a given
// dimension. Most dimensions map an item to exactly one group; the
// by-team cut maps it to two (home and away).
type GroupRef struct {
	Key    string
	Label  string
	Detail string
}

type KeyFunc func(Item) []GroupRef

type Group struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Detail string `json:"detail,omitempty"`
	Metrics
}

// Aggregate folds items into per-group metrics. Groups come back sorted
// by key for stable output. An item with a missing label still lands in
// a group (the empty-labelled one) so totals are preserved.
func Aggregate(items []Item, keyFn KeyFunc) []Group {
	acc := map[string]*Group{}
	for _, item := range items {
		for _, ref := range keyFn(item) {
			g, ok := acc[ref.Key]
			if !ok {
				g = &Group{Key: ref.Key, Label: ref.Label, Detail: ref.Detail}
				acc[ref.Key] = g
			}
			g.Metrics = g.Metrics.add(item)
		}
	}
	groups := make([]Group, 0, len(acc))
	for _, g := range acc {
		g.Metrics = g.Metrics.finalize()
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

func single(key string) []GroupRef {
	return []GroupRef{{Key: key, Label: key}}
}

func ByMarket(item Item) []GroupRef {
	return single(item.MarketName)
}

// ByStrategy keeps the strategy's market name attached for display.
func ByStrategy(item Item) []GroupRef {
	return []GroupRef{{
		Key:    item.StrategyName + "\x00" + item.StrategyMarketName,
		Label:  item.StrategyName,
		Detail: item.StrategyMarketName,
	}}
}

func ByCompetition(item Item) []GroupRef {
	return single(item.CompetitionName)
}

// ByTeam contributes the item to both sides of its match. Degraded
// lookups can leave both sides with the same empty label; the item must
// not fold into that one group twice.
func ByTeam(item Item) []GroupRef {
	refs := []GroupRef{{Key: item.HomeTeamName, Label: item.HomeTeamName}}
	if item.AwayTeamName != item.HomeTeamName {
		refs = append(refs, GroupRef{Key: item.AwayTeamName, Label: item.AwayTeamName})
	}
	return refs
}

func ByEmotionalState(item Item) []GroupRef {
	return single(item.EmotionalState)
}

func ByEntryMotivation(item Item) []GroupRef {
	return single(item.EntryMotivation)
}

func BySelfAssessment(item Item) []GroupRef {
	return single(item.SelfAssessment)
}

func ByDay(item Item) []GroupRef {
	return single(item.MatchDate)
}

func ByMonth(item Item) []GroupRef {
	return single(monthOf(item.MatchDate))
}

func ByYear(item Item) []GroupRef {
	return single(yearOf(item.MatchDate))
}

func monthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// Overall computes the metrics of the whole item set.
func Overall(items []Item) Metrics {
	var m Metrics
	for _, item := range items {
		m = m.add(item)
	}
	return m.finalize()
}

// HeatmapCell is one cell of the entry-motivation x self-assessment
// matrix.
type HeatmapCell struct {
	EntryMotivation string `json:"entry_motivation"`
	SelfAssessment  string `json:"self_assessment"`
	Metrics
}

// MotivationAssessmentMatrix crosses motivation and self-assessment.
// Cells come back sorted by motivation then assessment.
func MotivationAssessmentMatrix(items []Item) []HeatmapCell {
	type cellKey struct{ motivation, assessment string }
	acc := map[cellKey]Metrics{}
	for _, item := range items {
		k := cellKey{item.EntryMotivation, item.SelfAssessment}
		acc[k] = acc[k].add(item)
	}
	cells := make([]HeatmapCell, 0, len(acc))
	for k, m := range acc {
		cells = append(cells, HeatmapCell{
			EntryMotivation: k.motivation,
			SelfAssessment:  k.assessment,
			Metrics:         m.finalize(),
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].EntryMotivation != cells[j].EntryMotivation {
			return cells[i].EntryMotivation < cells[j].EntryMotivation
		}
		return cells[i].SelfAssessment < cells[j].SelfAssessment
	})
	return cells
}
