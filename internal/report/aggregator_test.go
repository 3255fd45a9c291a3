package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestOverallMetrics(t *testing.T) {
	items := []Item{
		{Stake: dec("100"), Result: decPtr("20"), MarketName: "Match Odds"},
		{Stake: dec("50"), Result: decPtr("-10"), MarketName: "Over/Under 2.5"},
	}
	m := Overall(items).Rounded()
	if !m.Profit.Equal(dec("10")) {
		t.Fatalf("profit = %s, want 10", m.Profit)
	}
	if !m.StakeTotal.Equal(dec("150")) {
		t.Fatalf("stake = %s, want 150", m.StakeTotal)
	}
	if !m.ROI.Equal(dec("6.67")) {
		t.Fatalf("roi = %s, want 6.67", m.ROI)
	}
	if m.Count != 2 || m.Wins != 1 {
		t.Fatalf("count/wins = %d/%d, want 2/1", m.Count, m.Wins)
	}
	if !m.HitRate.Equal(dec("50")) {
		t.Fatalf("hit rate = %s, want 50", m.HitRate)
	}
}

func TestZeroStakeROIIsZero(t *testing.T) {
	m := Overall([]Item{{Stake: decimal.Zero, Result: decPtr("5")}})
	if !m.ROI.Equal(decimal.Zero) {
		t.Fatalf("roi = %s, want 0 for zero stake", m.ROI)
	}
}

func TestEmptySetMetrics(t *testing.T) {
	m := Overall(nil)
	if !m.ROI.IsZero() || !m.HitRate.IsZero() || m.Count != 0 {
		t.Fatalf("empty set must be all zeros: %+v", m)
	}
}

func TestUnsettledItemContributesStakeNotProfit(t *testing.T) {
	items := []Item{
		{Stake: dec("30"), Result: nil},
		{Stake: dec("70"), Result: decPtr("14")},
	}
	m := Overall(items)
	if !m.Profit.Equal(dec("14")) {
		t.Fatalf("profit = %s, want 14", m.Profit)
	}
	if !m.StakeTotal.Equal(dec("100")) {
		t.Fatalf("stake = %s, want 100", m.StakeTotal)
	}
	if m.Count != 2 || m.Wins != 1 {
		t.Fatalf("count/wins = %d/%d, want 2/1", m.Count, m.Wins)
	}
}

func TestAggregatePreservesTotals(t *testing.T) {
	items := []Item{
		{Stake: dec("100"), Result: decPtr("20"), MarketName: "Match Odds"},
		{Stake: dec("50"), Result: decPtr("-10"), MarketName: "Over/Under 2.5"},
		{Stake: dec("25"), Result: decPtr("5"), MarketName: "Match Odds"},
		{Stake: dec("10"), Result: decPtr("-3"), MarketName: ""}, // missing label still lands in a group
	}
	groups := Aggregate(items, ByMarket)

	var profit, stake decimal.Decimal
	var count int
	for _, g := range groups {
		profit = profit.Add(g.Profit)
		stake = stake.Add(g.StakeTotal)
		count += g.Count
	}
	overall := Overall(items)
	if !profit.Equal(overall.Profit) {
		t.Fatalf("group profit sum %s != overall %s", profit, overall.Profit)
	}
	if !stake.Equal(overall.StakeTotal) {
		t.Fatalf("group stake sum %s != overall %s", stake, overall.StakeTotal)
	}
	if count != overall.Count {
		t.Fatalf("group count sum %d != overall %d", count, overall.Count)
	}
}

func TestAggregateSortedByKey(t *testing.T) {
	items := []Item{
		{Stake: dec("1"), MarketName: "Zebra"},
		{Stake: dec("1"), MarketName: "Alpha"},
		{Stake: dec("1"), MarketName: "Mid"},
	}
	groups := Aggregate(items, ByMarket)
	for i := 1; i < len(groups); i++ {
		if groups[i-1].Key > groups[i].Key {
			t.Fatalf("groups not sorted: %q before %q", groups[i-1].Key, groups[i].Key)
		}
	}
}

func TestByStrategyKeepsMarketsApart(t *testing.T) {
	// Same strategy name under two markets must stay two groups.
	items := []Item{
		{Stake: dec("10"), Result: decPtr("2"), StrategyName: "Lay the draw", StrategyMarketName: "Match Odds"},
		{Stake: dec("10"), Result: decPtr("-4"), StrategyName: "Lay the draw", StrategyMarketName: "Correct Score"},
	}
	groups := Aggregate(items, ByStrategy)
	if len(groups) != 2 {
		t.Fatalf("len = %d, want 2", len(groups))
	}
	for _, g := range groups {
		if g.Label != "Lay the draw" {
			t.Fatalf("label = %q", g.Label)
		}
		if g.Detail == "" {
			t.Fatalf("strategy group missing market detail")
		}
	}
}

func TestByTeamCountsBothSides(t *testing.T) {
	items := []Item{
		{Stake: dec("100"), Result: decPtr("20"), HomeTeamName: "Flamengo", AwayTeamName: "Palmeiras"},
	}
	groups := Aggregate(items, ByTeam)
	if len(groups) != 2 {
		t.Fatalf("len = %d, want 2", len(groups))
	}
	for _, g := range groups {
		if !g.Profit.Equal(dec("20")) || g.Count != 1 {
			t.Fatalf("each side gets the full item: %+v", g)
		}
	}
}

func TestByTeamCollidingLabelsCountOnce(t *testing.T) {
	// Dangling team lookups degrade both sides to the empty label; the
	// shared group must still see the item once.
	items := []Item{
		{Stake: dec("100"), Result: decPtr("20"), HomeTeamName: "", AwayTeamName: ""},
	}
	groups := Aggregate(items, ByTeam)
	if len(groups) != 1 {
		t.Fatalf("len = %d, want 1", len(groups))
	}
	g := groups[0]
	if g.Count != 1 || !g.Profit.Equal(dec("20")) || !g.StakeTotal.Equal(dec("100")) {
		t.Fatalf("item double-counted in shared group: %+v", g)
	}
}

func TestTimeBuckets(t *testing.T) {
	items := []Item{
		{Stake: dec("10"), Result: decPtr("1"), MatchDate: "2026-01-15"},
		{Stake: dec("10"), Result: decPtr("2"), MatchDate: "2026-01-30"},
		{Stake: dec("10"), Result: decPtr("3"), MatchDate: "2026-02-01"},
		{Stake: dec("10"), Result: decPtr("4"), MatchDate: "2025-12-31"},
	}
	days := Aggregate(items, ByDay)
	if len(days) != 4 {
		t.Fatalf("days = %d, want 4", len(days))
	}
	months := Aggregate(items, ByMonth)
	if len(months) != 3 {
		t.Fatalf("months = %d, want 3", len(months))
	}
	years := Aggregate(items, ByYear)
	if len(years) != 2 {
		t.Fatalf("years = %d, want 2", len(years))
	}
	if months[0].Key != "2025-12" {
		t.Fatalf("first month = %q, want 2025-12", months[0].Key)
	}
	for _, g := range months {
		if g.Key == "2026-01" && !g.Profit.Equal(dec("3")) {
			t.Fatalf("2026-01 profit = %s, want 3", g.Profit)
		}
	}
}

func TestMotivationAssessmentMatrix(t *testing.T) {
	items := []Item{
		{Stake: dec("10"), Result: decPtr("5"), EntryMotivation: "Planned entry", SelfAssessment: "Disciplined"},
		{Stake: dec("10"), Result: decPtr("-8"), EntryMotivation: "Impulse", SelfAssessment: "Undisciplined"},
		{Stake: dec("10"), Result: decPtr("-2"), EntryMotivation: "Impulse", SelfAssessment: "Undisciplined"},
	}
	cells := MotivationAssessmentMatrix(items)
	if len(cells) != 2 {
		t.Fatalf("cells = %d, want 2", len(cells))
	}
	// Sorted by motivation: Impulse first.
	if cells[0].EntryMotivation != "Impulse" || cells[0].Count != 2 {
		t.Fatalf("first cell wrong: %+v", cells[0])
	}
	if !cells[0].Profit.Equal(dec("-10")) {
		t.Fatalf("impulse profit = %s, want -10", cells[0].Profit)
	}
}
