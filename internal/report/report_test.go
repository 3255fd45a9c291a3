package report

import (
	"testing"
	"time"
)

func TestBuildDashboardWindows(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	items := []Item{
		{Stake: dec("10"), Result: decPtr("5"), MatchDate: "2026-08-10", MarketName: "Match Odds"},
		{Stake: dec("10"), Result: decPtr("-3"), MatchDate: "2026-02-01", MarketName: "Match Odds"},
		{Stake: dec("10"), Result: decPtr("7"), MatchDate: "2025-11-20", MarketName: "Match Odds"},
	}
	d := BuildDashboard(items, now)

	if d.Overall.Count != 3 {
		t.Fatalf("overall count = %d, want 3", d.Overall.Count)
	}
	// Last 30 days: only the August item.
	var last30 int
	for _, g := range d.Last30Days {
		last30 += g.Count
	}
	if last30 != 1 {
		t.Fatalf("last 30 days count = %d, want 1", last30)
	}
	// Year to date: the two 2026 items.
	var ytd int
	for _, g := range d.YearToDate {
		ytd += g.Count
	}
	if ytd != 2 {
		t.Fatalf("year-to-date count = %d, want 2", ytd)
	}
}

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(nil, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	if d.Overall.Count != 0 || !d.Overall.ROI.IsZero() {
		t.Fatalf("empty dashboard overall must be zero: %+v", d.Overall)
	}
	if len(d.ByMarket) != 0 || len(d.Heatmap) != 0 {
		t.Fatalf("empty dashboard must have no groups")
	}
}
