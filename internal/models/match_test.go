package models

import (
	"testing"
	"time"
)

func TestKickoff(t *testing.T) {
	m := Match{MatchDate: "2026-03-14", KickoffTime: "16:30"}
	want := time.Date(2026, 3, 14, 16, 30, 0, 0, time.UTC)
	if got := m.Kickoff(); !got.Equal(want) {
		t.Fatalf("Kickoff() = %v, want %v", got, want)
	}
}

func TestKickoffMalformedTimeFallsBackToMidnight(t *testing.T) {
	m := Match{MatchDate: "2026-03-14", KickoffTime: "bad"}
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if got := m.Kickoff(); !got.Equal(want) {
		t.Fatalf("Kickoff() = %v, want %v", got, want)
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{MatchStatusPreAnalysis, false},
		{MatchStatusOperationPending, false},
		{MatchStatusOperationCompleted, true},
		{MatchStatusNotOperated, true},
	}
	for _, tt := range tests {
		if got := (Match{Status: tt.status}).IsTerminal(); got != tt.want {
			t.Fatalf("IsTerminal(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
