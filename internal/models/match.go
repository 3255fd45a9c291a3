package models

import (
	"time"

	"gorm.io/datatypes"
)

// Match status lifecycle. PRE_ANALYSIS is the initial state; a match
// either moves through OPERATION_PENDING to OPERATION_COMPLETED, or
// terminates as NOT_OPERATED.
const (
	MatchStatusPreAnalysis        = "PRE_ANALYSIS"
	MatchStatusOperationPending   = "OPERATION_PENDING"
	MatchStatusOperationCompleted = "OPERATION_COMPLETED"
	MatchStatusNotOperated        = "NOT_OPERATED"
)

const NotOperatedJustificationMaxLen = 500

type Match struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchDate     string `gorm:"type:date;not null;index" json:"match_date"`
	KickoffTime   string `gorm:"type:varchar(5);not null" json:"kickoff_time"`
	CompetitionID uint64 `gorm:"not null;index" json:"competition_id"`
	HomeTeamID    uint64 `gorm:"not null;index" json:"home_team_id"`
	AwayTeamID    uint64 `gorm:"not null;index" json:"away_team_id"`

	Competition *Competition `gorm:"foreignKey:CompetitionID;constraint:OnDelete:RESTRICT" json:"competition,omitempty"`
	HomeTeam    *Team        `gorm:"foreignKey:HomeTeamID;constraint:OnDelete:RESTRICT" json:"home_team,omitempty"`
	AwayTeam    *Team        `gorm:"foreignKey:AwayTeamID;constraint:OnDelete:RESTRICT" json:"away_team,omitempty"`

	// Optional bookmaker odds snapshot: {"home":"1.85","draw":"3.40","away":"4.20"}.
	Odds datatypes.JSON `gorm:"type:jsonb" json:"odds,omitempty"`

	Status                   string     `gorm:"type:varchar(24);not null;default:PRE_ANALYSIS;index" json:"status"`
	NotOperatedJustification *string    `gorm:"type:varchar(500)" json:"not_operated_justification,omitempty"`
	VerifiedAt               *time.Time `gorm:"type:timestamptz" json:"verified_at,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Match) TableName() string {
	return "matches"
}

// Kickoff resolves the scheduled date+time into a single instant.
// KickoffTime is stored as "HH:MM"; a malformed time degrades to midnight.
func (m Match) Kickoff() time.Time {
	t, err := time.Parse("2006-01-02 15:04", m.MatchDate+" "+m.KickoffTime)
	if err != nil {
		t, err = time.Parse("2006-01-02", m.MatchDate)
		if err != nil {
			return time.Time{}
		}
	}
	return t.UTC()
}

// IsTerminal reports whether the lifecycle allows no further transitions.
func (m Match) IsTerminal() bool {
	return m.Status == MatchStatusOperationCompleted || m.Status == MatchStatusNotOperated
}

// PreAnalysis is the optional qualitative elaboration attached to a
// match before any operation exists. Primary key is the match itself.
type PreAnalysis struct {
	MatchID uint64 `gorm:"primaryKey" json:"match_id"`
	Match   *Match `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"match,omitempty"`

	ClassificationRank  string `gorm:"type:varchar(120)" json:"classification_rank"`
	TeamForm            string `gorm:"type:varchar(120)" json:"team_form"`
	MustWinMotive       string `gorm:"type:varchar(120)" json:"must_win_motive"`
	NextGameImportance  string `gorm:"type:varchar(120)" json:"next_game_importance"`
	InjuriesSuspensions string `gorm:"type:varchar(120)" json:"injuries_suspensions"`
	ExpectedTendency    string `gorm:"type:varchar(120)" json:"expected_tendency"`
	HomeRecentForm      string `gorm:"type:varchar(120)" json:"home_recent_form"`
	AwayRecentForm      string `gorm:"type:varchar(120)" json:"away_recent_form"`
	OddsValueAssessment string `gorm:"type:varchar(120)" json:"odds_value_assessment"`
	Highlight           string `gorm:"type:text" json:"highlight"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (PreAnalysis) TableName() string {
	return "pre_analyses"
}
