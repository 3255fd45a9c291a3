package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"betdiary/internal/models"
)

// ListReferenceParams covers the reference-entity listings (teams,
// competitions, markets, strategies). Query is a normalized substring
// match against the shadow name column.
type ListReferenceParams struct {
	Query    string
	MarketID *uint64 // strategies only
	Limit    int
	Offset   int
}

type ListMatchesParams struct {
	DateFrom      *string
	DateTo        *string
	CompetitionID *uint64
	Status        *string
	Limit         int
	Offset        int
}

type ListOperationsParams struct {
	Status *string
	Limit  int
	Offset int
}

type ListCashParams struct {
	DateFrom *string
	DateTo   *string
	Type     *string
	Limit    int
	Offset   int
}

// ItemDetail is a settled-or-not operation item flattened with every
// label the aggregator groups by. Reference rows are resolved with
// left joins: a dangling foreign key degrades to an empty label
// instead of failing the report.
type ItemDetail struct {
	ItemID             uint64           `json:"item_id"`
	OperationID        uint64           `json:"operation_id"`
	MatchID            uint64           `json:"match_id"`
	MatchDate          string           `json:"match_date"`
	Stake              decimal.Decimal  `json:"stake"`
	FinancialResult    *decimal.Decimal `json:"financial_result"`
	MarketName         string           `json:"market_name"`
	StrategyName       string           `json:"strategy_name"`
	StrategyMarketName string           `json:"strategy_market_name"`
	CompetitionName    string           `json:"competition_name"`
	HomeTeamName       string           `json:"home_team_name"`
	AwayTeamName       string           `json:"away_team_name"`
	EmotionalState     string           `json:"emotional_state"`
	EntryMotivation    string           `json:"entry_motivation"`
	SelfAssessment     string           `json:"self_assessment"`
}

type ItemDetailParams struct {
	SettledOnly bool
	DateFrom    *string
	DateTo      *string
}

// MonthlyCashFlow is the per-month deposit/withdrawal totals feeding the
// annual summary.
type MonthlyCashFlow struct {
	Month       string          `json:"month"` // "2026-01"
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
}

type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Teams
	ListTeams(ctx context.Context, params ListReferenceParams) ([]models.Team, error)
	CountTeams(ctx context.Context, params ListReferenceParams) (int64, error)
	GetTeamByID(ctx context.Context, id uint64) (*models.Team, error)
	CreateTeam(ctx context.Context, item *models.Team) error
	UpdateTeam(ctx context.Context, item *models.Team) error
	DeleteTeam(ctx context.Context, id uint64) error

	// Competitions
	ListCompetitions(ctx context.Context, params ListReferenceParams) ([]models.Competition, error)
	CountCompetitions(ctx context.Context, params ListReferenceParams) (int64, error)
	GetCompetitionByID(ctx context.Context, id uint64) (*models.Competition, error)
	CreateCompetition(ctx context.Context, item *models.Competition) error
	UpdateCompetition(ctx context.Context, item *models.Competition) error
	DeleteCompetition(ctx context.Context, id uint64) error

	// Markets
	ListMarkets(ctx context.Context, params ListReferenceParams) ([]models.Market, error)
	CountMarkets(ctx context.Context, params ListReferenceParams) (int64, error)
	GetMarketByID(ctx context.Context, id uint64) (*models.Market, error)
	CreateMarket(ctx context.Context, item *models.Market) error
	UpdateMarket(ctx context.Context, item *models.Market) error
	DeleteMarket(ctx context.Context, id uint64) error

	// Strategies
	ListStrategies(ctx context.Context, params ListReferenceParams) ([]models.Strategy, error)
	CountStrategies(ctx context.Context, params ListReferenceParams) (int64, error)
	GetStrategyByID(ctx context.Context, id uint64) (*models.Strategy, error)
	CreateStrategy(ctx context.Context, item *models.Strategy) error
	UpdateStrategy(ctx context.Context, item *models.Strategy) error
	DeleteStrategy(ctx context.Context, id uint64) error

	// Matches
	ListMatches(ctx context.Context, params ListMatchesParams) ([]models.Match, error)
	CountMatches(ctx context.Context, params ListMatchesParams) (int64, error)
	GetMatchByID(ctx context.Context, id uint64) (*models.Match, error)
	CreateMatch(ctx context.Context, item *models.Match) error
	UpdateMatch(ctx context.Context, item *models.Match) error
	DeleteMatch(ctx context.Context, id uint64) error
	UpdateMatchFieldsTx(ctx context.Context, tx *gorm.DB, id uint64, updates map[string]any) error
	// PendingVerificationMatches is a single anti-join: matches still in
	// pre-analysis, never verified, kicked off at or before cutoff, with
	// no operation row.
	PendingVerificationMatches(ctx context.Context, cutoff time.Time) ([]models.Match, error)

	// Pre-analyses
	GetPreAnalysisByMatchID(ctx context.Context, matchID uint64) (*models.PreAnalysis, error)
	ListPreAnalysesWithMatches(ctx context.Context) ([]models.PreAnalysis, error)
	CreatePreAnalysis(ctx context.Context, item *models.PreAnalysis) error
	UpdatePreAnalysis(ctx context.Context, item *models.PreAnalysis) error

	// Operations
	GetOperationByID(ctx context.Context, id uint64) (*models.Operation, error)
	GetOperationByMatchID(ctx context.Context, matchID uint64) (*models.Operation, error)
	ListOperations(ctx context.Context, params ListOperationsParams) ([]models.Operation, error)
	CountOperations(ctx context.Context, params ListOperationsParams) (int64, error)
	ListOperationsWithItems(ctx context.Context) ([]models.Operation, error)
	CreateOperationTx(ctx context.Context, tx *gorm.DB, item *models.Operation) error
	UpdateOperationFieldsTx(ctx context.Context, tx *gorm.DB, id uint64, updates map[string]any) error

	// Operation items
	ListOperationItems(ctx context.Context, operationID uint64) ([]models.OperationItem, error)
	GetOperationItemByID(ctx context.Context, id uint64) (*models.OperationItem, error)
	CreateOperationItem(ctx context.Context, item *models.OperationItem) error
	UpdateOperationItem(ctx context.Context, item *models.OperationItem) error
	DeleteOperationItem(ctx context.Context, id uint64) error

	// Cash transactions
	ListCashTransactions(ctx context.Context, params ListCashParams) ([]models.CashTransaction, error)
	// ListAllCashTransactions returns the entire cash history, uncapped.
	// The annual summary folds over everything ever recorded; the paged
	// listing's limit would silently drop the oldest rows.
	ListAllCashTransactions(ctx context.Context) ([]models.CashTransaction, error)
	CountCashTransactions(ctx context.Context, params ListCashParams) (int64, error)
	GetCashTransactionByID(ctx context.Context, id uint64) (*models.CashTransaction, error)
	CreateCashTransaction(ctx context.Context, item *models.CashTransaction) error
	UpdateCashTransaction(ctx context.Context, item *models.CashTransaction) error
	DeleteCashTransaction(ctx context.Context, id uint64) error

	// Custom options
	ListCustomOptions(ctx context.Context, field string) ([]models.CustomOption, error)
	GetCustomOptionByID(ctx context.Context, id uint64) (*models.CustomOption, error)
	CreateCustomOption(ctx context.Context, item *models.CustomOption) error
	DeleteCustomOption(ctx context.Context, id uint64) error

	// Reporting
	ListItemDetails(ctx context.Context, params ItemDetailParams) ([]ItemDetail, error)
}
