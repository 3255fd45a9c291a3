package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"betdiary/internal/models"
	"betdiary/internal/repository"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
// It implements the full interface but only the subset the service tests
// exercise carries real behavior.
type stubRepo struct {
	matches    map[uint64]*models.Match
	operations map[uint64]*models.Operation
	items      map[uint64]*models.OperationItem
	options    map[uint64]*models.CustomOption
	cash       []models.CashTransaction
	details    []repository.ItemDetail
	pending    []models.Match
	gotCutoff  time.Time
	nextID     uint64
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		matches:    map[uint64]*models.Match{},
		operations: map[uint64]*models.Operation{},
		items:      map[uint64]*models.OperationItem{},
		options:    map[uint64]*models.CustomOption{},
	}
}

func (s *stubRepo) id() uint64 {
	s.nextID++
	return s.nextID
}

func (s *stubRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

// Teams
func (s *stubRepo) ListTeams(ctx context.Context, params repository.ListReferenceParams) ([]models.Team, error) {
	return nil, nil
}
func (s *stubRepo) CountTeams(ctx context.Context, params repository.ListReferenceParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) GetTeamByID(ctx context.Context, id uint64) (*models.Team, error) {
	return nil, nil
}
func (s *stubRepo) CreateTeam(ctx context.Context, item *models.Team) error { return nil }
func (s *stubRepo) UpdateTeam(ctx context.Context, item *models.Team) error { return nil }
func (s *stubRepo) DeleteTeam(ctx context.Context, id uint64) error         { return nil }

// Competitions
func (s *stubRepo) ListCompetitions(ctx context.Context, params repository.ListReferenceParams) ([]models.Competition, error) {
	return nil, nil
}
func (s *stubRepo) CountCompetitions(ctx context.Context, params repository.ListReferenceParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) GetCompetitionByID(ctx context.Context, id uint64) (*models.Competition, error) {
	return nil, nil
}
func (s *stubRepo) CreateCompetition(ctx context.Context, item *models.Competition) error { return nil }
func (s *stubRepo) UpdateCompetition(ctx context.Context, item *models.Competition) error { return nil }
func (s *stubRepo) DeleteCompetition(ctx context.Context, id uint64) error                { return nil }

// Markets
func (s *stubRepo) ListMarkets(ctx context.Context, params repository.ListReferenceParams) ([]models.Market, error) {
	return nil, nil
}
func (s *stubRepo) CountMarkets(ctx context.Context, params repository.ListReferenceParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) GetMarketByID(ctx context.Context, id uint64) (*models.Market, error) {
	return nil, nil
}
func (s *stubRepo) CreateMarket(ctx context.Context, item *models.Market) error { return nil }
func (s *stubRepo) UpdateMarket(ctx context.Context, item *models.Market) error { return nil }
func (s *stubRepo) DeleteMarket(ctx context.Context, id uint64) error           { return nil }

// Strategies
func (s *stubRepo) ListStrategies(ctx context.Context, params repository.ListReferenceParams) ([]models.Strategy, error) {
	return nil, nil
}
func (s *stubRepo) CountStrategies(ctx context.Context, params repository.ListReferenceParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) GetStrategyByID(ctx context.Context, id uint64) (*models.Strategy, error) {
	return nil, nil
}
func (s *stubRepo) CreateStrategy(ctx context.Context, item *models.Strategy) error { return nil }
func (s *stubRepo) UpdateStrategy(ctx context.Context, item *models.Strategy) error { return nil }
func (s *stubRepo) DeleteStrategy(ctx context.Context, id uint64) error             { return nil }

// Matches
func (s *stubRepo) ListMatches(ctx context.Context, params repository.ListMatchesParams) ([]models.Match, error) {
	return nil, nil
}
func (s *stubRepo) CountMatches(ctx context.Context, params repository.ListMatchesParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) GetMatchByID(ctx context.Context, id uint64) (*models.Match, error) {
	m, ok := s.matches[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}
func (s *stubRepo) CreateMatch(ctx context.Context, item *models.Match) error {
	if item.ID == 0 {
		item.ID = s.id()
	}
	cp := *item
	s.matches[item.ID] = &cp
	return nil
}
func (s *stubRepo) UpdateMatch(ctx context.Context, item *models.Match) error {
	cp := *item
	s.matches[item.ID] = &cp
	return nil
}
func (s *stubRepo) DeleteMatch(ctx context.Context, id uint64) error { return nil }
func (s *stubRepo) UpdateMatchFieldsTx(ctx context.Context, tx *gorm.DB, id uint64, updates map[string]any) error {
	m, ok := s.matches[id]
	if !ok {
		return nil
	}
	if v, ok := updates["status"]; ok {
		m.Status = v.(string)
	}
	if v, ok := updates["not_operated_justification"]; ok {
		j := v.(string)
		m.NotOperatedJustification = &j
	}
	if v, ok := updates["verified_at"]; ok {
		at := v.(time.Time)
		m.VerifiedAt = &at
	}
	return nil
}
func (s *stubRepo) PendingVerificationMatches(ctx context.Context, cutoff time.Time) ([]models.Match, error) {
	s.gotCutoff = cutoff
	return s.pending, nil
}

// Pre-analyses
func (s *stubRepo) GetPreAnalysisByMatchID(ctx context.Context, matchID uint64) (*models.PreAnalysis, error) {
	return nil, nil
}
func (s *stubRepo) ListPreAnalysesWithMatches(ctx context.Context) ([]models.PreAnalysis, error) {
	return nil, nil
}
func (s *stubRepo) CreatePreAnalysis(ctx context.Context, item *models.PreAnalysis) error { return nil }
func (s *stubRepo) UpdatePreAnalysis(ctx context.Context, item *models.PreAnalysis) error { return nil }

// Operations
func (s *stubRepo) GetOperationByID(ctx context.Context, id uint64) (*models.Operation, error) {
	op, ok := s.operations[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}
func (s *stubRepo) GetOperationByMatchID(ctx context.Context, matchID uint64) (*models.Operation, error) {
	for _, op := range s.operations {
		if op.MatchID == matchID {
			cp := *op
			return &cp, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) ListOperations(ctx context.Context, params repository.ListOperationsParams) ([]models.Operation, error) {
	return nil, nil
}
func (s *stubRepo) CountOperations(ctx context.Context, params repository.ListOperationsParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) ListOperationsWithItems(ctx context.Context) ([]models.Operation, error) {
	return nil, nil
}
func (s *stubRepo) CreateOperationTx(ctx context.Context, tx *gorm.DB, item *models.Operation) error {
	if item.ID == 0 {
		item.ID = s.id()
	}
	cp := *item
	s.operations[item.ID] = &cp
	return nil
}
func (s *stubRepo) UpdateOperationFieldsTx(ctx context.Context, tx *gorm.DB, id uint64, updates map[string]any) error {
	op, ok := s.operations[id]
	if !ok {
		return nil
	}
	if v, ok := updates["status"]; ok {
		op.Status = v.(string)
	}
	if v, ok := updates["completed_at"]; ok {
		at := v.(time.Time)
		op.CompletedAt = &at
	}
	return nil
}

// Operation items
func (s *stubRepo) ListOperationItems(ctx context.Context, operationID uint64) ([]models.OperationItem, error) {
	var out []models.OperationItem
	for _, item := range s.items {
		if item.OperationID == operationID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (s *stubRepo) GetOperationItemByID(ctx context.Context, id uint64) (*models.OperationItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}
func (s *stubRepo) CreateOperationItem(ctx context.Context, item *models.OperationItem) error {
	if item.ID == 0 {
		item.ID = s.id()
	}
	cp := *item
	s.items[item.ID] = &cp
	return nil
}
func (s *stubRepo) UpdateOperationItem(ctx context.Context, item *models.OperationItem) error {
	cp := *item
	s.items[item.ID] = &cp
	return nil
}
func (s *stubRepo) DeleteOperationItem(ctx context.Context, id uint64) error {
	delete(s.items, id)
	return nil
}

// Cash transactions
func (s *stubRepo) ListCashTransactions(ctx context.Context, params repository.ListCashParams) ([]models.CashTransaction, error) {
	return nil, nil
}
func (s *stubRepo) CountCashTransactions(ctx context.Context, params repository.ListCashParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) ListAllCashTransactions(ctx context.Context) ([]models.CashTransaction, error) {
	return s.cash, nil
}
func (s *stubRepo) GetCashTransactionByID(ctx context.Context, id uint64) (*models.CashTransaction, error) {
	return nil, nil
}
func (s *stubRepo) CreateCashTransaction(ctx context.Context, item *models.CashTransaction) error {
	return nil
}
func (s *stubRepo) UpdateCashTransaction(ctx context.Context, item *models.CashTransaction) error {
	return nil
}
func (s *stubRepo) DeleteCashTransaction(ctx context.Context, id uint64) error { return nil }

// Custom options
func (s *stubRepo) ListCustomOptions(ctx context.Context, field string) ([]models.CustomOption, error) {
	var out []models.CustomOption
	for _, opt := range s.options {
		if opt.Field == field {
			out = append(out, *opt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}
func (s *stubRepo) GetCustomOptionByID(ctx context.Context, id uint64) (*models.CustomOption, error) {
	opt, ok := s.options[id]
	if !ok {
		return nil, nil
	}
	cp := *opt
	return &cp, nil
}
func (s *stubRepo) CreateCustomOption(ctx context.Context, item *models.CustomOption) error {
	if item.ID == 0 {
		item.ID = s.id()
	}
	item.NormValue = models.NormalizeName(item.Value)
	cp := *item
	s.options[item.ID] = &cp
	return nil
}
func (s *stubRepo) DeleteCustomOption(ctx context.Context, id uint64) error {
	delete(s.options, id)
	return nil
}

// Reporting
func (s *stubRepo) ListItemDetails(ctx context.Context, params repository.ItemDetailParams) ([]repository.ItemDetail, error) {
	if params.SettledOnly {
		var out []repository.ItemDetail
		for _, d := range s.details {
			if d.FinancialResult != nil {
				out = append(out, d)
			}
		}
		return out, nil
	}
	return s.details, nil
}

var _ repository.Repository = (*stubRepo)(nil)
