package gormrepository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"betdiary/internal/apperr"
	"betdiary/internal/models"
	"betdiary/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// translateWrite maps constraint violations on insert/update onto the
// API error taxonomy. Duplicate normalized names collide on the unique
// shadow index; a foreign-key violation on a write means the referenced
// row is gone.
func translateWrite(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict("%s already exists", entity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.NotFound("%s references a missing record", entity)
	default:
		return err
	}
}

func translateDelete(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.ReferenceInUse("%s is referenced by existing records", entity)
	default:
		return err
	}
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

func likeTerm(query string) string {
	return "%" + models.NormalizeName(query) + "%"
}

// --- Teams -------------------------------------------------------------

func (s *Store) teamQuery(ctx context.Context, params repository.ListReferenceParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Team{})
	if strings.TrimSpace(params.Query) != "" {
		query = query.Where("norm_name LIKE ?", likeTerm(params.Query))
	}
	return query
}

func (s *Store) ListTeams(ctx context.Context, params repository.ListReferenceParams) ([]models.Team, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Team
	err := s.teamQuery(ctx, params).
		Order("name asc").
		Limit(normalizeLimit(params.Limit, 200)).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	return items, err
}

func (s *Store) CountTeams(ctx context.Context, params repository.ListReferenceParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.teamQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) GetTeamByID(ctx context.Context, id uint64) (*models.Team, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Team
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateTeam(ctx context.Context, item *models.Team) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.NormName = models.NormalizeName(item.Name)
	return translateWrite(s.db.WithContext(ctx).Create(item).Error, "team")
}

func (s *Store) UpdateTeam(ctx context.Context, item *models.Team) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.NormName = models.NormalizeName(item.Name)
	return translateWrite(s.db.WithContext(ctx).Save(item).Error, "team")
}

func (s *Store) DeleteTeam(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	res := s.db.WithContext(ctx).Delete(&models.Team{}, id)
	if err := translateDelete(res.Error, "team"); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("team %d not found", id)
	}
	return nil
}

// --- Competitions ------------------------------------------------------

func (s *Store) competitionQuery(ctx context.Context, params repository.ListReferenceParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Competition{})
	if strings.TrimSpace(params.Query) != "" {
		query = query.Where("norm_name LIKE ?", likeTerm(params.Query))
	}
	return query
}

func (s *Store) ListCompetitions(ctx context.Context, params repository.ListReferenceParams) ([]models.Competition, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Competition
	err := s.competitionQuery(ctx, params).
		Order("name asc").
		Limit(normalizeLimit(params.Limit, 200)).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	return items, err
}

func (s *Store) CountCompetitions(ctx context.Context, params repository.ListReferenceParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.competitionQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) GetCompetitionByID(ctx context.Context, id uint64) (*models.Competition, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Competition
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateCompetition(ctx context.Context, item *models.Competition) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.NormName = models.NormalizeName(item.Name)
	return translateWrite(s.db.WithContext(ctx).Create(item).Error, "competition")
}

func (s *Store) UpdateCompetition(ctx context.Context, item *models.Competition) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.NormName = models.NormalizeName(item.Name)
	return translateWrite(s.db.WithContext(ctx).Save(item).Error, "competition")
}

func (s *Store) DeleteCompetition(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	res := s.db.WithContext(ctx).Delete(&models.Competition{}, id)
	if err := translateDelete(res.Error, "competition"); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("competition %d not found", id)
	}
	return nil
}

// --- Markets -----------------------------------------------------------

func (s *Store) marketQuery(ctx context.Context, params repository.ListReferenceParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Market{})
	if strings.TrimSpace(params.Query) != "" {
		query = query.Where("norm_name LIKE ?", likeTerm(params.Query))
	}
	return query
}

func (s *Store) ListMarkets(ctx context.Context, params repository.ListReferenceParams) ([]models.Market, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Market
	err := s.marketQuery(ctx, params).
		Order("name asc").
		Limit(normalizeLimit(params.Limit, 200)).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	return items, err
}

func (s *Store) CountMarkets(ctx context.Context, params repository.ListReferenceParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.marketQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) GetMarketByID(ctx context.Context, id uint64) (*models.Market, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Market
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateMarket(ctx context.Context, item *models.Market) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.NormName = models.NormalizeName(item.Name)
	return translateWrite(s.db.WithContext(ctx).Create(item).Error, "market")
}

func (s *Store) UpdateMarket(ctx context.Context, item *models.Market) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.NormName = models.NormalizeName(item.Name)
	return translateWrite(s.db.WithContext(ctx).Save(item).Error, "market")
}

func (s *Store) DeleteMarket(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	res := s.db.WithContext(ctx).Delete(&models.Market{}, id)
	if err := translateDelete(res.Error, "market"); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("market %d not found", id)
	}
	return nil
}

// --- Strategies ---------------------------------------------------------

func (s *Store) strategyQuery(ctx context.Context, params repository.ListReferenceParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Strategy{})
	if strings.TrimSpace(params.Query) != "" {
		query = query.Where("norm_name LIKE ?", likeTerm(params.Query))
	}
	if params.MarketID != nil && *params.MarketID > 0 {
		query = query.Where("market_id = ?", *params.MarketID)
	}
	return query
}

func (s *Store) ListStrategies(ctx context.Context, params repository.ListReferenceParams) ([]models.Strategy, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Strategy
	err := s.strategyQuery(ctx, params).
		Preload("Market").
		Order("name asc").
		Limit(normalizeLimit(params.Limit, 200)).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	return items, err
}

func (s *Store) CountStrategies(ctx context.Context, params repository.ListReferenceParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.strategyQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) GetStrategyByID(ctx context.Context, id uint64) (*models.Strategy, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Strategy
	err := s.db.WithContext(ctx).Preload("Market").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateStrategy(ctx context.Context, item *models.Strategy) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.NormName = models.NormalizeName(item.Name)
	return translateWrite(s.db.WithContext(ctx).Create(item).Error, "strategy")
}

func (s *Store) UpdateStrategy(ctx context.Context, item *models.Strategy) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.NormName = models.NormalizeName(item.Name)
	return translateWrite(s.db.WithContext(ctx).Save(item).Error, "strategy")
}

func (s *Store) DeleteStrategy(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	res := s.db.WithContext(ctx).Delete(&models.Strategy{}, id)
	if err := translateDelete(res.Error, "strategy"); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("strategy %d not found", id)
	}
	return nil
}

// --- Matches -----------------------------------------------------------

func (s *Store) matchQuery(ctx context.Context, params repository.ListMatchesParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Match{})
	if params.DateFrom != nil && *params.DateFrom != "" {
		query = query.Where("match_date >= ?", *params.DateFrom)
	}
	if params.DateTo != nil && *params.DateTo != "" {
		query = query.Where("match_date <= ?", *params.DateTo)
	}
	if params.CompetitionID != nil && *params.CompetitionID > 0 {
		query = query.Where("competition_id = ?", *params.CompetitionID)
	}
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	return query
}

func (s *Store) ListMatches(ctx context.Context, params repository.ListMatchesParams) ([]models.Match, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Match
	err := s.matchQuery(ctx, params).
		Preload("Competition").
		Preload("HomeTeam").
		Preload("AwayTeam").
		Order("match_date desc, kickoff_time desc").
		Limit(normalizeLimit(params.Limit, 200)).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	return items, err
}

func (s *Store) CountMatches(ctx context.Context, params repository.ListMatchesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.matchQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) GetMatchByID(ctx context.Context, id uint64) (*models.Match, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Match
	err := s.db.WithContext(ctx).
		Preload("Competition").
		Preload("HomeTeam").
		Preload("AwayTeam").
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateMatch(ctx context.Context, item *models.Match) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return translateWrite(s.db.WithContext(ctx).Create(item).Error, "match")
}

func (s *Store) UpdateMatch(ctx context.Context, item *models.Match) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return translateWrite(s.db.WithContext(ctx).Save(item).Error, "match")
}

func (s *Store) DeleteMatch(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	res := s.db.WithContext(ctx).Delete(&models.Match{}, id)
	if err := translateDelete(res.Error, "match"); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("match %d not found", id)
	}
	return nil
}

func (s *Store) UpdateMatchFieldsTx(ctx context.Context, tx *gorm.DB, id uint64, updates map[string]any) error {
	if s == nil {
		return nil
	}
	db := tx
	if db == nil {
		db = s.db
	}
	if db == nil {
		return nil
	}
	return db.WithContext(ctx).
		Model(&models.Match{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *Store) PendingVerificationMatches(ctx context.Context, cutoff time.Time) ([]models.Match, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Match
	err := s.db.WithContext(ctx).
		Preload("Competition").
		Preload("HomeTeam").
		Preload("AwayTeam").
		Where("status = ?", models.MatchStatusPreAnalysis).
		Where("verified_at IS NULL").
		Where("(match_date + kickoff_time::time) <= ?", cutoff).
		Where("NOT EXISTS (SELECT 1 FROM operations o WHERE o.match_id = matches.id)").
		Order("match_date asc, kickoff_time asc").
		Find(&items).Error
	return items, err
}

// --- Pre-analyses --------------------------------------------------------

func (s *Store) GetPreAnalysisByMatchID(ctx context.Context, matchID uint64) (*models.PreAnalysis, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.PreAnalysis
	err := s.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListPreAnalysesWithMatches(ctx context.Context) ([]models.PreAnalysis, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.PreAnalysis
	err := s.db.WithContext(ctx).
		Preload("Match").
		Preload("Match.Competition").
		Preload("Match.HomeTeam").
		Preload("Match.AwayTeam").
		Joins("JOIN matches ON matches.id = pre_analyses.match_id").
		Order("matches.match_date desc").
		Find(&items).Error
	return items, err
}

func (s *Store) CreatePreAnalysis(ctx context.Context, item *models.PreAnalysis) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return translateWrite(s.db.WithContext(ctx).Create(item).Error, "pre-analysis")
}

func (s *Store) UpdatePreAnalysis(ctx context.Context, item *models.PreAnalysis) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return translateWrite(s.db.WithContext(ctx).Save(item).Error, "pre-analysis")
}

// --- Operations ----------------------------------------------------------

func (s *Store) operationQuery(ctx context.Context, params repository.ListOperationsParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Operation{})
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	return query
}

func (s *Store) GetOperationByID(ctx context.Context, id uint64) (*models.Operation, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Operation
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Match").
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetOperationByMatchID(ctx context.Context, matchID uint64) (*models.Operation, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Operation
	err := s.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListOperations(ctx context.Context, params repository.ListOperationsParams) ([]models.Operation, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Operation
	err := s.operationQuery(ctx, params).
		Preload("Match").
		Preload("Match.Competition").
		Preload("Match.HomeTeam").
		Preload("Match.AwayTeam").
		Order("registered_at desc").
		Limit(normalizeLimit(params.Limit, 200)).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	return items, err
}

func (s *Store) CountOperations(ctx context.Context, params repository.ListOperationsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.operationQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) ListOperationsWithItems(ctx context.Context) ([]models.Operation, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Operation
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Match").
		Order("registered_at desc").
		Find(&items).Error
	return items, err
}

func (s *Store) CreateOperationTx(ctx context.Context, tx *gorm.DB, item *models.Operation) error {
	if s == nil || item == nil {
		return nil
	}
	db := tx
	if db == nil {
		db = s.db
	}
	if db == nil {
		return nil
	}
	return translateWrite(db.WithContext(ctx).Create(item).Error, "operation")
}

func (s *Store) UpdateOperationFieldsTx(ctx context.Context, tx *gorm.DB, id uint64, updates map[string]any) error {
	if s == nil {
		return nil
	}
	db := tx
	if db == nil {
		db = s.db
	}
	if db == nil {
		return nil
	}
	return db.WithContext(ctx).
		Model(&models.Operation{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// --- Operation items -------------------------------------------------------

func (s *Store) ListOperationItems(ctx context.Context, operationID uint64) ([]models.OperationItem, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.OperationItem
	err := s.db.WithContext(ctx).
		Preload("Market").
		Preload("Strategy").
		Where("operation_id = ?", operationID).
		Order("id asc").
		Find(&items).Error
	return items, err
}

func (s *Store) GetOperationItemByID(ctx context.Context, id uint64) (*models.OperationItem, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.OperationItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateOperationItem(ctx context.Context, item *models.OperationItem) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return translateWrite(s.db.WithContext(ctx).Create(item).Error, "operation item")
}

func (s *Store) UpdateOperationItem(ctx context.Context, item *models.OperationItem) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return translateWrite(s.db.WithContext(ctx).Save(item).Error, "operation item")
}

func (s *Store) DeleteOperationItem(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	res := s.db.WithContext(ctx).Delete(&models.OperationItem{}, id)
	if err := translateDelete(res.Error, "operation item"); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("operation item %d not found", id)
	}
	return nil
}

// --- Cash transactions -------------------------------------------------------

func (s *Store) cashQuery(ctx context.Context, params repository.ListCashParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.CashTransaction{})
	if params.DateFrom != nil && *params.DateFrom != "" {
		query = query.Where("tx_date >= ?", *params.DateFrom)
	}
	if params.DateTo != nil && *params.DateTo != "" {
		query = query.Where("tx_date <= ?", *params.DateTo)
	}
	if params.Type != nil && strings.TrimSpace(*params.Type) != "" {
		query = query.Where("type = ?", strings.TrimSpace(*params.Type))
	}
	return query
}

func (s *Store) ListCashTransactions(ctx context.Context, params repository.ListCashParams) ([]models.CashTransaction, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.CashTransaction
	err := s.cashQuery(ctx, params).
		Order("tx_date desc, tx_time desc").
		Limit(normalizeLimit(params.Limit, 500)).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	return items, err
}

func (s *Store) ListAllCashTransactions(ctx context.Context) ([]models.CashTransaction, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.CashTransaction
	err := s.db.WithContext(ctx).
		Order("tx_date asc, tx_time asc").
		Find(&items).Error
	return items, err
}

func (s *Store) CountCashTransactions(ctx context.Context, params repository.ListCashParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := s.cashQuery(ctx, params).Count(&total).Error
	return total, err
}

func (s *Store) GetCashTransactionByID(ctx context.Context, id uint64) (*models.CashTransaction, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.CashTransaction
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateCashTransaction(ctx context.Context, item *models.CashTransaction) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return translateWrite(s.db.WithContext(ctx).Create(item).Error, "cash transaction")
}

func (s *Store) UpdateCashTransaction(ctx context.Context, item *models.CashTransaction) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return translateWrite(s.db.WithContext(ctx).Save(item).Error, "cash transaction")
}

func (s *Store) DeleteCashTransaction(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	res := s.db.WithContext(ctx).Delete(&models.CashTransaction{}, id)
	if err := translateDelete(res.Error, "cash transaction"); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("cash transaction %d not found", id)
	}
	return nil
}

// --- Custom options ------------------------------------------------------------

func (s *Store) ListCustomOptions(ctx context.Context, field string) ([]models.CustomOption, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.CustomOption{})
	if strings.TrimSpace(field) != "" {
		query = query.Where("field = ?", strings.TrimSpace(field))
	}
	var items []models.CustomOption
	err := query.Order("sort_order asc, value asc").Find(&items).Error
	return items, err
}

func (s *Store) GetCustomOptionByID(ctx context.Context, id uint64) (*models.CustomOption, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.CustomOption
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateCustomOption(ctx context.Context, item *models.CustomOption) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.NormValue = models.NormalizeName(item.Value)
	return translateWrite(s.db.WithContext(ctx).Create(item).Error, "custom option")
}

func (s *Store) DeleteCustomOption(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	res := s.db.WithContext(ctx).Delete(&models.CustomOption{}, id)
	if err := translateDelete(res.Error, "custom option"); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("custom option %d not found", id)
	}
	return nil
}

// --- Reporting -------------------------------------------------------------------

func (s *Store) ListItemDetails(ctx context.Context, params repository.ItemDetailParams) ([]repository.ItemDetail, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Table("operation_items AS i").
		Select(`
			i.id AS item_id,
			i.operation_id AS operation_id,
			COALESCE(o.match_id, 0) AS match_id,
			COALESCE(m.match_date::text, '') AS match_date,
			i.stake AS stake,
			i.financial_result AS financial_result,
			COALESCE(mk.name, '') AS market_name,
			COALESCE(st.name, '') AS strategy_name,
			COALESCE(smk.name, '') AS strategy_market_name,
			COALESCE(cp.name, '') AS competition_name,
			COALESCE(ht.name, '') AS home_team_name,
			COALESCE(aw.name, '') AS away_team_name,
			i.emotional_state AS emotional_state,
			i.entry_motivation AS entry_motivation,
			i.self_assessment AS self_assessment`).
		Joins("LEFT JOIN operations o ON o.id = i.operation_id").
		Joins("LEFT JOIN matches m ON m.id = o.match_id").
		Joins("LEFT JOIN markets mk ON mk.id = i.market_id").
		Joins("LEFT JOIN strategies st ON st.id = i.strategy_id").
		Joins("LEFT JOIN markets smk ON smk.id = st.market_id").
		Joins("LEFT JOIN competitions cp ON cp.id = m.competition_id").
		Joins("LEFT JOIN teams ht ON ht.id = m.home_team_id").
		Joins("LEFT JOIN teams aw ON aw.id = m.away_team_id")
	if params.SettledOnly {
		query = query.Where("i.financial_result IS NOT NULL")
	}
	if params.DateFrom != nil && *params.DateFrom != "" {
		query = query.Where("m.match_date >= ?", *params.DateFrom)
	}
	if params.DateTo != nil && *params.DateTo != "" {
		query = query.Where("m.match_date <= ?", *params.DateTo)
	}
	var rows []repository.ItemDetail
	if err := query.Order("i.id asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
