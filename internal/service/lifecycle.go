package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"betdiary/internal/apperr"
	"betdiary/internal/models"
	"betdiary/internal/repository"
)

// LifecycleService owns the match status state machine and the
// pending-verification rule. The two-step transitions (operation write
// plus match status flip) run inside one storage transaction so a crash
// cannot leave the pair disagreeing.
type LifecycleService struct {
	Repo                  repository.Repository
	Logger                *zap.Logger
	VerificationThreshold time.Duration
}

const defaultVerificationThreshold = 24 * time.Hour

// CreateOperation registers the decision to trade on a match and moves
// the match to OPERATION_PENDING. Rejected once the match is terminal
// or already has an operation.
func (s *LifecycleService) CreateOperation(ctx context.Context, matchID uint64) (*models.Operation, error) {
	if s == nil || s.Repo == nil {
		return nil, apperr.Internal(nil)
	}
	match, err := s.Repo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, apperr.NotFound("match %d not found", matchID)
	}
	if match.IsTerminal() {
		return nil, apperr.Conflict("match %d is already %s", matchID, match.Status)
	}
	existing, err := s.Repo.GetOperationByMatchID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("match %d already has an operation", matchID)
	}

	op := &models.Operation{
		MatchID:      matchID,
		Status:       models.OperationStatusPending,
		RegisteredAt: time.Now().UTC(),
	}
	err = s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		if err := s.Repo.CreateOperationTx(ctx, tx, op); err != nil {
			return err
		}
		return s.Repo.UpdateMatchFieldsTx(ctx, tx, matchID, map[string]any{
			"status": models.MatchStatusOperationPending,
		})
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("operation created",
			zap.Uint64("match_id", matchID),
			zap.Uint64("operation_id", op.ID),
		)
	}
	return op, nil
}

// CompleteOperation concludes an operation. Every item must be settled
// (non-nil financial result); otherwise the operation is incomplete and
// the call fails with a conflict.
func (s *LifecycleService) CompleteOperation(ctx context.Context, operationID uint64) (*models.Operation, error) {
	if s == nil || s.Repo == nil {
		return nil, apperr.Internal(nil)
	}
	op, err := s.Repo.GetOperationByID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, apperr.NotFound("operation %d not found", operationID)
	}
	if op.Status == models.OperationStatusCompleted {
		return nil, apperr.Conflict("operation %d is already completed", operationID)
	}
	items, err := s.Repo.ListOperationItems(ctx, operationID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.Conflict("operation incomplete: no items registered")
	}
	for _, item := range items {
		if !item.Settled() {
			return nil, apperr.Conflict("operation incomplete: item %d has no financial result", item.ID)
		}
	}

	now := time.Now().UTC()
	err = s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		if err := s.Repo.UpdateOperationFieldsTx(ctx, tx, operationID, map[string]any{
			"status":       models.OperationStatusCompleted,
			"completed_at": now,
		}); err != nil {
			return err
		}
		return s.Repo.UpdateMatchFieldsTx(ctx, tx, op.MatchID, map[string]any{
			"status": models.MatchStatusOperationCompleted,
		})
	})
	if err != nil {
		return nil, err
	}
	op.Status = models.OperationStatusCompleted
	op.CompletedAt = &now
	if s.Logger != nil {
		s.Logger.Info("operation completed",
			zap.Uint64("operation_id", operationID),
			zap.Uint64("match_id", op.MatchID),
		)
	}
	return op, nil
}

// MarkNotOperated declares that no trade was taken on the match.
// Requires a justification and is only allowed from PRE_ANALYSIS.
func (s *LifecycleService) MarkNotOperated(ctx context.Context, matchID uint64, justification string) (*models.Match, error) {
	if s == nil || s.Repo == nil {
		return nil, apperr.Internal(nil)
	}
	justification = strings.TrimSpace(justification)
	if justification == "" {
		return nil, apperr.Validation("justification is required")
	}
	// The cap counts characters, matching the varchar(500) column.
	if utf8.RuneCountInString(justification) > models.NotOperatedJustificationMaxLen {
		return nil, apperr.Validation("justification exceeds %d characters", models.NotOperatedJustificationMaxLen)
	}
	match, err := s.Repo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, apperr.NotFound("match %d not found", matchID)
	}
	if match.Status != models.MatchStatusPreAnalysis {
		return nil, apperr.Conflict("match %d is %s, only pre-analysis matches can be marked not operated", matchID, match.Status)
	}

	now := time.Now().UTC()
	err = s.Repo.UpdateMatchFieldsTx(ctx, nil, matchID, map[string]any{
		"status":                     models.MatchStatusNotOperated,
		"not_operated_justification": justification,
		"verified_at":                now,
	})
	if err != nil {
		return nil, err
	}
	match.Status = models.MatchStatusNotOperated
	match.NotOperatedJustification = &justification
	match.VerifiedAt = &now
	return match, nil
}

// MarkVerified stamps the verification timestamp without touching the
// status. Used when the user confirms a match was in fact operated, so
// the pending-verification queue stops surfacing it while they register
// the operation.
func (s *LifecycleService) MarkVerified(ctx context.Context, matchID uint64) (*models.Match, error) {
	if s == nil || s.Repo == nil {
		return nil, apperr.Internal(nil)
	}
	match, err := s.Repo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, apperr.NotFound("match %d not found", matchID)
	}

	now := time.Now().UTC()
	err = s.Repo.UpdateMatchFieldsTx(ctx, nil, matchID, map[string]any{
		"verified_at": now,
	})
	if err != nil {
		return nil, err
	}
	match.VerifiedAt = &now
	return match, nil
}

// PendingVerification lists matches old enough to presumably have been
// traded but never confirmed either way.
func (s *LifecycleService) PendingVerification(ctx context.Context, now time.Time) ([]models.Match, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	threshold := s.VerificationThreshold
	if threshold <= 0 {
		threshold = defaultVerificationThreshold
	}
	return s.Repo.PendingVerificationMatches(ctx, now.Add(-threshold))
}
