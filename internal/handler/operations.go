package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"betdiary/internal/models"
	"betdiary/internal/repository"
	"betdiary/internal/service"
)

// OperationHandler covers the operation lifecycle plus item CRUD. The
// create/complete transitions go through the lifecycle service so the
// match status stays in lockstep.
type OperationHandler struct {
	Repo      repository.Repository
	Lifecycle *service.LifecycleService
}

func (h *OperationHandler) Register(r *gin.Engine) {
	g := r.Group("/api/operations")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/items/:id", h.getItem)
	g.PUT("/items/:id", h.updateItem)
	g.DELETE("/items/:id", h.deleteItem)
	g.GET("/:id", h.get)
	g.PATCH("/:id/complete", h.complete)
	g.GET("/:id/items", h.listItems)
	g.POST("/:id/items", h.createItem)
}

type itemRequest struct {
	MarketID        uint64  `json:"market_id"`
	StrategyID      uint64  `json:"strategy_id"`
	Stake           string  `json:"stake"`
	EntryOdds       string  `json:"entry_odds"`
	CloseType       string  `json:"close_type"`
	ExitOdds        *string `json:"exit_odds"`
	FinancialResult *string `json:"financial_result"`
	ExposureMinutes int     `json:"exposure_minutes"`
	FollowedPlan    *bool   `json:"followed_plan"`
	EmotionalState  string  `json:"emotional_state"`
	EntryMotivation string  `json:"entry_motivation"`
	SelfAssessment  string  `json:"self_assessment"`
	ExitNote        *string `json:"exit_note"`
}

// toModel validates and converts the request. Exit odds are required
// for manual closes and rejected otherwise.
func (r itemRequest) toModel(operationID uint64) (*models.OperationItem, string) {
	if r.MarketID == 0 {
		return nil, "market_id is required"
	}
	if r.StrategyID == 0 {
		return nil, "strategy_id is required"
	}
	stake, err := decimal.NewFromString(r.Stake)
	if err != nil || stake.LessThanOrEqual(decimal.Zero) {
		return nil, "stake must be a positive decimal"
	}
	entryOdds, err := decimal.NewFromString(r.EntryOdds)
	if err != nil || entryOdds.LessThanOrEqual(decimal.NewFromInt(1)) {
		return nil, "entry_odds must be a decimal greater than 1"
	}
	closeType := strings.ToUpper(strings.TrimSpace(r.CloseType))
	switch closeType {
	case models.CloseTypeAutomatic, models.CloseTypeManual, models.CloseTypePartial:
	default:
		return nil, "close_type must be AUTOMATIC, MANUAL or PARTIAL"
	}
	if r.ExposureMinutes < 0 {
		return nil, "exposure_minutes must not be negative"
	}

	var exitOdds *decimal.Decimal
	if closeType == models.CloseTypeManual {
		if r.ExitOdds == nil || strings.TrimSpace(*r.ExitOdds) == "" {
			return nil, "exit_odds is required for manual closes"
		}
		d, err := decimal.NewFromString(*r.ExitOdds)
		if err != nil || d.LessThanOrEqual(decimal.NewFromInt(1)) {
			return nil, "exit_odds must be a decimal greater than 1"
		}
		exitOdds = &d
	} else if r.ExitOdds != nil && strings.TrimSpace(*r.ExitOdds) != "" {
		return nil, "exit_odds is only valid for manual closes"
	}

	var result *decimal.Decimal
	if r.FinancialResult != nil && strings.TrimSpace(*r.FinancialResult) != "" {
		d, err := decimal.NewFromString(*r.FinancialResult)
		if err != nil {
			return nil, "financial_result must be a decimal"
		}
		result = &d
	}

	followedPlan := true
	if r.FollowedPlan != nil {
		followedPlan = *r.FollowedPlan
	}

	return &models.OperationItem{
		OperationID:     operationID,
		MarketID:        r.MarketID,
		StrategyID:      r.StrategyID,
		Stake:           stake,
		EntryOdds:       entryOdds,
		CloseType:       closeType,
		ExitOdds:        exitOdds,
		FinancialResult: result,
		ExposureMinutes: r.ExposureMinutes,
		FollowedPlan:    followedPlan,
		EmotionalState:  strings.TrimSpace(r.EmotionalState),
		EntryMotivation: strings.TrimSpace(r.EntryMotivation),
		SelfAssessment:  strings.TrimSpace(r.SelfAssessment),
		ExitNote:        r.ExitNote,
	}, ""
}

// @Summary List operations
// @Tags operations
// @Param status query string false "PENDING or COMPLETED"
// @Success 200 {object} apiResponse
// @Router /api/operations [get]
func (h *OperationHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	params := repository.ListOperationsParams{
		Status: strQueryPtr(c, "status"),
		Limit:  intQuery(c, "limit", 100),
		Offset: intQuery(c, "offset", 0),
	}
	items, err := h.Repo.ListOperations(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	total, err := h.Repo.CountOperations(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, items, paginationMeta(params.Limit, params.Offset, total))
}

func (h *OperationHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetOperationByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "operation not found", nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Register operation for a match
// @Tags operations
// @Success 200 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/operations [post]
func (h *OperationHandler) create(c *gin.Context) {
	if h.Lifecycle == nil {
		Error(c, http.StatusInternalServerError, "lifecycle unavailable", nil)
		return
	}
	var req struct {
		MatchID uint64 `json:"match_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if req.MatchID == 0 {
		Error(c, http.StatusBadRequest, "match_id is required", nil)
		return
	}
	op, err := h.Lifecycle.CreateOperation(c.Request.Context(), req.MatchID)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, op, nil)
}

// @Summary Complete operation
// @Tags operations
// @Success 200 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/operations/{id}/complete [patch]
func (h *OperationHandler) complete(c *gin.Context) {
	if h.Lifecycle == nil {
		Error(c, http.StatusInternalServerError, "lifecycle unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	op, err := h.Lifecycle.CompleteOperation(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, op, nil)
}

func (h *OperationHandler) listItems(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	items, err := h.Repo.ListOperationItems(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}

// @Summary Add item to operation
// @Tags operations
// @Success 200 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/operations/{id}/items [post]
func (h *OperationHandler) createItem(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	op, err := h.Repo.GetOperationByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if op == nil {
		Error(c, http.StatusNotFound, "operation not found", nil)
		return
	}
	if op.Status == models.OperationStatusCompleted {
		Error(c, http.StatusConflict, "operation is completed, items are frozen", nil)
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, msg := req.toModel(id)
	if msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}
	if err := h.Repo.CreateOperationItem(c.Request.Context(), item); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

func (h *OperationHandler) getItem(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetOperationItemByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "operation item not found", nil)
		return
	}
	Ok(c, item, nil)
}

func (h *OperationHandler) updateItem(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	existing, err := h.Repo.GetOperationItemByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "operation item not found", nil)
		return
	}
	op, err := h.Repo.GetOperationByID(c.Request.Context(), existing.OperationID)
	if err != nil {
		Fail(c, err)
		return
	}
	if op != nil && op.Status == models.OperationStatusCompleted {
		Error(c, http.StatusConflict, "operation is completed, items are frozen", nil)
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, msg := req.toModel(existing.OperationID)
	if msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := h.Repo.UpdateOperationItem(c.Request.Context(), item); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

func (h *OperationHandler) deleteItem(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	existing, err := h.Repo.GetOperationItemByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "operation item not found", nil)
		return
	}
	op, err := h.Repo.GetOperationByID(c.Request.Context(), existing.OperationID)
	if err != nil {
		Fail(c, err)
		return
	}
	if op != nil && op.Status == models.OperationStatusCompleted {
		Error(c, http.StatusConflict, "operation is completed, items are frozen", nil)
		return
	}
	if err := h.Repo.DeleteOperationItem(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
