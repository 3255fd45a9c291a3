package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"betdiary/internal/models"
	"betdiary/internal/repository"
)

type CashHandler struct {
	Repo repository.Repository
}

func (h *CashHandler) Register(r *gin.Engine) {
	g := r.Group("/api/cash-transactions")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

type cashRequest struct {
	TxDate      string  `json:"tx_date"`
	TxTime      string  `json:"tx_time"`
	Amount      string  `json:"amount"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}

func (r cashRequest) toModel() (*models.CashTransaction, string) {
	if _, err := time.Parse("2006-01-02", r.TxDate); err != nil {
		return nil, "tx_date must be YYYY-MM-DD"
	}
	txTime := strings.TrimSpace(r.TxTime)
	if txTime == "" {
		txTime = "00:00"
	}
	if _, err := time.Parse("15:04", txTime); err != nil {
		return nil, "tx_time must be HH:MM"
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, "amount must be a positive decimal"
	}
	txType := strings.ToUpper(strings.TrimSpace(r.Type))
	if txType != models.CashTypeDeposit && txType != models.CashTypeWithdrawal {
		return nil, "type must be DEPOSIT or WITHDRAWAL"
	}
	return &models.CashTransaction{
		TxDate:      r.TxDate,
		TxTime:      txTime,
		Amount:      amount,
		Type:        txType,
		Description: r.Description,
	}, ""
}

// @Summary List cash transactions
// @Tags cash
// @Param date_from query string false "YYYY-MM-DD inclusive"
// @Param date_to query string false "YYYY-MM-DD inclusive"
// @Param type query string false "DEPOSIT or WITHDRAWAL"
// @Success 200 {object} apiResponse
// @Router /api/cash-transactions [get]
func (h *CashHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	params := repository.ListCashParams{
		DateFrom: strQueryPtr(c, "date_from"),
		DateTo:   strQueryPtr(c, "date_to"),
		Type:     strQueryPtr(c, "type"),
		Limit:    intQuery(c, "limit", 100),
		Offset:   intQuery(c, "offset", 0),
	}
	items, err := h.Repo.ListCashTransactions(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	total, err := h.Repo.CountCashTransactions(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, items, paginationMeta(params.Limit, params.Offset, total))
}

func (h *CashHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetCashTransactionByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "cash transaction not found", nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Record cash transaction
// @Tags cash
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/cash-transactions [post]
func (h *CashHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req cashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, msg := req.toModel()
	if msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}
	if err := h.Repo.CreateCashTransaction(c.Request.Context(), item); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

func (h *CashHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	existing, err := h.Repo.GetCashTransactionByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "cash transaction not found", nil)
		return
	}
	var req cashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, msg := req.toModel()
	if msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := h.Repo.UpdateCashTransaction(c.Request.Context(), item); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

func (h *CashHandler) delete(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Repo.DeleteCashTransaction(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
