package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"betdiary/internal/service"
)

type ReportHandler struct {
	Reports *service.ReportService
}

func (h *ReportHandler) Register(r *gin.Engine) {
	g := r.Group("/api/reports")
	g.GET("/aggregate", h.aggregate)
	g.GET("/dashboard", h.dashboard)
	g.GET("/annual-summary/:year", h.annualSummary)
}

// @Summary Raw aggregate: operations with items plus flattened detail rows
// @Tags reports
// @Success 200 {object} apiResponse
// @Router /api/reports/aggregate [get]
func (h *ReportHandler) aggregate(c *gin.Context) {
	if h.Reports == nil {
		Error(c, http.StatusInternalServerError, "reports unavailable", nil)
		return
	}
	out, err := h.Reports.Aggregate(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, out, nil)
}

// @Summary Performance dashboard over settled items
// @Tags reports
// @Success 200 {object} apiResponse
// @Router /api/reports/dashboard [get]
func (h *ReportHandler) dashboard(c *gin.Context) {
	if h.Reports == nil {
		Error(c, http.StatusInternalServerError, "reports unavailable", nil)
		return
	}
	out, err := h.Reports.Dashboard(c.Request.Context(), time.Now().UTC())
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, out, nil)
}

// @Summary Month-by-month bankroll chain for a year
// @Tags reports
// @Param year path int true "calendar year"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/reports/annual-summary/{year} [get]
func (h *ReportHandler) annualSummary(c *gin.Context) {
	if h.Reports == nil {
		Error(c, http.StatusInternalServerError, "reports unavailable", nil)
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		Error(c, http.StatusBadRequest, "year must be an integer", nil)
		return
	}
	rows, err := h.Reports.AnnualSummary(c.Request.Context(), year)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, rows, map[string]any{"year": year})
}
