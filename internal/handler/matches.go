package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"betdiary/internal/models"
	"betdiary/internal/repository"
	"betdiary/internal/service"
)

type MatchHandler struct {
	Repo      repository.Repository
	Lifecycle *service.LifecycleService
}

func (h *MatchHandler) Register(r *gin.Engine) {
	g := r.Group("/api/matches")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/pending-verification", h.pendingVerification)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.PATCH("/:id/mark-not-operated", h.markNotOperated)
	g.PATCH("/:id/mark-verified", h.markVerified)
}

type oddsPayload struct {
	Home string `json:"home"`
	Draw string `json:"draw"`
	Away string `json:"away"`
}

type matchRequest struct {
	MatchDate     string       `json:"match_date"`
	KickoffTime   string       `json:"kickoff_time"`
	CompetitionID uint64       `json:"competition_id"`
	HomeTeamID    uint64       `json:"home_team_id"`
	AwayTeamID    uint64       `json:"away_team_id"`
	Odds          *oddsPayload `json:"odds"`
}

func (r matchRequest) validate() string {
	if _, err := time.Parse("2006-01-02", r.MatchDate); err != nil {
		return "match_date must be YYYY-MM-DD"
	}
	if _, err := time.Parse("15:04", r.KickoffTime); err != nil {
		return "kickoff_time must be HH:MM"
	}
	if r.CompetitionID == 0 {
		return "competition_id is required"
	}
	if r.HomeTeamID == 0 || r.AwayTeamID == 0 {
		return "home_team_id and away_team_id are required"
	}
	if r.HomeTeamID == r.AwayTeamID {
		return "home and away team must differ"
	}
	if r.Odds != nil {
		for _, v := range []string{r.Odds.Home, r.Odds.Draw, r.Odds.Away} {
			if v == "" {
				continue
			}
			d, err := decimal.NewFromString(v)
			if err != nil || d.LessThanOrEqual(decimal.NewFromInt(1)) {
				return "odds values must be decimals greater than 1"
			}
		}
	}
	return ""
}

func (r matchRequest) oddsJSON() datatypes.JSON {
	if r.Odds == nil {
		return nil
	}
	raw, err := json.Marshal(r.Odds)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// @Summary List matches
// @Tags matches
// @Param date_from query string false "YYYY-MM-DD inclusive"
// @Param date_to query string false "YYYY-MM-DD inclusive"
// @Param competition_id query int false "filter by competition"
// @Param status query string false "lifecycle status"
// @Success 200 {object} apiResponse
// @Router /api/matches [get]
func (h *MatchHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	params := repository.ListMatchesParams{
		DateFrom:      strQueryPtr(c, "date_from"),
		DateTo:        strQueryPtr(c, "date_to"),
		CompetitionID: uint64QueryPtr(c, "competition_id"),
		Status:        strQueryPtr(c, "status"),
		Limit:         intQuery(c, "limit", 100),
		Offset:        intQuery(c, "offset", 0),
	}
	items, err := h.Repo.ListMatches(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	total, err := h.Repo.CountMatches(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, items, paginationMeta(params.Limit, params.Offset, total))
}

func (h *MatchHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetMatchByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "match not found", nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Register match
// @Tags matches
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/matches [post]
func (h *MatchHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if msg := req.validate(); msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}
	item := &models.Match{
		MatchDate:     req.MatchDate,
		KickoffTime:   req.KickoffTime,
		CompetitionID: req.CompetitionID,
		HomeTeamID:    req.HomeTeamID,
		AwayTeamID:    req.AwayTeamID,
		Odds:          req.oddsJSON(),
		Status:        models.MatchStatusPreAnalysis,
	}
	if err := h.Repo.CreateMatch(c.Request.Context(), item); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

func (h *MatchHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if msg := req.validate(); msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}
	item, err := h.Repo.GetMatchByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "match not found", nil)
		return
	}
	item.MatchDate = req.MatchDate
	item.KickoffTime = req.KickoffTime
	item.CompetitionID = req.CompetitionID
	item.HomeTeamID = req.HomeTeamID
	item.AwayTeamID = req.AwayTeamID
	item.Odds = req.oddsJSON()
	item.Competition = nil
	item.HomeTeam = nil
	item.AwayTeam = nil
	if err := h.Repo.UpdateMatch(c.Request.Context(), item); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

func (h *MatchHandler) delete(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Repo.DeleteMatch(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}

// @Summary Mark match not operated
// @Tags matches
// @Success 200 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/matches/{id}/mark-not-operated [patch]
func (h *MatchHandler) markNotOperated(c *gin.Context) {
	if h.Lifecycle == nil {
		Error(c, http.StatusInternalServerError, "lifecycle unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req struct {
		Justification string `json:"justification"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Lifecycle.MarkNotOperated(c.Request.Context(), id, req.Justification)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Mark match verified
// @Tags matches
// @Success 200 {object} apiResponse
// @Router /api/matches/{id}/mark-verified [patch]
func (h *MatchHandler) markVerified(c *gin.Context) {
	if h.Lifecycle == nil {
		Error(c, http.StatusInternalServerError, "lifecycle unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Lifecycle.MarkVerified(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Matches pending verification
// @Tags matches
// @Success 200 {object} apiResponse
// @Router /api/matches/pending-verification [get]
func (h *MatchHandler) pendingVerification(c *gin.Context) {
	if h.Lifecycle == nil {
		Error(c, http.StatusInternalServerError, "lifecycle unavailable", nil)
		return
	}
	items, err := h.Lifecycle.PendingVerification(c.Request.Context(), time.Now().UTC())
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}
