package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"betdiary/internal/models"
	"betdiary/internal/repository"
)

// PreAnalysisHandler serves the qualitative pre-match notes. One row
// per match, keyed by match id.
type PreAnalysisHandler struct {
	Repo repository.Repository
}

func (h *PreAnalysisHandler) Register(r *gin.Engine) {
	g := r.Group("/api/pre-analyses")
	g.GET("/with-matches", h.listWithMatches)
	g.GET("/:match_id", h.get)
	g.POST("", h.create)
	g.PUT("/:match_id", h.update)
}

type preAnalysisRequest struct {
	MatchID             uint64 `json:"match_id"`
	ClassificationRank  string `json:"classification_rank"`
	TeamForm            string `json:"team_form"`
	MustWinMotive       string `json:"must_win_motive"`
	NextGameImportance  string `json:"next_game_importance"`
	InjuriesSuspensions string `json:"injuries_suspensions"`
	ExpectedTendency    string `json:"expected_tendency"`
	HomeRecentForm      string `json:"home_recent_form"`
	AwayRecentForm      string `json:"away_recent_form"`
	OddsValueAssessment string `json:"odds_value_assessment"`
	Highlight           string `json:"highlight"`
}

func (r preAnalysisRequest) apply(item *models.PreAnalysis) {
	item.ClassificationRank = r.ClassificationRank
	item.TeamForm = r.TeamForm
	item.MustWinMotive = r.MustWinMotive
	item.NextGameImportance = r.NextGameImportance
	item.InjuriesSuspensions = r.InjuriesSuspensions
	item.ExpectedTendency = r.ExpectedTendency
	item.HomeRecentForm = r.HomeRecentForm
	item.AwayRecentForm = r.AwayRecentForm
	item.OddsValueAssessment = r.OddsValueAssessment
	item.Highlight = r.Highlight
}

// @Summary Get pre-analysis for a match
// @Tags pre-analyses
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/pre-analyses/{match_id} [get]
func (h *PreAnalysisHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	matchID := uint64Param(c, "match_id")
	if matchID == 0 {
		Error(c, http.StatusBadRequest, "invalid match_id", nil)
		return
	}
	item, err := h.Repo.GetPreAnalysisByMatchID(c.Request.Context(), matchID)
	if err != nil {
		Fail(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "pre-analysis not found", nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary List pre-analyses with their matches
// @Tags pre-analyses
// @Success 200 {object} apiResponse
// @Router /api/pre-analyses/with-matches [get]
func (h *PreAnalysisHandler) listWithMatches(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListPreAnalysesWithMatches(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}

// @Summary Create pre-analysis
// @Tags pre-analyses
// @Success 200 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/pre-analyses [post]
func (h *PreAnalysisHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req preAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if req.MatchID == 0 {
		Error(c, http.StatusBadRequest, "match_id is required", nil)
		return
	}
	match, err := h.Repo.GetMatchByID(c.Request.Context(), req.MatchID)
	if err != nil {
		Fail(c, err)
		return
	}
	if match == nil {
		Error(c, http.StatusNotFound, "match not found", nil)
		return
	}
	existing, err := h.Repo.GetPreAnalysisByMatchID(c.Request.Context(), req.MatchID)
	if err != nil {
		Fail(c, err)
		return
	}
	if existing != nil {
		Error(c, http.StatusConflict, "match already has a pre-analysis", nil)
		return
	}
	item := &models.PreAnalysis{MatchID: req.MatchID}
	req.apply(item)
	if err := h.Repo.CreatePreAnalysis(c.Request.Context(), item); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Update pre-analysis
// @Tags pre-analyses
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/pre-analyses/{match_id} [put]
func (h *PreAnalysisHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	matchID := uint64Param(c, "match_id")
	if matchID == 0 {
		Error(c, http.StatusBadRequest, "invalid match_id", nil)
		return
	}
	var req preAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Repo.GetPreAnalysisByMatchID(c.Request.Context(), matchID)
	if err != nil {
		Fail(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "pre-analysis not found", nil)
		return
	}
	req.apply(item)
	item.Match = nil
	if err := h.Repo.UpdatePreAnalysis(c.Request.Context(), item); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}
