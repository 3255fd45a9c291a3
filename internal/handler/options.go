package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"betdiary/internal/service"
)

// OptionsHandler exposes the merged default+custom value lists for the
// extensible qualitative fields.
type OptionsHandler struct {
	Options *service.OptionsService
}

func (h *OptionsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/options")
	g.GET("/:field", h.list)
	g.POST("/:field", h.add)
	g.DELETE("/:field/:id", h.remove)
}

// @Summary List option values for a field
// @Tags options
// @Param field path string true "emotional_state, entry_motivation, self_assessment or expected_tendency"
// @Success 200 {object} apiResponse
// @Router /api/options/{field} [get]
func (h *OptionsHandler) list(c *gin.Context) {
	if h.Options == nil {
		Error(c, http.StatusInternalServerError, "options unavailable", nil)
		return
	}
	values, err := h.Options.List(c.Request.Context(), c.Param("field"))
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, values, map[string]any{"count": len(values)})
}

// @Summary Add custom option value
// @Tags options
// @Success 200 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/options/{field} [post]
func (h *OptionsHandler) add(c *gin.Context) {
	if h.Options == nil {
		Error(c, http.StatusInternalServerError, "options unavailable", nil)
		return
	}
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Options.Add(c.Request.Context(), c.Param("field"), req.Value)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Remove custom option value
// @Tags options
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/options/{field}/{id} [delete]
func (h *OptionsHandler) remove(c *gin.Context) {
	if h.Options == nil {
		Error(c, http.StatusInternalServerError, "options unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Options.Remove(c.Request.Context(), c.Param("field"), id); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
