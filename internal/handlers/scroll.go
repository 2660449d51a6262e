package handlers

import (
	"math"
	"net/http"

	"prestige-properties/internal/handoff"
	"prestige-properties/internal/middleware"

	"github.com/gin-gonic/gin"
)

// maxScrollOffset bounds stored offsets; no page is taller.
const maxScrollOffset = 1 << 24

type scrollRequest struct {
	Y *float64 `form:"y" json:"y"`
}

// SaveScroll handles POST /scroll, sent by the home page as it is left.
func SaveScroll(c *gin.Context) {
	var req scrollRequest
	if err := c.ShouldBind(&req); err != nil || req.Y == nil || math.IsNaN(*req.Y) || math.IsInf(*req.Y, 0) {
		_ = c.Error(invalidParameters("scroll offset missing or malformed", err))
		return
	}
	y := math.Min(math.Max(*req.Y, 0), maxScrollOffset)

	coordinator := handoff.NewCoordinator(middleware.SessionState(c), nil)
	if err := coordinator.SaveScrollPosition(c.Request.Context(), int(y)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
