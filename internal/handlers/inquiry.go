package handlers

import (
	"net/http"

	"prestige-properties/internal/handoff"
	"prestige-properties/internal/i18n"
	"prestige-properties/internal/middleware"
	"prestige-properties/internal/transformers"
	"prestige-properties/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Inquiry handles POST [/{locale}]/properties/{slug}/inquiry: it records the intent
// and sends the visitor to the home page contact section with a full navigation.
func (h *PropertyHandler) Inquiry(c *gin.Context) {
	ctx := c.Request.Context()
	locale := middleware.Locale(c)

	view, err := h.properties.Detail(ctx, c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	raw := c.PostForm("kind")
	if raw == "" {
		raw = transformers.DefaultInquiryKind(&view.Property)
	}
	kind, ok := handoff.ParseKind(raw)
	if !ok {
		_ = c.Error(invalidParameters("unknown inquiry kind "+raw, nil))
		return
	}

	coordinator := handoff.NewCoordinator(middleware.SessionState(c), h.pages.catalog.InquiryMessages(locale))
	if err := coordinator.SignalInquiry(ctx, view.Name, kind); err != nil {
		// the visitor still lands on the contact form, just without the prefill
		logger.GlobalLogger.Errorf("failed to signal inquiry: slug=%s, session=%s, error=%v", view.Slug, middleware.SessionID(c), err)
	}

	c.Redirect(http.StatusSeeOther, i18n.LocalizedPath(locale, "/")+"#"+handoff.ContactSectionID)
}
