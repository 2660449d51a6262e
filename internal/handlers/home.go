package handlers

import (
	"encoding/json"
	"net/http"

	"prestige-properties/internal/handoff"
	"prestige-properties/internal/middleware"
	"prestige-properties/internal/models"
	"prestige-properties/internal/services"
	"prestige-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const contactFlashKey = "contact"

// contactFlash survives the redirect after a non-script form post.
type contactFlash struct {
	Status *models.ContactStatus    `json:"status,omitempty"`
	Form   models.ContactSubmission `json:"form"`
	Fields map[string]string        `json:"fields,omitempty"`
}

type HomeHandler struct {
	pages      *Pages
	properties *services.PropertyService
}

func NewHomeHandler(pages *Pages, properties *services.PropertyService) *HomeHandler {
	return &HomeHandler{pages: pages, properties: properties}
}

// Home renders GET [/{locale}]/. Every render is a mount: a pending inquiry
// handoff is consumed, otherwise the saved scroll offset is restored.
func (h *HomeHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	locale := middleware.Locale(c)

	featured, err := h.properties.Featured(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	coordinator := handoff.NewCoordinator(middleware.SessionState(c), h.pages.catalog.InquiryMessages(locale))
	mount := coordinator.Mount(ctx)

	data := homePage{
		pageData: h.pages.base(c, "home", ""),
		Content:  h.properties.Content(ctx),
		Featured: h.pages.cards(c, featured),
	}
	data.Scroll = newScrollDirective(mount.Scroll)
	data.Form.Message = mount.Prefill

	if flash, ok := popContactFlash(c); ok {
		data.Status = flash.Status
		data.FieldErrors = flash.Fields
		if flash.Fields != nil {
			data.Form = flash.Form
		}
	}

	noStore(c)
	c.HTML(http.StatusOK, "home.html", data)
}

func pushContactFlash(c *gin.Context, flash contactFlash) {
	payload, err := json.Marshal(flash)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to encode contact flash: %v", err)
		return
	}
	session := middleware.Session(c)
	session.AddFlash(string(payload), contactFlashKey)
	saveSession(c, session)
}

func popContactFlash(c *gin.Context) (contactFlash, bool) {
	session := middleware.Session(c)
	flashes := session.Flashes(contactFlashKey)
	if len(flashes) == 0 {
		return contactFlash{}, false
	}
	saveSession(c, session)

	raw, _ := flashes[len(flashes)-1].(string)
	var flash contactFlash
	if err := json.Unmarshal([]byte(raw), &flash); err != nil {
		logger.GlobalLogger.Warnf("discarding malformed contact flash: %v", err)
		return contactFlash{}, false
	}
	return flash, true
}

func saveSession(c *gin.Context, session *sessions.Session) {
	if err := session.Save(c.Request, c.Writer); err != nil {
		logger.GlobalLogger.Errorf("failed to save session: %v", err)
	}
}
