package handlers

import (
	"errors"
	"net/http"

	apperrors "prestige-properties/internal/errors"
	"prestige-properties/internal/handoff"
	"prestige-properties/internal/i18n"
	"prestige-properties/internal/middleware"
	"prestige-properties/internal/models"
	"prestige-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	pages   *Pages
	contact *services.ContactService
}

func NewContactHandler(pages *Pages, contact *services.ContactService) *ContactHandler {
	return &ContactHandler{pages: pages, contact: contact}
}

type contactResponse struct {
	models.ContactStatus
	Fields map[string]string `json:"fields,omitempty"`
}

// Submit handles POST [/{locale}]/contact. Script callers get a ContactStatus as
// JSON; form posts get a flash banner and a redirect back to the contact section.
func (h *ContactHandler) Submit(c *gin.Context) {
	locale := middleware.Locale(c)
	catalog := h.pages.catalog

	var submission models.ContactSubmission
	if err := c.ShouldBind(&submission); err != nil {
		_ = c.Error(invalidParameters("contact form could not be decoded", err))
		return
	}

	err := h.contact.Submit(c.Request.Context(), &submission, catalog.T(locale, "contact.form.subject"))

	response := contactResponse{}
	httpStatus := http.StatusOK
	switch {
	case err == nil:
		response.ContactStatus = models.ContactStatus{
			Outcome:    models.ContactOutcomeSuccess,
			Message:    catalog.T(locale, "contact.form.successMessage"),
			ClearAfter: int(services.SuccessBannerTimeout.Milliseconds()),
		}
	default:
		appErr := apperrors.MapError(err)
		httpStatus = appErr.HTTPStatus
		response.ContactStatus = models.ContactStatus{
			Outcome: models.ContactOutcomeError,
			Message: catalog.T(locale, appErr.MessageKey),
		}
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			response.Fields = make(map[string]string, len(verr.Fields))
			for field, key := range verr.Fields {
				response.Fields[field] = catalog.T(locale, key)
			}
		}
	}

	if middleware.WantsJSON(c) {
		c.JSON(httpStatus, response)
		return
	}

	flash := contactFlash{Status: &response.ContactStatus}
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		flash.Form = submission
		flash.Fields = verr.Fields
	}
	pushContactFlash(c, flash)
	c.Redirect(http.StatusSeeOther, i18n.LocalizedPath(locale, "/")+"#"+handoff.ContactSectionID)
}
