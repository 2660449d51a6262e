package handlers

import (
	"net/http"
	"strconv"

	apperrors "prestige-properties/internal/errors"
	"prestige-properties/internal/i18n"
	"prestige-properties/internal/middleware"
	"prestige-properties/internal/services"

	"github.com/gin-gonic/gin"
)

func invalidParameters(technical string, err error) *apperrors.AppError {
	appErr := apperrors.NewAppError(technical, apperrors.MsgInvalidParameters, apperrors.ErrCodeInvalidParameters, http.StatusBadRequest, err)
	appErr.MessageKey = apperrors.KeyInvalidParameters
	return appErr
}

// Gallery handles POST [/{locale}]/properties/{slug}/gallery/{action}. Script
// callers get the new GalleryView as JSON; form posts are redirected back.
func (h *PropertyHandler) Gallery(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	view, err := h.properties.Detail(ctx, slug)
	if err != nil {
		_ = c.Error(err)
		return
	}

	cmd := services.GalleryCommand{Action: c.Param("action")}
	switch cmd.Action {
	case services.GalleryJump:
		index, err := strconv.Atoi(c.PostForm("index"))
		if err != nil {
			_ = c.Error(invalidParameters("gallery jump index is not a number", err))
			return
		}
		cmd.Index = index
	case services.GalleryFailed:
		cmd.Image = c.PostForm("image")
	}

	controller, err := h.gallery.Apply(ctx, middleware.SessionState(c), middleware.SessionID(c), slug, view.ImageURLs, cmd)
	if err != nil {
		_ = c.Error(invalidParameters(err.Error(), err))
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, services.NewGalleryView(controller))
		return
	}
	target := i18n.LocalizedPath(middleware.Locale(c), "/properties/"+slug) + "?resume=1#gallery"
	c.Redirect(http.StatusSeeOther, target)
}
