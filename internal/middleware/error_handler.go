package middleware

import (
	"prestige-properties/internal/errors"
	"prestige-properties/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorRenderer writes the response for a mapped error.
type ErrorRenderer func(c *gin.Context, appErr *errors.AppError)

// ErrorHandler catches errors and returns standardized responses. JSON callers get
// the error envelope; everyone else gets render.
func ErrorHandler(render ErrorRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr := errors.MapError(err)

		logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, code=%s, error=%s",
			c.Request.URL.Path,
			c.Request.Method,
			c.ClientIP(),
			appErr.Code,
			appErr.TechnicalMessage)

		if WantsJSON(c) || render == nil {
			c.JSON(appErr.HTTPStatus, gin.H{
				"error": gin.H{
					"message": appErr.UserMessage,
					"code":    appErr.Code,
				},
			})
			return
		}
		render(c, appErr)
	}
}

// WantsJSON reports whether the caller prefers a JSON answer to an HTML page.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
