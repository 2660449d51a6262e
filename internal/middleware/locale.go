package middleware

import (
	"net/http"

	"prestige-properties/internal/i18n"

	"github.com/gin-gonic/gin"
)

const (
	ctxLocaleKey     = "locale"
	sessionLocaleKey = "locale"
)

// LocaleMiddleware pins the locale of a route group. Page views remember it in
// the session; a first unprefixed page view is redirected to the visitor's
// preferred language when that is not the default.
func LocaleMiddleware(l i18n.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxLocaleKey, l)
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		session := Session(c)
		remembered, _ := session.Values[sessionLocaleKey].(string)
		if remembered == "" && l.IsDefault() {
			if preferred := i18n.Negotiate(c.GetHeader("Accept-Language")); !preferred.IsDefault() {
				c.Redirect(http.StatusFound, i18n.SwitchPath(c.Request.URL.RequestURI(), l, preferred))
				c.Abort()
				return
			}
		}
		if remembered != l.Code {
			session.Values[sessionLocaleKey] = l.Code
			saveSession(c)
		}
		c.Next()
	}
}

// Locale returns the request locale; routes outside a locale group resolve it from
// the URL prefix.
func Locale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(ctxLocaleKey); ok {
		return v.(i18n.Locale)
	}
	l, _ := i18n.SplitPath(c.Request.URL.Path)
	return l
}
