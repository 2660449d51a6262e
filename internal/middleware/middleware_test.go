package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	apperrors "prestige-properties/internal/errors"
	"prestige-properties/internal/i18n"
	"prestige-properties/internal/repositories"
	"prestige-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(PerMinute(1), 2)
	r := gin.New()
	r.Use(ErrorHandler(nil))
	r.POST("/contact", RateLimitMiddleware(rl), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = ip + ":4711"
		return serve(r, req).Code
	}

	assert.Equal(t, http.StatusNoContent, post("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, post("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, post("10.0.0.2"), "limits are per client")

	// only the untouched limiter has a full bucket
	assert.Equal(t, 0, rl.sweep())
	rl.getLimiter("10.0.0.3")
	assert.Equal(t, 1, rl.sweep())
}

func TestPerMinute(t *testing.T) {
	assert.InDelta(t, 0.5, float64(PerMinute(30)), 1e-9)
}

func TestErrorHandler(t *testing.T) {
	var rendered *apperrors.AppError
	render := func(c *gin.Context, appErr *apperrors.AppError) {
		rendered = appErr
		c.String(appErr.HTTPStatus, "page: %s", appErr.Code)
	}

	r := gin.New()
	r.Use(ErrorHandler(render))
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(apperrors.ErrPropertyNotFound) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	r.GET("/written", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
		_ = c.Error(errors.New("late"))
	})

	tests := []struct {
		name     string
		path     string
		accept   string
		status   int
		body     string
		rendered bool
	}{
		{"html not found", "/missing", "text/html", http.StatusNotFound, "page: PROPERTY_NOT_FOUND", true},
		{"no accept header is html", "/boom", "", http.StatusInternalServerError, "page: INTERNAL_ERROR", true},
		{"json not found", "/missing", "application/json", http.StatusNotFound, `"code":"PROPERTY_NOT_FOUND"`, false},
		{"written response untouched", "/written", "application/json", http.StatusOK, "fine", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered = nil
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := serve(r, req)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.Equal(t, tt.rendered, rendered != nil)
		})
	}
}

func TestSecureHeaders(t *testing.T) {
	for _, hsts := range []bool{false, true} {
		r := gin.New()
		r.Use(SecureHeaders(hsts))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.Equal(t, hsts, rec.Header().Get("Strict-Transport-Security") != "")
	}
}

func sessionRouter(repo repositories.SessionStateRepository) *gin.Engine {
	store := NewCookieStore("0123456789abcdef0123456789abcdef", 3600, false)
	r := gin.New()
	site := r.Group("", SessionMiddleware(store, repo))
	site.GET("/id", func(c *gin.Context) {
		ctx := c.Request.Context()
		state := SessionState(c)
		visits, _, _ := state.Get(ctx, "visits")
		_ = state.Set(ctx, "visits", visits+"x")
		c.String(http.StatusOK, "%s %s", SessionID(c), visits+"x")
	})
	for _, l := range i18n.Supported {
		prefix := ""
		if !l.IsDefault() {
			prefix = "/" + l.Code
		}
		site.Group(prefix, LocaleMiddleware(l)).GET("/page", func(c *gin.Context) {
			c.String(http.StatusOK, Locale(c).Code)
		})
	}
	return r
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			found = c
		}
	}
	require.NotNil(t, found, "session cookie not set")
	return found
}

func TestSessionMiddleware(t *testing.T) {
	r := sessionRouter(repositories.NewMemorySessionStateRepository(time.Hour))

	first := serve(r, httptest.NewRequest(http.MethodGet, "/id", nil))
	require.Equal(t, http.StatusOK, first.Code)
	cookie := sessionCookie(t, first)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	fields := strings.Fields(first.Body.String())
	require.Len(t, fields, 2)
	id := fields[0]
	assert.Equal(t, "x", fields[1])

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.AddCookie(cookie)
	second := serve(r, req)
	assert.Equal(t, id+" xx", second.Body.String())
	assert.Empty(t, second.Result().Cookies(), "known sessions are not re-issued")

	req = httptest.NewRequest(http.MethodGet, "/id", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tampered"})
	third := serve(r, req)
	assert.NotContains(t, third.Body.String(), id)
	assert.Contains(t, third.Body.String(), " x")
	sessionCookie(t, third)
}

func TestLocaleMiddleware(t *testing.T) {
	r := sessionRouter(repositories.NewMemorySessionStateRepository(time.Hour))

	tests := []struct {
		name     string
		path     string
		language string
		status   int
		body     string
		location string
	}{
		{"default locale", "/page", "", http.StatusOK, "en", ""},
		{"prefixed locale", "/tl/page", "", http.StatusOK, "tl", ""},
		{"english browser", "/page", "en-GB,en;q=0.8", http.StatusOK, "en", ""},
		{"polish browser redirected", "/page?x=1", "pl-PL,pl;q=0.9", http.StatusFound, "", "/pl/page?x=1"},
		{"polish browser on polish page", "/pl/page", "pl", http.StatusOK, "pl", ""},
		{"unsupported language", "/page", "de-DE", http.StatusOK, "en", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.language != "" {
				req.Header.Set("Accept-Language", tt.language)
			}
			rec := serve(r, req)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
			if tt.location != "" {
				// gin writes a short link body for redirected GETs
				assert.Contains(t, rec.Body.String(), tt.location)
				return
			}
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestLocaleMiddleware_RemembersChoice(t *testing.T) {
	r := sessionRouter(repositories.NewMemorySessionStateRepository(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/pl/page", nil)
	req.Header.Set("Accept-Language", "pl")
	cookie := sessionCookie(t, serve(r, req))

	// the visitor picked English from the switcher
	req = httptest.NewRequest(http.MethodGet, "/page", nil)
	req.Header.Set("Accept-Language", "pl")
	req.AddCookie(cookie)
	rec := serve(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", rec.Body.String())
}

func TestLocale_FallsBackToPath(t *testing.T) {
	r := gin.New()
	r.GET("/*any", func(c *gin.Context) { c.String(http.StatusOK, Locale(c).Code) })

	assert.Equal(t, "tl", serve(r, httptest.NewRequest(http.MethodGet, "/tl/anything", nil)).Body.String())
	assert.Equal(t, "en", serve(r, httptest.NewRequest(http.MethodGet, "/elsewhere", nil)).Body.String())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := logger.GlobalLogger
	logger.GlobalLogger = logger.New(&buf, "INFO")
	t.Cleanup(func() { logger.GlobalLogger = previous })

	r := gin.New()
	r.Use(RequestLogger("/static/"))
	r.GET("/properties/:slug", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/static/*file", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	tests := []struct {
		name     string
		path     string
		contains []string
		silent   bool
	}{
		{"unmatched page", "/tl/properties/villa", []string{"WARN", "route=unmatched", "status=404", "locale=tl"}, false},
		{"route template", "/properties/villa", []string{"INFO", "GET /properties/villa", "route=/properties/:slug", "status=200", "locale=en"}, false},
		{"quiet asset", "/static/site.css", nil, true},
		{"server error", "/broken", []string{"ERROR", "status=502"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			serve(r, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if tt.silent {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
