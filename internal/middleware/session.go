package middleware

import (
	"net/http"

	"prestige-properties/internal/repositories"
	"prestige-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionCookieName = "prestige_session"

	sessionIDKey       = "sid"
	ctxSessionKey      = "session"
	ctxSessionIDKey    = "session_id"
	ctxSessionStateKey = "session_state"
)

// NewCookieStore builds the signed cookie store that carries the session id and
// flash messages.
func NewCookieStore(secret string, maxAge int, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionMiddleware gives every visitor a stable random id and exposes the session
// state scoped to it.
func SessionMiddleware(store sessions.Store, repo repositories.SessionStateRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// a tampered or expired cookie yields a fresh session and an error we can ignore
		session, err := store.Get(c.Request, SessionCookieName)
		if err != nil {
			logger.GlobalLogger.Debugf("session cookie rejected: %v", err)
		}

		c.Set(ctxSessionKey, session)

		id, _ := session.Values[sessionIDKey].(string)
		if _, parseErr := uuid.Parse(id); parseErr != nil {
			id = uuid.NewString()
			session.Values[sessionIDKey] = id
			saveSession(c)
		}
		c.Set(ctxSessionIDKey, id)
		c.Set(ctxSessionStateKey, repo.ForSession(id))
		c.Next()
	}
}

// Session returns the cookie session of the request.
func Session(c *gin.Context) *sessions.Session {
	return c.MustGet(ctxSessionKey).(*sessions.Session)
}

// SessionID returns the visitor's session id.
func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}

// SessionState returns the state store scoped to the visitor's session.
func SessionState(c *gin.Context) repositories.SessionState {
	return c.MustGet(ctxSessionStateKey).(repositories.SessionState)
}

func saveSession(c *gin.Context) {
	if err := Session(c).Save(c.Request, c.Writer); err != nil {
		logger.GlobalLogger.Errorf("failed to save session: %v", err)
	}
}
