package middleware

import (
	"net/http"

	"jasit-store/services"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "jasit_session"
	sessionKey    = "session"
)

type sessionScope struct {
	store  *services.SessionStore
	secure bool
	sess   *services.Session
}

// SessionMiddleware attaches the visitor's live cart session when the cookie
// names one. Nothing is created here; StartSession does that on the first
// write.
func SessionMiddleware(store *services.SessionStore, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := &sessionScope{store: store, secure: secure}
		if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
			if sess, ok := store.Get(id); ok {
				scope.sess = sess
			}
		}

		c.Set(sessionKey, scope)
		c.Next()
	}
}

func currentScope(c *gin.Context) *sessionScope {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	scope, _ := v.(*sessionScope)
	return scope
}

// CurrentSession returns the visitor's session, or nil when none has been
// started yet. A nil session reads as an empty cart.
func CurrentSession(c *gin.Context) *services.Session {
	if scope := currentScope(c); scope != nil {
		return scope.sess
	}
	return nil
}

// StartSession returns the visitor's session, starting one and issuing the
// cookie if needed.
func StartSession(c *gin.Context) *services.Session {
	scope := currentScope(c)
	if scope == nil {
		return nil
	}
	if scope.sess == nil {
		sess, created := scope.store.GetOrCreate("")
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sess.ID, 0, "/", "", scope.secure, true)
		}
		scope.sess = sess
	}
	return scope.sess
}
