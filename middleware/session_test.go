package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jasit-store/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	return nil
}

func sessionID(c *gin.Context) string {
	if sess := CurrentSession(c); sess != nil {
		return sess.ID
	}
	return ""
}

func newSessionRouter(store *services.SessionStore, secure bool) *gin.Engine {
	r := gin.New()
	r.Use(SessionMiddleware(store, secure))
	r.GET("/cart", func(c *gin.Context) {
		c.String(http.StatusOK, sessionID(c))
	})
	r.POST("/cart/items", func(c *gin.Context) {
		c.String(http.StatusOK, StartSession(c).ID)
	})
	return r
}

func serve(r http.Handler, method string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/cart", nil)
	if method == http.MethodPost {
		req = httptest.NewRequest(method, "/cart/items", nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionMiddleware_ReadsDoNotCreateSessions(t *testing.T) {
	store := services.NewSessionStore(time.Hour, zap.NewNop())
	r := newSessionRouter(store, false)

	for i := 0; i < 10; i++ {
		w := serve(r, http.MethodGet, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Nil(t, sessionCookie(w))
	}
	assert.Equal(t, 0, store.Len())
}

func TestSessionMiddleware_WriteStartsSession(t *testing.T) {
	store := services.NewSessionStore(time.Hour, zap.NewNop())
	r := newSessionRouter(store, false)

	w := serve(r, http.MethodPost, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, cookie.Value, w.Body.String())

	w = serve(r, http.MethodGet, &http.Cookie{Name: SessionCookie, Value: cookie.Value})
	assert.Equal(t, cookie.Value, w.Body.String(), "the same visitor keeps the same session")
	assert.Nil(t, sessionCookie(w), "no new cookie for a live session")

	w = serve(r, http.MethodPost, &http.Cookie{Name: SessionCookie, Value: cookie.Value})
	assert.Equal(t, cookie.Value, w.Body.String())
	assert.Nil(t, sessionCookie(w))
	assert.Equal(t, 1, store.Len())
}

func TestSessionMiddleware_UnknownCookieGetsFreshSession(t *testing.T) {
	store := services.NewSessionStore(time.Hour, zap.NewNop())
	r := newSessionRouter(store, true)

	stale := &http.Cookie{Name: SessionCookie, Value: "stale-id"}
	w := serve(r, http.MethodGet, stale)
	assert.Empty(t, w.Body.String())
	assert.Nil(t, sessionCookie(w))

	w = serve(r, http.MethodPost, stale)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NotEqual(t, "stale-id", cookie.Value)
	assert.True(t, cookie.Secure)
}

func TestCurrentSession_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentSession(c))
	assert.Nil(t, StartSession(c))
	assert.Nil(t, CurrentPrincipal(c))
}
