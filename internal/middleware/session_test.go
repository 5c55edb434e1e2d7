package middleware

import (
	"net/http"
	"net/http/httptest"
	"speech_coach_backend/internal/config"
	"speech_coach_backend/internal/util"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSessionConfig = config.SessionConfig{
	Secret:     "0123456789abcdef0123456789abcdef",
	CookieName: "speech_session",
	ExpireTime: time.Hour,
}

func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(testSessionConfig), RequireSession())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, util.GetSessionID(c))
	})
	return r
}

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	r := newSessionRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "speech_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	claims, err := util.ParseSessionToken(cookies[0].Value, testSessionConfig.Secret)
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), claims.SessionID)
}

func TestSessionMiddleware_ReusesValidCookie(t *testing.T) {
	r := newSessionRouter()
	token, err := util.GenerateSessionToken("sess-42", testSessionConfig.Secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "speech_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "sess-42", w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestSessionMiddleware_ReplacesForgedCookie(t *testing.T) {
	r := newSessionRouter()
	forged, err := util.GenerateSessionToken("sess-42", "another-secret-another-secret-xx", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "speech_session", Value: forged})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "sess-42", w.Body.String())
	assert.Len(t, w.Result().Cookies(), 1)
}
