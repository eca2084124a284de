package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan_portal/internal/config"
	"loan_portal/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func useConfig(t *testing.T, ttl time.Duration) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{SessionSecret: "test-secret", SessionTTL: ttl}
	t.Cleanup(func() { config.AppConfig = prev })
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			found = ck
		}
	}
	return found
}

// newSessionRouter exposes login/whoami endpoints around the session helpers.
func newSessionRouter(user models.User) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), LoadSession())
	r.POST("/login", func(c *gin.Context) {
		if err := IssueSession(c, user); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.GET("/logout", func(c *gin.Context) {
		ClearSession(c)
		c.Status(http.StatusNoContent)
	})
	admin := r.Group("/admin", RequireAdmin())
	admin.GET("/whoami", func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "role": p.Role, "bank_id": p.BankID})
	})
	return r
}

func TestSessionRoundTrip(t *testing.T) {
	useConfig(t, 0)
	bankID := uint(3)
	r := newSessionRouter(models.User{ID: 7, Role: models.RoleAdmin, BankID: &bankID})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	session := cookieNamed(rec, SessionCookie)
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Zero(t, session.MaxAge, "no TTL means a browser-session cookie")

	p, err := ParseSession(session.Value)
	require.NoError(t, err)
	assert.Equal(t, uint(7), p.UserID)
	assert.Equal(t, models.RoleAdmin, p.Role)
	require.NotNil(t, p.BankID)
	assert.Equal(t, uint(3), *p.BankID)

	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"role":"admin","bank_id":3}`, rec.Body.String())
}

func TestSessionWithTTLSetsExpiry(t *testing.T) {
	useConfig(t, time.Hour)
	r := newSessionRouter(models.User{ID: 1, Role: models.RoleSuperAdmin})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	session := cookieNamed(rec, SessionCookie)
	require.NotNil(t, session)
	assert.Equal(t, 3600, session.MaxAge)

	p, err := ParseSession(session.Value)
	require.NoError(t, err)
	assert.Nil(t, p.BankID)
}

func TestRequireAdminRedirectsWithoutSession(t *testing.T) {
	useConfig(t, 0)
	r := newSessionRouter(models.User{ID: 1})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/whoami", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestTamperedSessionIsDiscarded(t *testing.T) {
	useConfig(t, 0)
	r := newSessionRouter(models.User{ID: 1})

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1, "role": "superadmin"}).
		SignedString([]byte("someone-elses-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: forged})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	cleared := cookieNamed(rec, SessionCookie)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	useConfig(t, 0)

	claims := sessionClaims{
		UserID: 1,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
	require.NoError(t, err)

	_, err = ParseSession(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestLogoutClearsSession(t *testing.T) {
	useConfig(t, 0)
	r := newSessionRouter(models.User{ID: 1})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
	session := cookieNamed(rec, SessionCookie)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	cleared := cookieNamed(rec, SessionCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
