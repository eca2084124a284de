package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"loan_portal/internal/config"
	"loan_portal/internal/models"
)

const (
	// SessionCookie carries the signed staff session.
	SessionCookie = "portal_session"
	// LoginPath is where unauthenticated admin requests are sent.
	LoginPath = "/admin/login"

	principalKey = "principal"
)

// Principal is the authenticated staff identity attached to a request.
type Principal struct {
	UserID uint
	Role   string
	BankID *uint
}

type sessionClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	BankID *uint  `json:"bank_id,omitempty"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.AppConfig.SessionSecret)
}

// IssueSession signs the user's identity into the session cookie and
// attaches the matching Principal to c.
func IssueSession(c *gin.Context, user models.User) error {
	now := time.Now()
	claims := sessionClaims{
		UserID: user.ID,
		Role:   user.Role,
		BankID: user.BankID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	maxAge := 0
	if ttl := config.AppConfig.SessionTTL; ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
		maxAge = int(ttl.Seconds())
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
	if err != nil {
		return err
	}
	setCookie(c, SessionCookie, token, maxAge)
	c.Set(principalKey, &Principal{UserID: user.ID, Role: user.Role, BankID: user.BankID})
	return nil
}

// ClearSession drops the session cookie and the request's Principal.
func ClearSession(c *gin.Context) {
	setCookie(c, SessionCookie, "", -1)
	c.Set(principalKey, (*Principal)(nil))
}

// ParseSession validates a session token and returns its Principal.
func ParseSession(token string) (*Principal, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return &Principal{UserID: claims.UserID, Role: claims.Role, BankID: claims.BankID}, nil
}

// LoadSession resolves the session cookie, if any, into a Principal.
// A cookie that fails verification is discarded.
func LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			p, err := ParseSession(token)
			if err != nil {
				RequestLogger(c).WithError(err).Debug("LoadSession: discarding invalid session cookie")
				ClearSession(c)
			} else {
				c.Set(principalKey, p)
			}
		}
		c.Next()
	}
}

// RequireAdmin redirects to the login page unless a Principal is present.
// It does not look at the role or the bank; any staff session passes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the identity attached by LoadSession or IssueSession.
func CurrentPrincipal(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok && p != nil
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", config.AppConfig.CookieSecure, true)
}
