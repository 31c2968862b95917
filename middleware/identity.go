package middleware

import (
	"net/http"
	"strings"

	"rotiseria-api/models"

	"github.com/gin-gonic/gin"
)

// Identity is the resolved caller, regardless of which credential was used
type Identity struct {
	UserID uint
	Email  string
	Role   models.UserRole
}

// Strategy resolves a request to an identity. The two implementations are
// the bearer-token strategy (mobile API) and the session-cookie strategy
// (web panel); they never mix.
type Strategy interface {
	Identify(c *gin.Context) (Identity, bool)
}

// SelectStrategy picks the authentication strategy for a request. The
// predicate is intentionally trivial: a Bearer authorization header means
// the mobile API, anything else falls back to the panel session cookie.
func SelectStrategy(r *http.Request) Strategy {
	if strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		return bearerStrategy{}
	}
	return sessionStrategy{}
}

type bearerStrategy struct{}

func (bearerStrategy) Identify(c *gin.Context) (Identity, bool) {
	tokenStr := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	claims, err := ParseToken(tokenStr)
	if err != nil {
		return Identity{}, false
	}
	return Identity{UserID: claims.UserID, Email: claims.Subject, Role: claims.Role}, true
}

type sessionStrategy struct{}

func (sessionStrategy) Identify(c *gin.Context) (Identity, bool) {
	session, ok := CurrentSession(c.Request)
	if !ok {
		return Identity{}, false
	}
	role, ok := models.NormalizeRole(string(session.Role))
	if !ok {
		return Identity{}, false
	}
	return Identity{UserID: session.UserID, Role: role}, true
}
