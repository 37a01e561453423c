// Package guard supplies the authenticated-session context the wizard
// consumes. It does not implement authentication itself: it verifies
// session tokens minted by the identity collaborator and turns them into a
// request-scoped principal, redirecting to sign-in when none is present.
package guard

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Principal identifies the signed-in user for a request.
type Principal struct {
	UserID  string
	IsAdmin bool
}

// ErrNoSession is returned when a request carries no usable session token.
var ErrNoSession = errors.New("no session")

const principalKey = "guard.principal"

// sessionClaims is the token payload the identity service issues.
type sessionClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// ParseSessionToken verifies an HS256 session token and extracts the
// principal. The subject claim carries the user id.
func ParseSessionToken(tokenStr, signingKey string) (Principal, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return Principal{}, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return Principal{}, ErrNoSession
	}
	return Principal{UserID: claims.Subject, IsAdmin: claims.Admin}, nil
}

// RequireUser is gin middleware that rejects unauthenticated requests.
// Browser-style requests are redirected to the sign-in URL; API clients get
// a 401. The verified principal is stored on the context for handlers.
func RequireUser(signingKey, signInURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			if cookie, err := c.Cookie("session"); err == nil {
				tokenStr = cookie
			}
		}
		if tokenStr == "" {
			redirectOrReject(c, signInURL)
			return
		}
		p, err := ParseSessionToken(tokenStr, signingKey)
		if err != nil {
			redirectOrReject(c, signInURL)
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireAdmin gates the admin surface. Must run after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok || !p.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the principal RequireUser attached to the
// request context.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func redirectOrReject(c *gin.Context, signInURL string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, signInURL)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign-in required"})
}
