package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-signing-key"

func mintToken(t *testing.T, userID string, admin bool, key string) string {
	t.Helper()
	claims := sessionClaims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireUser(testKey, "/sign-in"))
	r.GET("/me", func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "admin": p.IsAdmin})
	})
	admin := r.Group("/admin", RequireAdmin())
	admin.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestParseSessionToken(t *testing.T) {
	token := mintToken(t, "user-1", true, testKey)
	p, err := ParseSessionToken(token, testKey)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.True(t, p.IsAdmin)

	_, err = ParseSessionToken(token, "wrong-key")
	assert.Error(t, err)
}

func TestRequireUser_MissingTokenAPI(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUser_MissingTokenBrowserRedirects(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Accept", "text/html")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/sign-in", w.Header().Get("Location"))
}

func TestRequireUser_ValidToken(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-7", false, testKey))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-7")
}

func TestRequireAdmin(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-7", false, testKey))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "admin-1", true, testKey))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
