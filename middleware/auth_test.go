package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pin-diary/api-go/middleware"
	"github.com/pin-diary/api-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.AuthMiddleware(), func(c *gin.Context) {
		user := utils.GetUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": user.UserID, "email": user.Email})
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func request(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": 42,
		"email":   "user@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := request(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	expired := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	noUserID := signToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	for name, header := range map[string]string{
		"missing header":  "",
		"malformed":       "not-a-bearer-header",
		"garbage token":   "Bearer not.a.jwt",
		"expired token":   "Bearer " + expired,
		"wrong key":       "Bearer " + wrongKey,
		"missing user id": "Bearer " + noUserID,
	} {
		w := request(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}
