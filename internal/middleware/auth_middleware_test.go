package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/auth"
)

func testJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "sms.test",
	})
}

func protectedRouter(jwtService *auth.JWTService, roles ...models.RoleType) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	group := router.Group("", m.JWTAuth())
	if len(roles) > 0 {
		group.Use(m.RoleRequired(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetInt64("userID")})
	})
	return router
}

func TestJWTAuth(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	router := protectedRouter(jwtService)

	user := &models.User{ID: 7, Username: "jsmith", Role: models.RoleTeacher}
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userID":7`)
	})

	t.Run("raw token without prefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", accessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredService := testJWTService(-time.Minute)
		expired, _, _, _, err := expiredService.GenerateTokenPair(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_003")
	})
}

func TestRoleRequired(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	router := protectedRouter(jwtService, models.RoleAdmin)

	adminToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	studentToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 3, Username: "ann", Role: models.RoleStudent})
	require.NoError(t, err)

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+studentToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSelfOrRoleRequired(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/teachers/:id/students", m.JWTAuth(), m.SelfOrRoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	teacherToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 7, Username: "jsmith", Role: models.RoleTeacher})
	require.NoError(t, err)
	adminToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	get := func(path, token string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, get("/teachers/me/students", teacherToken))
	assert.Equal(t, http.StatusOK, get("/teachers/7/students", teacherToken), "own numeric ID passes")
	assert.Equal(t, http.StatusForbidden, get("/teachers/8/students", teacherToken), "someone else's ID needs admin")
	assert.Equal(t, http.StatusOK, get("/teachers/7/students", adminToken))
}
