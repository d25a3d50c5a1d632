package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/WishLedger/internal/infrastructure/database"
	"github.com/leon37/WishLedger/internal/model"
	"github.com/leon37/WishLedger/internal/repository"
	"github.com/leon37/WishLedger/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *service.TokenManager, *repository.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewConnection("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	users := repository.NewUserRepository(db)
	tokens := service.NewTokenManager("test-secret", 30*time.Minute)

	r := gin.New()
	r.GET("/me", JWTAuth(tokens, users), func(c *gin.Context) {
		user := CurrentUser(c)
		require.NotNil(t, user)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return r, tokens, users
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAccepted(t *testing.T) {
	r, tokens, users := setupRouter(t)
	require.NoError(t, users.Create(context.Background(), &model.User{Username: "alice", PasswordHash: "x"}))

	token, err := tokens.Issue("alice")
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestJWTAuthRejections(t *testing.T) {
	r, tokens, users := setupRouter(t)
	require.NoError(t, users.Create(context.Background(), &model.User{Username: "alice", PasswordHash: "x"}))

	valid, err := tokens.Issue("alice")
	require.NoError(t, err)
	expired, err := service.NewTokenManager("test-secret", -time.Minute).Issue("alice")
	require.NoError(t, err)
	forged, err := service.NewTokenManager("other-secret", 30*time.Minute).Issue("alice")
	require.NoError(t, err)
	// 签名合法但用户已经不在库里
	vanished, err := tokens.Issue("ghost")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "forged token", header: "Bearer " + forged},
		{name: "vanished subject", header: "Bearer " + vanished},
	}

	var firstBody string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			// 质询头必须在，失败原因对外不可区分
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			if firstBody == "" {
				firstBody = w.Body.String()
			} else {
				assert.Equal(t, firstBody, w.Body.String())
			}
		})
	}

	// 回归：合法 token 不受影响
	w := doGet(r, "Bearer "+valid)
	assert.Equal(t, http.StatusOK, w.Code)
}
