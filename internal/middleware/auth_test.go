package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeff1984Sor/app-beach/internal/config"
	"github.com/Jeff1984Sor/app-beach/internal/session"
)

type memStore struct {
	sessions map[string]session.Session
}

func (m *memStore) Save(_ context.Context, s session.Session, _ time.Duration) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *memStore) Get(_ context.Context, id string) (*session.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &s, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func signed(t *testing.T, secret, jti, role string) string {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newRouter(cfg *config.Config, store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg, store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": *CurrentUserID(c)})
	})
	r.GET("/gestor", AuthMiddleware(cfg, store), RequireRole("gestor"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	store := &memStore{sessions: map[string]session.Session{
		"live": {ID: "live", UserID: 5, Role: "professor"},
	}}
	r := newRouter(cfg, store)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", signed(t, "other", "live", "professor")).Code)

	w := do(r, "/me", signed(t, cfg.JWTSecret, "live", "professor"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":5}`, w.Body.String())

	assert.Equal(t, http.StatusForbidden, do(r, "/gestor", signed(t, cfg.JWTSecret, "live", "professor")).Code)

	// logout removes the session; the still-valid JWT stops working
	require.NoError(t, store.Delete(context.Background(), "live"))
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", signed(t, cfg.JWTSecret, "live", "professor")).Code)
}
