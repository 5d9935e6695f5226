package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"musika/config"
	"musika/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc)
}

func invoke(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, bool, any) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	var userID any
	handler := m.Authenticate(func(c echo.Context) error {
		reached = true
		userID = c.Get("userID")

		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	return rec, reached, userID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := newAuthMiddleware(t)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	wantID := uuid.New()
	token, err := tokenSvc.GenerateToken(wantID, []string{"admin"})
	require.NoError(t, err)

	rec, reached, userID := invoke(m, "Bearer "+token)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wantID, userID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := newAuthMiddleware(t)

	rec, reached, _ := invoke(m, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	m := newAuthMiddleware(t)

	rec, reached, _ := invoke(m, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	m := newAuthMiddleware(t)

	rec, reached, _ := invoke(m, "Bearer not.a.token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
