package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tapadmin/config"
	"tapadmin/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *config.Config) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokens, cfg), cfg
}

func performAuthenticated(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/merchants", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	return rec, c, err
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m, _ := createTestAuthMiddleware(t)

	rec, _, err := performAuthenticated(m, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m, _ := createTestAuthMiddleware(t)

	rec, _, err := performAuthenticated(m, "Basic abc123")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bearer")
}

func TestAuthMiddleware_Authenticate_Garbage(t *testing.T) {
	m, _ := createTestAuthMiddleware(t)

	rec, _, err := performAuthenticated(m, "Bearer not-a-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_AccessToken(t *testing.T) {
	m, cfg := createTestAuthMiddleware(t)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	access, _, err := tokens.GenerateTokens("admin-1", []string{"admin"})
	require.NoError(t, err)

	rec, c, err := performAuthenticated(m, "Bearer "+access)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin-1", c.Get("adminID"))
	assert.Equal(t, []string{"admin"}, c.Get("roles"))
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	m, cfg := createTestAuthMiddleware(t)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	_, refresh, err := tokens.GenerateTokens("admin-1", []string{"admin"})
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret; validation against
	// the access secret must fail before the type check even runs.
	rec, _, err := performAuthenticated(m, "Bearer "+refresh)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _ := createTestAuthMiddleware(t)

	e := echo.New()

	run := func(roles any) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/merchants", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if roles != nil {
			c.Set("roles", roles)
		}

		handler := m.RequireRole("admin")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		return rec
	}

	assert.Equal(t, http.StatusOK, run([]string{"admin", "billing"}).Code)
	assert.Equal(t, http.StatusForbidden, run([]string{"billing"}).Code)
	assert.Equal(t, http.StatusForbidden, run(nil).Code)
}
