package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-service/pkg/config"
	"catalog-service/pkg/jwtutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func init() {
	jwtutil.Initialize(&config.JWTConfig{
		SigningKey:      "test-signing-key",
		ExpirationHours: 1,
	})
}

func invokeAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	called := false
	h := AuthMiddleware(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
	return rec, c, called
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, called := invokeAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _, called := invokeAuth(t, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec, _, called := invokeAuth(t, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := jwtutil.GenerateToken(7, "admin@mail.com", "Administrador", true)
	assert.NoError(t, err)

	rec, c, called := invokeAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)

	id, ok := ActingUserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "admin@mail.com", c.Get("email"))
	assert.Equal(t, true, c.Get("is_admin"))
}
