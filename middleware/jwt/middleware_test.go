package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoursport/admin-api/services/jwt"
	"github.com/yoursport/admin-api/testutils"
)

func setupMiddlewareTest(t *testing.T) (*echo.Echo, *jwt.Service) {
	t.Helper()

	jwtService := jwt.NewService(testutils.GetTestConfig(), nil)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]uint{"user_id": GetUserID(c)})
	}, RequireJWT(jwtService))

	return e, jwtService
}

func doRequest(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireJWT(t *testing.T) {
	e, jwtService := setupMiddlewareTest(t)

	t.Run("allows valid access token", func(t *testing.T) {
		access, _, err := jwtService.GenerateTokenPair(5)
		require.NoError(t, err)

		rec := doRequest(e, "Bearer "+access)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_id":5`)
	})

	t.Run("rejects missing header", func(t *testing.T) {
		rec := doRequest(e, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects non-bearer header", func(t *testing.T) {
		rec := doRequest(e, "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		rec := doRequest(e, "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects refresh token on protected route", func(t *testing.T) {
		_, refresh, err := jwtService.GenerateTokenPair(5)
		require.NoError(t, err)

		rec := doRequest(e, "Bearer "+refresh)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetUserID_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, uint(0), GetUserID(c))
	assert.Nil(t, GetClaims(c))
}
