package contact

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoursport/admin-api/server"
	"github.com/yoursport/admin-api/testutils"
)

func setupContactServer(t *testing.T) *echo.Echo {
	t.Helper()

	db := testutils.SetupTestDB(t, &Contact{})
	srv := server.New(testutils.GetTestConfig(), nil)
	NewHandlers(NewRepository(db)).RegisterRoutes(srv)
	return srv.Echo()
}

func validContact(message string) map[string]any {
	return map[string]any{
		"fullname": "Alice Smith",
		"phone":    15551234567,
		"email":    "alice@example.com",
		"subject":  "Stadium booking",
		"message":  message,
	}
}

func TestCreateContact(t *testing.T) {
	t.Run("message at the minimum length is accepted", func(t *testing.T) {
		e := setupContactServer(t)

		rec := testutils.DoRequest(t, e, http.MethodPost, "/contacts/",
			validContact(strings.Repeat("a", MinMessageLength)))
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("message one character short is rejected", func(t *testing.T) {
		e := setupContactServer(t)

		rec := testutils.DoRequest(t, e, http.MethodPost, "/contacts/",
			validContact(strings.Repeat("a", MinMessageLength-1)))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := testutils.DecodeJSON(t, rec)
		require.Contains(t, body, "message")
		msgs, ok := body["message"].([]any)
		require.True(t, ok)
		assert.Contains(t, msgs, "Message must be at least 100 characters long.")
	})

	t.Run("multibyte messages are counted in characters, not bytes", func(t *testing.T) {
		e := setupContactServer(t)

		rec := testutils.DoRequest(t, e, http.MethodPost, "/contacts/",
			validContact(strings.Repeat("é", MinMessageLength)))
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = testutils.DoRequest(t, e, http.MethodPost, "/contacts/",
			validContact(strings.Repeat("é", MinMessageLength-1)))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, testutils.DecodeJSON(t, rec), "message")
	})

	t.Run("missing fields", func(t *testing.T) {
		e := setupContactServer(t)

		rec := testutils.DoRequest(t, e, http.MethodPost, "/contacts/", map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := testutils.DecodeJSON(t, rec)
		assert.Contains(t, body, "fullname")
		assert.Contains(t, body, "phone")
		assert.Contains(t, body, "email")
		assert.Contains(t, body, "subject")
		assert.Contains(t, body, "message")
	})

	t.Run("invalid email", func(t *testing.T) {
		e := setupContactServer(t)

		payload := validContact(strings.Repeat("a", MinMessageLength))
		payload["email"] = "not-an-email"
		rec := testutils.DoRequest(t, e, http.MethodPost, "/contacts/", payload)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, testutils.DecodeJSON(t, rec), "email")
	})
}

func TestContactCRUD(t *testing.T) {
	e := setupContactServer(t)

	rec := testutils.DoRequest(t, e, http.MethodPost, "/contacts/",
		validContact(strings.Repeat("a", MinMessageLength)))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := testutils.DecodeJSON(t, rec)

	t.Run("list", func(t *testing.T) {
		rec := testutils.DoRequest(t, e, http.MethodGet, "/contacts/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, testutils.DecodeJSONList(t, rec), 1)
	})

	t.Run("get", func(t *testing.T) {
		rec := testutils.DoRequest(t, e, http.MethodGet, fmt.Sprintf("/contacts/%v/", created["id"]), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Stadium booking", testutils.DecodeJSON(t, rec)["subject"])
	})

	t.Run("update revalidates the payload", func(t *testing.T) {
		payload := validContact(strings.Repeat("b", MinMessageLength))
		payload["subject"] = "Changed subject"
		rec := testutils.DoRequest(t, e, http.MethodPut, fmt.Sprintf("/contacts/%v/", created["id"]), payload)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Changed subject", testutils.DecodeJSON(t, rec)["subject"])

		rec = testutils.DoRequest(t, e, http.MethodPut, fmt.Sprintf("/contacts/%v/", created["id"]),
			validContact("too short"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := testutils.DoRequest(t, e, http.MethodDelete, fmt.Sprintf("/contacts/%v/", created["id"]), nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = testutils.DoRequest(t, e, http.MethodGet, fmt.Sprintf("/contacts/%v/", created["id"]), nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
