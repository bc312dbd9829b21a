package pricing

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoursport/admin-api/server"
	"github.com/yoursport/admin-api/testutils"
)

func setupPricingServer(t *testing.T) *echo.Echo {
	t.Helper()

	db := testutils.SetupTestDB(t, &Pricing{})
	srv := server.New(testutils.GetTestConfig(), nil)
	NewHandlers(NewRepository(db)).RegisterRoutes(srv)
	return srv.Echo()
}

func createPricing(t *testing.T, e *echo.Echo, amount int64, general, corporate bool) map[string]any {
	t.Helper()

	rec := testutils.DoRequest(t, e, http.MethodPost, "/pricings/", map[string]any{
		"amount":           amount,
		"description":      "Season pass",
		"general":          general,
		"school_corporate": corporate,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return testutils.DecodeJSON(t, rec)
}

func TestCreatePricing(t *testing.T) {
	t.Run("valid plan", func(t *testing.T) {
		e := setupPricingServer(t)

		body := createPricing(t, e, 4999, true, false)
		assert.EqualValues(t, 4999, body["amount"])
		assert.Equal(t, true, body["general"])
		assert.Equal(t, false, body["school_corporate"])
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		e := setupPricingServer(t)

		body := createPricing(t, e, 0, true, false)
		assert.EqualValues(t, 0, body["amount"])
	})

	t.Run("missing fields", func(t *testing.T) {
		e := setupPricingServer(t)

		rec := testutils.DoRequest(t, e, http.MethodPost, "/pricings/", map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := testutils.DecodeJSON(t, rec)
		assert.Contains(t, body, "amount")
		assert.Contains(t, body, "description")
	})
}

func TestPricingFilters(t *testing.T) {
	e := setupPricingServer(t)
	createPricing(t, e, 1000, true, false)
	createPricing(t, e, 2000, false, true)
	createPricing(t, e, 3000, true, true)

	t.Run("general filter", func(t *testing.T) {
		rec := testutils.DoRequest(t, e, http.MethodGet, "/price/general/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		list := testutils.DecodeJSONList(t, rec)
		require.Len(t, list, 2)
		for _, p := range list {
			assert.Equal(t, true, p["general"])
		}
	})

	t.Run("corporate filter", func(t *testing.T) {
		rec := testutils.DoRequest(t, e, http.MethodGet, "/price/corporate/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		list := testutils.DecodeJSONList(t, rec)
		require.Len(t, list, 2)
		for _, p := range list {
			assert.Equal(t, true, p["school_corporate"])
		}
	})

	t.Run("full list is unfiltered", func(t *testing.T) {
		rec := testutils.DoRequest(t, e, http.MethodGet, "/pricings/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, testutils.DecodeJSONList(t, rec), 3)
	})
}

func TestUpdatePricing(t *testing.T) {
	e := setupPricingServer(t)
	created := createPricing(t, e, 1000, true, false)

	rec := testutils.DoRequest(t, e, http.MethodPut, fmt.Sprintf("/pricings/%v/", created["id"]), map[string]any{
		"amount":           1500,
		"description":      "Season pass, updated",
		"general":          false,
		"school_corporate": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := testutils.DecodeJSON(t, rec)
	assert.EqualValues(t, 1500, body["amount"])
	assert.Equal(t, false, body["general"])
	assert.Equal(t, true, body["school_corporate"])

	t.Run("unknown id", func(t *testing.T) {
		rec := testutils.DoRequest(t, e, http.MethodPut, "/pricings/9999/", map[string]any{
			"amount":      1500,
			"description": "whatever",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeletePricing(t *testing.T) {
	e := setupPricingServer(t)
	created := createPricing(t, e, 1000, true, false)

	rec := testutils.DoRequest(t, e, http.MethodDelete, fmt.Sprintf("/pricings/%v/", created["id"]), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = testutils.DoRequest(t, e, http.MethodGet, fmt.Sprintf("/pricings/%v/", created["id"]), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
