package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meatdelivery/api"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should load a valid document", func(t *testing.T) {
		doc, err := api.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Meat Delivery API", doc.Info.Title)
		assert.NotNil(t, doc.Paths.Find("/orders/{id}/cancel"))
		assert.NotNil(t, doc.Paths.Find("/delivery/orders/{orderId}/accept"))
	})
}

func TestMount(t *testing.T) {
	t.Run("should serve the document as json", func(t *testing.T) {
		doc, err := api.Load(context.Background())
		require.NoError(t, err)
		e := echo.New()
		require.NoError(t, api.Mount(e, doc))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "3.0.3", body["openapi"])
	})
}
