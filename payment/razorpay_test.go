package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnitsRounds(t *testing.T) {
	assert.Equal(t, int64(100000), MinorUnits(1000))
	assert.Equal(t, int64(99999), MinorUnits(999.985))
	assert.Equal(t, int64(0), MinorUnits(0))
}

func TestCreateOrderSendsMinorUnitsAndAuth(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key-id", user)
		assert.Equal(t, "key-secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(Order{ID: "order_123", Amount: 100000, Currency: "INR"})
	}))
	defer srv.Close()

	g := NewGateway("key-id", "key-secret", srv.URL)
	order, err := g.CreateOrder(context.Background(), 1000, map[string]string{"venue_id": "7"})
	require.NoError(t, err)

	assert.Equal(t, "order_123", order.ID)
	assert.Equal(t, float64(100000), got["amount"])
	assert.Equal(t, "INR", got["currency"])
	assert.Equal(t, map[string]interface{}{"venue_id": "7"}, got["notes"])
}

func TestCreateOrderSurfacesGatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := NewGateway("bad", "creds", srv.URL)
	_, err := g.CreateOrder(context.Background(), 500, nil)
	assert.Error(t, err)
}
