package console

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRejectsInvalidInput(t *testing.T) {
	var requests atomic.Int32
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	notifier := &recordingNotifier{}
	s := NewOrderSubmitter(client, notifier, testLogger())

	cases := []OrderForm{
		{Code: "", Qty: "10"},
		{Code: "   ", Qty: "10"},
		{Code: "005930", Qty: "0"},
		{Code: "005930", Qty: "-5"},
		{Code: "005930", Qty: "ten"},
	}
	for _, form := range cases {
		err := s.Submit(context.Background(), SideBuy, form)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	}

	assert.Equal(t, int32(0), requests.Load(), "validation failures must not reach the backend")

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "check the stock code and quantity", last.message)
	assert.False(t, last.ok)
}

func TestSubmitSell(t *testing.T) {
	var body map[string]any
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/stock/sell", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status_code":200,"response":{"rt_cd":"0"}}`))
	}))

	notifier := &recordingNotifier{}
	s := NewOrderSubmitter(client, notifier, testLogger())

	form := OrderForm{Code: " 005930 ", Qty: "10", Market: true, Price: ""}
	require.NoError(t, s.Submit(context.Background(), SideSell, form))

	assert.Equal(t, map[string]any{
		"code":   "005930",
		"qty":    float64(10),
		"market": true,
		"price":  float64(0),
	}, body)

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "sell order submitted", last.message)
	assert.True(t, last.ok)
}

func TestSubmitBuyLimitPrice(t *testing.T) {
	var body map[string]any
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/stock/buy", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status_code":200,"response":{}}`))
	}))

	s := NewOrderSubmitter(client, &recordingNotifier{}, testLogger())

	form := OrderForm{Code: "035420", Qty: "3", Market: false, Price: "182500"}
	require.NoError(t, s.Submit(context.Background(), SideBuy, form))

	assert.Equal(t, false, body["market"])
	assert.Equal(t, float64(182500), body["price"])
}

func TestSubmitBackendFailure(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"order rejected"}`, http.StatusBadRequest)
	}))

	notifier := &recordingNotifier{}
	s := NewOrderSubmitter(client, notifier, testLogger())

	err := s.Submit(context.Background(), SideBuy, OrderForm{Code: "005930", Qty: "10", Market: true})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidOrder)

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "buy order failed", last.message)
	assert.False(t, last.ok)
}
