package payment_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordercore/internal/adapters/out/payment"
	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/core/domain/model/order"
	"ordercore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	address, err := order.NewAddress("123 Main St", "Springfield", "IL", "62704", "US", "")
	require.NoError(t, err)

	item, err := order.NewItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		2,
		order.MustMoneyFromString("29.99"),
		order.ZeroMoney(),
		1000,
	)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, address, "", order.DefaultPricingConfig(),
	)
	require.NoError(t, err)

	require.NoError(t, aggregate.TransitionTo(order.StatusProcessing))
	require.NoError(t, aggregate.TransitionTo(order.StatusShipped))
	require.NoError(t, aggregate.TransitionTo(order.StatusDelivered))
	return aggregate
}

func TestRefundClient_LocalMode(t *testing.T) {
	client := payment.NewRefundClient("", 0)
	aggregate := deliveredOrder(t)

	record, err := client.Refund(t.Context(), aggregate, aggregate.TotalAmount(), "damaged")
	require.NoError(t, err)
	assert.Equal(t, "REF-"+aggregate.ID().String(), record.RefundID)
	assert.Equal(t, aggregate.ID().String(), record.OrderID)
	assert.True(t, record.Amount.Equal(aggregate.TotalAmount()))
	assert.Equal(t, "damaged", record.Reason)
	assert.Equal(t, "processed", record.Status)
}

func TestRefundClient_AmountExceedsTotal(t *testing.T) {
	client := payment.NewRefundClient("", 0)
	aggregate := deliveredOrder(t)

	over := aggregate.TotalAmount().Add(order.MustMoneyFromString("0.01"))
	_, err := client.Refund(t.Context(), aggregate, over, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestRefundClient_RemoteSuccess(t *testing.T) {
	aggregate := deliveredOrder(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/refunds", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, aggregate.ID().String(), body["order_id"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"refund_id": "REF-remote-1",
			"status":    "processed",
		})
	}))
	defer server.Close()

	client := payment.NewRefundClient(server.URL, time.Second)
	record, err := client.Refund(t.Context(), aggregate, aggregate.TotalAmount(), "wrong size")
	require.NoError(t, err)
	assert.Equal(t, "REF-remote-1", record.RefundID)
	assert.Equal(t, "processed", record.Status)
}

func TestRefundClient_RemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := payment.NewRefundClient(server.URL, time.Second)
	aggregate := deliveredOrder(t)

	_, err := client.Refund(t.Context(), aggregate, aggregate.TotalAmount(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDependencyFailure)
}

func TestRefundClient_TransportError(t *testing.T) {
	client := payment.NewRefundClient("http://127.0.0.1:1", time.Second)
	aggregate := deliveredOrder(t)

	_, err := client.Refund(t.Context(), aggregate, aggregate.TotalAmount(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDependencyFailure)
}
