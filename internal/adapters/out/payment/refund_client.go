// Package payment implements the RefundProvider port against an external
// payment service. When no service URL is configured the client runs in local
// mode and records refunds as processed without an external call.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ordercore/internal/core/domain/model/order"
	"ordercore/internal/core/ports"
	"ordercore/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// RefundClient requests refunds from the payment service over HTTP.
type RefundClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRefundClient creates a refund client. An empty baseURL selects local
// mode; a zero timeout selects the default.
func NewRefundClient(baseURL string, timeout time.Duration) *RefundClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &RefundClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type refundRequest struct {
	OrderID string      `json:"order_id"`
	Amount  order.Money `json:"amount"`
	Reason  string      `json:"reason,omitempty"`
}

type refundResponse struct {
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
}

// Refund requests a refund for the given amount. The amount must not exceed
// the order total. A transport failure or a non-2xx response is surfaced as a
// DependencyFailureError so the caller leaves the order status untouched.
func (c *RefundClient) Refund(
	ctx context.Context,
	aggregate *order.Order,
	amount order.Money,
	reason string,
) (ports.RefundRecord, error) {
	if err := aggregate.Validate(); err != nil {
		return ports.RefundRecord{}, err
	}

	if amount.GreaterThan(aggregate.TotalAmount()) {
		return ports.RefundRecord{}, errs.NewValidationError(fmt.Sprintf(
			"refund amount %s cannot exceed order total %s",
			amount.StringFixed(2), aggregate.TotalAmount().StringFixed(2),
		))
	}

	if c.baseURL == "" {
		return ports.RefundRecord{
			RefundID: "REF-" + aggregate.ID().String(),
			OrderID:  aggregate.ID().String(),
			Amount:   amount,
			Reason:   reason,
			Status:   "processed",
		}, nil
	}

	body, err := json.Marshal(refundRequest{
		OrderID: aggregate.ID().String(),
		Amount:  amount,
		Reason:  reason,
	})
	if err != nil {
		return ports.RefundRecord{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/refunds", bytes.NewReader(body),
	)
	if err != nil {
		return ports.RefundRecord{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.RefundRecord{}, errs.NewDependencyFailureError("payment refund", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.RefundRecord{}, errs.NewDependencyFailureError(
			"payment refund",
			fmt.Errorf("payment service returned status %d", resp.StatusCode),
		)
	}

	var decoded refundResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RefundRecord{}, errs.NewDependencyFailureError("payment refund", err)
	}

	return ports.RefundRecord{
		RefundID: decoded.RefundID,
		OrderID:  aggregate.ID().String(),
		Amount:   amount,
		Reason:   reason,
		Status:   decoded.Status,
	}, nil
}
