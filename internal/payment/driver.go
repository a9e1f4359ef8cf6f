package payment

import (
	"context"
	"encoding/json"
)

// Driver is the interface that all payment processor drivers must implement.
// Every error a driver returns is an *UpstreamError.
type Driver interface {
	// CreateOrder creates an order on the processor and returns it
	CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error)

	// RefundOrder refunds (part of) a completed order and returns the
	// processor's response body untouched
	RefundOrder(ctx context.Context, orderID string, req *RefundRequest) (json.RawMessage, error)
}

// CaptureModeAutomatic captures the payment as soon as it is authorised.
const CaptureModeAutomatic = "AUTOMATIC"

// OrderRequest is the processor's order-creation payload. Amount is in
// minor currency units.
type OrderRequest struct {
	Amount              int64  `json:"amount"`
	Currency            string `json:"currency"`
	CaptureMode         string `json:"capture_mode"`
	MerchantOrderExtRef string `json:"merchant_order_ext_ref"`
	Description         string `json:"description"`
	CustomerEmail       string `json:"customer_email"`
}

// Order holds the fields of a created order the relay relies on.
type Order struct {
	ID          string `json:"id"`
	PublicID    string `json:"public_id"`
	State       string `json:"state"`
	CheckoutURL string `json:"checkout_url"`
}

// RefundRequest is the processor's refund payload. Amount is in minor
// currency units.
type RefundRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
