package revolut

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/TanyaSoni29/Revolut-Payment-Integration/config"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/payment"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/utils"
)

const (
	ordersPath = "/api/1.0/orders"
	refundPath = "/api/1.0/order/%s/refund"
)

// RevolutDriver talks to the Revolut Merchant API.
type RevolutDriver struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

var _ payment.Driver = (*RevolutDriver)(nil)

func NewRevolutDriver(cfg *config.Config) *RevolutDriver {
	return &RevolutDriver{
		BaseURL:    strings.TrimRight(cfg.RevolutBaseURL, "/"),
		APIKey:     cfg.RevolutAPIKey,
		HTTPClient: utils.NewHTTPClient(cfg.RevolutTimeout()),
	}
}

func (d *RevolutDriver) CreateOrder(ctx context.Context, req *payment.OrderRequest) (*payment.Order, error) {
	const op = "revolut: create order"

	body, err := d.post(ctx, op, ordersPath, req)
	if err != nil {
		return nil, err
	}

	var order payment.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, &payment.UpstreamError{Op: op, StatusCode: http.StatusOK, Body: body, Err: fmt.Errorf("decode order: %w", err)}
	}
	if order.CheckoutURL == "" {
		return nil, &payment.UpstreamError{Op: op, StatusCode: http.StatusOK, Body: body, Err: errors.New("order has no checkout_url")}
	}
	return &order, nil
}

func (d *RevolutDriver) RefundOrder(ctx context.Context, orderID string, req *payment.RefundRequest) (json.RawMessage, error) {
	const op = "revolut: refund order"

	body, err := d.post(ctx, op, fmt.Sprintf(refundPath, url.PathEscape(orderID)), req)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		// The refund went through; relay the text rather than report a failure.
		text, _ := json.Marshal(string(body))
		return json.RawMessage(text), nil
	}
	return json.RawMessage(body), nil
}

// post sends one JSON request and returns the body of a 2xx response.
// There is no retry: the first failure is returned as an *payment.UpstreamError.
func (d *RevolutDriver) post(ctx context.Context, op, path string, payload interface{}) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, &payment.UpstreamError{Op: op, Err: fmt.Errorf("encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.BaseURL+path, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, &payment.UpstreamError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+d.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return nil, &payment.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &payment.UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &payment.UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
