package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriver struct {
	mu         sync.Mutex
	orders     []*payment.OrderRequest
	refunds    []*payment.RefundRequest
	refundIDs  []string
	order      *payment.Order
	refundData json.RawMessage
	err        error
}

func (d *fakeDriver) CreateOrder(ctx context.Context, req *payment.OrderRequest) (*payment.Order, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.orders = append(d.orders, req)
	if d.err != nil {
		return nil, d.err
	}
	return d.order, nil
}

func (d *fakeDriver) RefundOrder(ctx context.Context, orderID string, req *payment.RefundRequest) (json.RawMessage, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refundIDs = append(d.refundIDs, orderID)
	d.refunds = append(d.refunds, req)
	if d.err != nil {
		return nil, d.err
	}
	return d.refundData, nil
}

func validPaymentInput() *CreatePaymentInput {
	return &CreatePaymentInput{
		Amount:        decimal.RequireFromString("10.5"),
		Currency:      "GBP",
		Description:   "Coffee beans",
		CustomerEmail: "jane@example.com",
	}
}

func TestCreatePayment(t *testing.T) {
	driver := &fakeDriver{order: &payment.Order{ID: "ord_1", CheckoutURL: "https://pay.example/x"}}
	service := NewPaymentService(driver, WithOrderRefGenerator(func() string { return "order-fixed" }))

	url, err := service.CreatePayment(context.Background(), validPaymentInput())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/x", url)

	require.Len(t, driver.orders, 1)
	assert.Equal(t, &payment.OrderRequest{
		Amount:              1050,
		Currency:            "GBP",
		CaptureMode:         "AUTOMATIC",
		MerchantOrderExtRef: "order-fixed",
		Description:         "Coffee beans",
		CustomerEmail:       "jane@example.com",
	}, driver.orders[0])
}

func TestCreatePaymentMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *CreatePaymentInput)
		field  string
	}{
		{"Missing Amount", func(in *CreatePaymentInput) { in.Amount = decimal.Decimal{} }, "amount"},
		{"Zero Amount", func(in *CreatePaymentInput) { in.Amount = decimal.Zero }, "amount"},
		{"Missing Currency", func(in *CreatePaymentInput) { in.Currency = "" }, "currency"},
		{"Missing Description", func(in *CreatePaymentInput) { in.Description = "" }, "description"},
		{"Missing Customer Email", func(in *CreatePaymentInput) { in.CustomerEmail = "" }, "customer_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := &fakeDriver{order: &payment.Order{CheckoutURL: "https://pay.example/x"}}
			service := NewPaymentService(driver)

			in := validPaymentInput()
			tt.mutate(in)

			_, err := service.CreatePayment(context.Background(), in)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, []string{tt.field}, validationErr.Fields)
			assert.True(t, IsValidationError(err))
			assert.Empty(t, driver.orders, "invalid requests never reach the processor")
		})
	}
}

func TestCreatePaymentAmountBelowMinorUnit(t *testing.T) {
	driver := &fakeDriver{order: &payment.Order{CheckoutURL: "https://pay.example/x"}}
	service := NewPaymentService(driver)

	in := validPaymentInput()
	in.Amount = decimal.RequireFromString("0.004")

	_, err := service.CreatePayment(context.Background(), in)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"amount"}, validationErr.Fields)
	assert.True(t, validationErr.Missing())
	assert.Empty(t, driver.orders)
}

func TestRefundAmountOutOfRange(t *testing.T) {
	driver := &fakeDriver{refundData: json.RawMessage(`{"status":"completed"}`)}
	service := NewPaymentService(driver)

	_, err := service.Refund(context.Background(), &RefundInput{
		OrderID:  "ord_1",
		Amount:   decimal.RequireFromString("184467440737095516.17"),
		Currency: "GBP",
	})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.False(t, validationErr.Missing())
	assert.Equal(t, "invalid amount: amount is out of range", validationErr.Error())
	assert.Empty(t, driver.refunds, "out of range amounts never reach the processor")
}

func TestCreatePaymentUpstreamError(t *testing.T) {
	upstreamErr := &payment.UpstreamError{Op: "revolut: create order", Err: errors.New("dial tcp: connection refused")}
	driver := &fakeDriver{err: upstreamErr}
	service := NewPaymentService(driver)

	_, err := service.CreatePayment(context.Background(), validPaymentInput())

	var got *payment.UpstreamError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "dial tcp: connection refused", got.Details())
	assert.False(t, IsValidationError(err))
	assert.Len(t, driver.orders, 1)
}

func TestCreatePaymentUniqueOrderRefs(t *testing.T) {
	driver := &fakeDriver{order: &payment.Order{CheckoutURL: "https://pay.example/x"}}
	service := NewPaymentService(driver)

	const calls = 50
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreatePayment(context.Background(), validPaymentInput())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, o := range driver.orders {
		assert.True(t, strings.HasPrefix(o.MerchantOrderExtRef, "order-"))
		assert.False(t, seen[o.MerchantOrderExtRef], "duplicate reference %s", o.MerchantOrderExtRef)
		seen[o.MerchantOrderExtRef] = true
	}
	assert.Len(t, seen, calls)
}

func TestRefund(t *testing.T) {
	driver := &fakeDriver{refundData: json.RawMessage(`{"status":"completed"}`)}
	service := NewPaymentService(driver)

	data, err := service.Refund(context.Background(), &RefundInput{
		OrderID:  "ord_1",
		Amount:   decimal.RequireFromString("12.34"),
		Currency: "EUR",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"completed"}`, string(data))

	require.Len(t, driver.refunds, 1)
	assert.Equal(t, "ord_1", driver.refundIDs[0])
	assert.Equal(t, &payment.RefundRequest{Amount: 1234, Currency: "EUR"}, driver.refunds[0])
}

func TestRefundMissingFields(t *testing.T) {
	driver := &fakeDriver{}
	service := NewPaymentService(driver)

	_, err := service.Refund(context.Background(), &RefundInput{})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.ElementsMatch(t, []string{"order_id", "amount", "currency"}, validationErr.Fields)
	assert.Equal(t, "missing required fields: order_id, amount, currency", validationErr.Error())
	assert.Empty(t, driver.refunds)
}

func TestNewOrderRef(t *testing.T) {
	a, b := NewOrderRef(), NewOrderRef()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "order-"))
}
