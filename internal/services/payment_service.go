package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/payment"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/utils"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreatePaymentInput is the caller's payment request. Amount is in major
// currency units.
type CreatePaymentInput struct {
	Amount        decimal.Decimal `json:"amount" validate:"required" swaggertype:"number" example:"12.34"`
	Currency      string          `json:"currency" validate:"required" example:"GBP"`
	Description   string          `json:"description" validate:"required" example:"Order #42"`
	CustomerEmail string          `json:"customer_email" validate:"required" example:"jane@example.com"`
}

// RefundInput is the caller's refund request. Amount is in major currency
// units.
type RefundInput struct {
	OrderID  string          `json:"order_id" validate:"required" example:"6516e61c-d279-a454-a837-bc52ce55ed49"`
	Amount   decimal.Decimal `json:"amount" validate:"required" swaggertype:"number" example:"5.00"`
	Currency string          `json:"currency" validate:"required" example:"GBP"`
}

// ValidationError reports a request that is missing required fields or
// carries an unusable value. It never reaches the payment processor.
// Reason is empty when fields are missing.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return "invalid " + strings.Join(e.Fields, ", ") + ": " + e.Reason
	}
	if len(e.Fields) == 0 {
		return "missing required fields"
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Missing reports whether the request failed only because fields were absent.
func (e *ValidationError) Missing() bool {
	return e.Reason == ""
}

// PaymentService maps caller requests onto a payment.Driver. It holds no
// per-request state and is safe for concurrent use.
type PaymentService struct {
	driver      payment.Driver
	validate    *validator.Validate
	newOrderRef func() string
}

type Option func(*PaymentService)

// WithOrderRefGenerator replaces the merchant order reference generator.
func WithOrderRefGenerator(fn func() string) Option {
	return func(s *PaymentService) {
		s.newOrderRef = fn
	}
}

func NewPaymentService(driver payment.Driver, opts ...Option) *PaymentService {
	s := &PaymentService{
		driver:      driver,
		validate:    utils.NewValidator(),
		newOrderRef: NewOrderRef,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewOrderRef returns a time-ordered merchant order reference that is
// unique across calls.
func NewOrderRef() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "order-" + id.String()
}

// CreatePayment creates an order with automatic capture and returns the
// hosted checkout URL.
func (s *PaymentService) CreatePayment(ctx context.Context, in *CreatePaymentInput) (string, error) {
	if err := s.check(in); err != nil {
		return "", err
	}
	amount, err := minorAmount(in.Amount)
	if err != nil {
		return "", err
	}

	req := &payment.OrderRequest{
		Amount:              amount,
		Currency:            in.Currency,
		CaptureMode:         payment.CaptureModeAutomatic,
		MerchantOrderExtRef: s.newOrderRef(),
		Description:         in.Description,
		CustomerEmail:       in.CustomerEmail,
	}

	order, err := s.driver.CreateOrder(ctx, req)
	if err != nil {
		return "", err
	}

	logger.Log.Info("Payment created",
		zap.String("order_id", order.ID),
		zap.String("merchant_order_ext_ref", req.MerchantOrderExtRef),
		zap.String("state", order.State),
		zap.Int64("amount", req.Amount),
		zap.String("currency", req.Currency),
	)
	return order.CheckoutURL, nil
}

// Refund refunds an order and returns the processor's response body.
func (s *PaymentService) Refund(ctx context.Context, in *RefundInput) (json.RawMessage, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	amount, err := minorAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	req := &payment.RefundRequest{
		Amount:   amount,
		Currency: in.Currency,
	}

	data, err := s.driver.RefundOrder(ctx, in.OrderID, req)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Refund processed",
		zap.String("order_id", in.OrderID),
		zap.Int64("amount", req.Amount),
		zap.String("currency", req.Currency),
	)
	return data, nil
}

// minorAmount converts amount for the processor. An amount that rounds to
// zero minor units counts as missing, as a zero amount does.
func minorAmount(amount decimal.Decimal) (int64, error) {
	minor, err := payment.ToMinorUnits(amount)
	switch {
	case errors.Is(err, payment.ErrAmountBelowMinor):
		return 0, &ValidationError{Fields: []string{"amount"}}
	case err != nil:
		return 0, &ValidationError{Fields: []string{"amount"}, Reason: err.Error()}
	}
	return minor, nil
}

func (s *PaymentService) check(in interface{}) error {
	if err := s.validate.Struct(in); err != nil {
		if fields := utils.InvalidFields(err); fields != nil {
			return &ValidationError{Fields: fields}
		}
		return fmt.Errorf("validate request: %w", err)
	}
	return nil
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
