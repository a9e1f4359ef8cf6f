package utils

// ErrorResponse is the body returned to callers for any failed request.
// Details is omitted for validation failures and carries the upstream
// payload or error message for upstream failures.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// PaymentResponse is returned after an order was created upstream.
type PaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// RefundResponse wraps the upstream refund result.
type RefundResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// NewErrorResponse creates an ErrorResponse without details.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

// NewErrorResponseWithDetails creates an ErrorResponse carrying details.
func NewErrorResponseWithDetails(message string, details interface{}) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: details,
	}
}
