package payment

import (
	"errors"
	"net/http"

	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/middleware"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/payment"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/services"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/utils"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgMissingFields  = "Missing required fields"
	msgInvalidAmount  = "Invalid amount"
	msgPaymentFailed  = "Failed to create payment"
	msgRefundFailed   = "Failed to process refund"
	msgRefundComplete = "Refund successful"
)

type Handler struct {
	service *services.PaymentService
}

func NewHandler(service *services.PaymentService) *Handler {
	return &Handler{service: service}
}

// CreatePayment godoc
// @Summary Create a payment
// @Description Creates a Revolut order with automatic capture and returns its hosted checkout URL.
// @Tags payment
// @Accept json
// @Produce json
// @Param request body services.CreatePaymentInput true "Payment request, amount in major units"
// @Success 200 {object} utils.PaymentResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /create-payment [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var req services.CreatePaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(msgMissingFields))
		return
	}

	paymentURL, err := h.service.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, msgPaymentFailed)
		return
	}

	c.JSON(http.StatusOK, utils.PaymentResponse{PaymentURL: paymentURL})
}

// Refund godoc
// @Summary Refund an order
// @Description Refunds a Revolut order and relays the processor's refund result.
// @Tags payment
// @Accept json
// @Produce json
// @Param request body services.RefundInput true "Refund request, amount in major units"
// @Success 200 {object} utils.RefundResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /refund [post]
func (h *Handler) Refund(c *gin.Context) {
	var req services.RefundInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(msgMissingFields))
		return
	}

	data, err := h.service.Refund(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, msgRefundFailed)
		return
	}

	c.JSON(http.StatusOK, utils.RefundResponse{Message: msgRefundComplete, Data: data})
}

// respondError maps service errors onto the caller-facing error body.
func respondError(c *gin.Context, err error, failureMessage string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Missing() {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(msgMissingFields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.NewErrorResponseWithDetails(msgInvalidAmount, validationErr.Reason))
		return
	}

	var upstreamErr *payment.UpstreamError
	if errors.As(err, &upstreamErr) {
		logger.Log.Error(failureMessage,
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Int("upstream_status", upstreamErr.StatusCode),
			zap.ByteString("upstream_body", upstreamErr.Body),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponseWithDetails(failureMessage, upstreamErr.Details()))
		return
	}

	logger.Log.Error(failureMessage, zap.String("request_id", c.GetString(middleware.RequestIDKey)), zap.Error(err))
	c.JSON(http.StatusInternalServerError, utils.NewErrorResponseWithDetails(failureMessage, err.Error()))
}
