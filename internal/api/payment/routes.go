package payment

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/create-payment", h.CreatePayment)
	r.POST("/refund", h.Refund)
}
