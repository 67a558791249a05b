package routes

import (
	"payment-gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payment"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/submit", paymentHandler.PostPayment)
		payments.GET("/:id", paymentHandler.GetPaymentByID)
	}
}
