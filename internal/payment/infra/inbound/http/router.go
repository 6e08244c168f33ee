package http

import (
	"github.com/gin-gonic/gin"

	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
)

func RegisterPaymentRoutes(r *gin.Engine, handler *PaymentHandler, guard *identityHttp.Guard) {
	r.GET("/payments", guard.RequireAuth(), handler.ListPayments)
	r.POST("/payment-checkout-session", guard.RequireAuth(), handler.CreateCheckoutSession)
	r.PATCH("/payment-success", guard.RequireAuth(), handler.PaymentSuccess)
}
