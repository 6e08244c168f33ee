package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
	orderDomain "github.com/davicafu/bookcourier/internal/order/domain"
	"github.com/davicafu/bookcourier/internal/payment/application"
	"github.com/davicafu/bookcourier/internal/payment/domain"
	"github.com/davicafu/bookcourier/pkg/utils"
)

// PaymentHandler encapsula los endpoints HTTP de cobros
type PaymentHandler struct {
	service *application.PaymentService
}

// NewPaymentHandler crea un nuevo PaymentHandler
func NewPaymentHandler(service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// ---------------- Handlers ----------------

// ListPayments endpoint GET /payments?email=
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		if principal, ok := identityHttp.PrincipalFrom(c); ok {
			email = principal.Email
		}
	}

	payments, err := h.service.ListPayments(c.Request.Context(), email)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, payments)
}

// CreateCheckoutSession endpoint POST /payment-checkout-session
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		utils.SendBadRequest(c, "invalid order id")
		return
	}

	session, err := h.service.CreateCheckoutSession(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, orderDomain.ErrOrderNotFound) {
			utils.SendNotFound(c, "order not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.ID,
		"url":       session.URL,
	})
}

// PaymentSuccess endpoint PATCH /payment-success?session_id=
// Reconciliación idempotente: un replay del redirect devuelve el pago ya
// registrado como 200 informativo, sin re-aplicar efectos.
func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.SendBadRequest(c, "session_id is required")
		return
	}

	payment, applied, err := h.service.ReconcileSettlement(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotPaid):
			utils.SendBadRequest(c, "checkout session not paid")
		case errors.Is(err, orderDomain.ErrOrderNotFound):
			utils.SendNotFound(c, "order not found")
		default:
			utils.SendInternalServerError(c, err.Error())
		}
		return
	}

	if !applied {
		c.JSON(http.StatusOK, gin.H{
			"message": "payment already recorded",
			"data":    payment,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payment})
}
