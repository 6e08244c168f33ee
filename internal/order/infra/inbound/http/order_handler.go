package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookDomain "github.com/davicafu/bookcourier/internal/book/domain"
	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
	"github.com/davicafu/bookcourier/internal/order/application"
	"github.com/davicafu/bookcourier/internal/order/domain"
	"github.com/davicafu/bookcourier/pkg/utils"
)

// OrderHandler encapsula los endpoints HTTP de pedidos
type OrderHandler struct {
	service *application.OrderService
}

// NewOrderHandler crea un nuevo OrderHandler
func NewOrderHandler(service *application.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// ---------------- Handlers ----------------

// ListOrders endpoint GET /orders?email=
func (h *OrderHandler) ListOrders(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		if principal, ok := identityHttp.PrincipalFrom(c); ok {
			email = principal.Email
		}
	}

	orders, err := h.service.ListOrders(c.Request.Context(), email)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, orders)
}

// PlaceOrder endpoint POST /orders
// Duplicado (mismo comprador + mismo libro, no cancelado) => 200 informativo.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req struct {
		BookID   string `json:"bookId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		utils.SendBadRequest(c, "invalid book id")
		return
	}

	principal, ok := identityHttp.PrincipalFrom(c)
	if !ok {
		utils.SendUnauthorized(c, "Unauthorized Access!")
		return
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), principal.Email, bookID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderAlreadyExists):
			utils.SendMessage(c, "order already placed for this book")
		case errors.Is(err, bookDomain.ErrBookNotFound):
			utils.SendNotFound(c, "book not found")
		default:
			utils.SendInternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// UpdateStatus endpoint PATCH /orders/:id
// El cambio de estado dispara el append book_order_<status> al ledger.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "invalid order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		utils.SendBadRequest(c, "invalid status")
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			utils.SendNotFound(c, "order not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, order)
}
