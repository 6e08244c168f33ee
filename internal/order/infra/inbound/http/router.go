package http

import (
	"github.com/gin-gonic/gin"

	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
)

func RegisterOrderRoutes(r *gin.Engine, handler *OrderHandler, guard *identityHttp.Guard) {
	orders := r.Group("/orders", guard.RequireAuth())
	{
		orders.GET("", handler.ListOrders)
		orders.POST("", handler.PlaceOrder)
		orders.PATCH("/:id", handler.UpdateStatus)
	}
}
