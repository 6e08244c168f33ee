package http

import (
	"github.com/gin-gonic/gin"

	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
)

func RegisterWishlistRoutes(r *gin.Engine, handler *WishlistHandler, guard *identityHttp.Guard) {
	r.GET("/wishlists", guard.RequireAuth(), handler.ListWishlist)
	r.POST("/wishlist", guard.RequireAuth(), handler.AddToWishlist)
	r.DELETE("/wishlists/:id", guard.RequireAuth(), handler.RemoveFromWishlist)
}
