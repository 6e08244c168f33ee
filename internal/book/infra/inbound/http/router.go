package http

import (
	"github.com/gin-gonic/gin"

	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
)

func RegisterBookRoutes(r *gin.Engine, handler *BookHandler, guard *identityHttp.Guard) {
	r.GET("/all-books", handler.ListBooks)
	r.GET("/books/:id/details", handler.GetBookDetails)
	r.GET("/books", guard.RequireAuth(), handler.ListOwnBooks)
	r.POST("/books", guard.RequireAuth(), guard.RequireRole(identityDomain.RoleLibrarian), handler.CreateBook)
	r.PATCH("/books/:id", guard.RequireAuth(), handler.UpdateBookStatus)
	r.DELETE("/books/:id", guard.RequireAuth(), guard.RequireRole(identityDomain.RoleAdmin), handler.DeleteBook)
}
