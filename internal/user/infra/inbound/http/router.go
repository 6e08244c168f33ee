package http

import (
	"github.com/gin-gonic/gin"

	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
)

func RegisterUserRoutes(r *gin.Engine, handler *UserHandler, guard *identityHttp.Guard) {
	r.POST("/users", handler.CreateUser)
	r.GET("/users", guard.RequireAuth(), guard.RequireRole(identityDomain.RoleAdmin), handler.SearchUsers)
	r.GET("/users/:email/role", guard.RequireAuth(), handler.GetRole)
	r.PATCH("/users/:id/role", guard.RequireAuth(), guard.RequireRole(identityDomain.RoleAdmin), handler.UpdateRole)
}
