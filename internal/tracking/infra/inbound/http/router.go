package http

import (
	"github.com/gin-gonic/gin"

	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
)

func RegisterTrackingRoutes(r *gin.Engine, handler *TrackingHandler, guard *identityHttp.Guard) {
	r.GET("/trackings/:trackingId", guard.RequireAuth(), handler.GetLedger)
}
