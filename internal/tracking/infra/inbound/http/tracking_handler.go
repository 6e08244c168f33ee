package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/bookcourier/internal/tracking/application"
	"github.com/davicafu/bookcourier/internal/tracking/domain"
	"github.com/davicafu/bookcourier/pkg/utils"
)

// TrackingHandler encapsula los endpoints HTTP del ledger de seguimiento
type TrackingHandler struct {
	service *application.LedgerService
}

func NewTrackingHandler(service *application.LedgerService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// GetLedger endpoint GET /trackings/:trackingId
// Devuelve el ledger completo; id desconocido => array vacío, nunca 404.
func (h *TrackingHandler) GetLedger(c *gin.Context) {
	trackingID := c.Param("trackingId")

	events, err := h.service.Query(c.Request.Context(), trackingID)
	if err != nil {
		if err == domain.ErrEmptyTrackingID {
			utils.SendBadRequest(c, "trackingId is required")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, events)
}
