package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookDomain "github.com/davicafu/bookcourier/internal/book/domain"
	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
	"github.com/davicafu/bookcourier/internal/wishlist/application"
	"github.com/davicafu/bookcourier/internal/wishlist/domain"
	"github.com/davicafu/bookcourier/pkg/utils"
)

// WishlistHandler encapsula los endpoints HTTP de la wishlist
type WishlistHandler struct {
	service *application.WishlistService
}

// NewWishlistHandler crea un nuevo WishlistHandler
func NewWishlistHandler(service *application.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// ---------------- Handlers ----------------

// ListWishlist endpoint GET /wishlists?email=
func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		if principal, ok := identityHttp.PrincipalFrom(c); ok {
			email = principal.Email
		}
	}

	entries, err := h.service.List(c.Request.Context(), email)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AddToWishlist endpoint POST /wishlist
// Duplicado (email, bookId) => 200 informativo, no se inserta nada.
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req struct {
		BookID string `json:"bookId" binding:"required"`
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

	entry, err := h.service.Add(c.Request.Context(), principal.Email, bookID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntryExists):
			utils.SendMessage(c, "book already in wishlist")
		case errors.Is(err, bookDomain.ErrBookNotFound):
			utils.SendNotFound(c, "book not found")
		default:
			utils.SendInternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// RemoveFromWishlist endpoint DELETE /wishlists/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "invalid wishlist entry id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			utils.SendNotFound(c, "wishlist entry not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
