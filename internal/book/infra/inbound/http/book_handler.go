package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/davicafu/bookcourier/internal/book/application"
	"github.com/davicafu/bookcourier/internal/book/domain"
	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
	"github.com/davicafu/bookcourier/pkg/utils"
)

// BookHandler encapsula los endpoints HTTP del catálogo
type BookHandler struct {
	service *application.BookService
}

// NewBookHandler crea un nuevo BookHandler
func NewBookHandler(service *application.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// ---------------- Handlers ----------------

// ListBooks endpoint GET /all-books?status&sortBy&sortOrder&limit&skip&searchByTitle&email
// Devuelve la página pedida más el total de documentos que matchean.
func (h *BookHandler) ListBooks(c *gin.Context) {
	in := application.ListBooksInput{
		Status:        c.Query("status"),
		OwnerEmail:    c.Query("email"),
		SearchByTitle: c.Query("searchByTitle"),
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil {
			in.Limit = v
		}
	}
	if skipStr := c.Query("skip"); skipStr != "" {
		if v, err := strconv.Atoi(skipStr); err == nil {
			in.Skip = v
		}
	}

	books, total, err := h.service.ListBooks(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBookStatus) {
			utils.SendBadRequest(c, "invalid status")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"books": books,
		"total": total,
	})
}

// GetBookDetails endpoint GET /books/:id/details
func (h *BookHandler) GetBookDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "invalid book id")
		return
	}

	book, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			utils.SendNotFound(c, "book not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, book)
}

// ListOwnBooks endpoint GET /books?email= (libros publicados por el principal)
func (h *BookHandler) ListOwnBooks(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		if principal, ok := identityHttp.PrincipalFrom(c); ok {
			email = principal.Email
		}
	}

	books, _, err := h.service.ListBooks(c.Request.Context(), application.ListBooksInput{OwnerEmail: email})
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, books)
}

// CreateBook endpoint POST /books (solo librarian)
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req struct {
		Title       string  `json:"title" binding:"required"`
		Author      string  `json:"author" binding:"required"`
		Description string  `json:"description"`
		CoverURL    string  `json:"coverURL"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	principal, ok := identityHttp.PrincipalFrom(c)
	if !ok {
		utils.SendUnauthorized(c, "Unauthorized Access!")
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), application.CreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		Price:       req.Price,
		Quantity:    req.Quantity,
		OwnerEmail:  principal.Email,
	})
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, book)
}

// UpdateBookStatus endpoint PATCH /books/:id
func (h *BookHandler) UpdateBookStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "invalid book id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	status, err := domain.ParseBookStatus(req.Status)
	if err != nil {
		utils.SendBadRequest(c, "invalid status")
		return
	}

	book, err := h.service.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			utils.SendNotFound(c, "book not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook endpoint DELETE /books/:id (solo admin, cascada sobre pedidos)
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "invalid book id")
		return
	}

	ordersDeleted, err := h.service.DeleteBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			utils.SendNotFound(c, "book not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted":       true,
		"ordersDeleted": ordersDeleted,
	})
}
