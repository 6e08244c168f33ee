package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	"github.com/davicafu/bookcourier/internal/user/application"
	"github.com/davicafu/bookcourier/internal/user/domain"
	"github.com/davicafu/bookcourier/pkg/utils"
)

// UserHandler encapsula los endpoints HTTP relacionados con User
type UserHandler struct {
	service *application.UserService
}

// NewUserHandler crea un nuevo UserHandler
func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ---------------- Handlers ----------------

// CreateUser endpoint POST /users
// Crea el usuario si no existe por email; si ya existe responde un 200
// informativo (el caller inspecciona el body, no el status code).
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		PhotoURL string `json:"photoURL"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Name, req.Email, req.PhotoURL)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			utils.SendMessage(c, "user already exists")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, user)
}

// SearchUsers endpoint GET /users?searchText=&limit=&skip= (solo admin)
func (h *UserHandler) SearchUsers(c *gin.Context) {
	searchText := c.Query("searchText")

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil {
			limit = v
		}
	}
	skip := 0
	if skipStr := c.Query("skip"); skipStr != "" {
		if v, err := strconv.Atoi(skipStr); err == nil {
			skip = v
		}
	}

	users, err := h.service.SearchUsers(c.Request.Context(), searchText, limit, skip)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetRole endpoint GET /users/:email/role
// Email desconocido => {"role":"user"}.
func (h *UserHandler) GetRole(c *gin.Context) {
	email := c.Param("email")

	role, err := h.service.RoleByEmail(c.Request.Context(), email)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

// UpdateRole endpoint PATCH /users/:id/role (solo admin)
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "invalid user id")
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	role, err := identityDomain.ParseRole(req.Role)
	if err != nil {
		utils.SendBadRequest(c, "invalid role")
		return
	}

	user, err := h.service.SetRole(c.Request.Context(), id, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.SendNotFound(c, "user not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}
