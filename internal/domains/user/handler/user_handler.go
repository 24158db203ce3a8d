package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/domains/user"
	"filmforge-backend/internal/shared/middleware"
	"filmforge-backend/internal/shared/response"
	"filmforge-backend/internal/shared/utils"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// ========================================
// AUTH ENDPOINTS
// ========================================

// Login authenticates with email and password
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// RefreshToken exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req user.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.userService.RefreshToken(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	resp, err := h.userService.GetByID(c.Request.Context(), principal.UserID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========================================
// USER CRUD
// ========================================

// List GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	page := utils.ParsePagination(c)

	users, total, err := h.userService.List(c.Request.Context(), page)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, users, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	resp, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Create POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Update PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
