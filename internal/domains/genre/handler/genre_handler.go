package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/domains/genre"
	"filmforge-backend/internal/shared/response"
	"filmforge-backend/internal/shared/utils"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(service genre.Service) *GenreHandler {
	return &GenreHandler{service: service}
}

// List GET /api/v1/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, genres)
}

// Get GET /api/v1/genres/:id
func (h *GenreHandler) Get(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, g)
}

// Create POST /api/v1/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genre.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, g)
}

// Update PUT /api/v1/genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}

	var req genre.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	g, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, g)
}

// Delete DELETE /api/v1/genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
