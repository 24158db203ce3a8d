package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/domains/director/model"
	"filmforge-backend/internal/domains/director/service"
	"filmforge-backend/internal/shared/response"
	"filmforge-backend/internal/shared/utils"
)

type DirectorHandler struct {
	directorService service.ServiceInterface
}

func NewDirectorHandler(directorService service.ServiceInterface) *DirectorHandler {
	return &DirectorHandler{directorService: directorService}
}

// List GET /api/v1/directors
func (h *DirectorHandler) List(c *gin.Context) {
	page := utils.ParsePagination(c)

	directors, total, err := h.directorService.List(c.Request.Context(), page)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, directors, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get GET /api/v1/directors/:id
func (h *DirectorHandler) Get(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid director ID")
		return
	}

	d, err := h.directorService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// Create POST /api/v1/directors
func (h *DirectorHandler) Create(c *gin.Context) {
	var req model.CreateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	d, err := h.directorService.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, d)
}

// Update PUT /api/v1/directors/:id
func (h *DirectorHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid director ID")
		return
	}

	var req model.UpdateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	d, err := h.directorService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// Delete DELETE /api/v1/directors/:id
func (h *DirectorHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid director ID")
		return
	}

	if err := h.directorService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
