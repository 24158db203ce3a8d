package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/domains/actor/model"
	"filmforge-backend/internal/domains/actor/service"
	"filmforge-backend/internal/shared/middleware"
	"filmforge-backend/internal/shared/response"
	"filmforge-backend/internal/shared/utils"
)

type ActorHandler struct {
	actorService service.ServiceInterface
}

func NewActorHandler(actorService service.ServiceInterface) *ActorHandler {
	return &ActorHandler{actorService: actorService}
}

// List GET /api/v1/actors
func (h *ActorHandler) List(c *gin.Context) {
	page := utils.ParsePagination(c)

	actors, total, err := h.actorService.List(c.Request.Context(), page)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, actors, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get GET /api/v1/actors/:id
func (h *ActorHandler) Get(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid actor ID")
		return
	}

	a, err := h.actorService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Create POST /api/v1/actors
func (h *ActorHandler) Create(c *gin.Context) {
	var req model.CreateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.actorService.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a)
}

// Update PUT /api/v1/actors/:id
// Actors may update their own record; a fee change is checked against the
// budget of their current movie.
func (h *ActorHandler) Update(c *gin.Context) {
	caller, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid actor ID")
		return
	}

	var req model.UpdateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.actorService.Update(c.Request.Context(), caller, id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Delete DELETE /api/v1/actors/:id
func (h *ActorHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid actor ID")
		return
	}

	if err := h.actorService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
