package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/domains/invitation/model"
	"filmforge-backend/internal/domains/invitation/service"
	"filmforge-backend/internal/shared/response"
	"filmforge-backend/internal/shared/utils"
)

type InvitationHandler struct {
	invitationService service.ServiceInterface
}

func NewInvitationHandler(invitationService service.ServiceInterface) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

// List GET /api/v1/invitations
func (h *InvitationHandler) List(c *gin.Context) {
	page := utils.ParsePagination(c)

	invs, total, err := h.invitationService.List(c.Request.Context(), page)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, invs, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get GET /api/v1/invitations/:id
func (h *InvitationHandler) Get(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid invitation ID")
		return
	}

	inv, err := h.invitationService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

// ListByActor GET /api/v1/invitations/actor/:actorId
func (h *InvitationHandler) ListByActor(c *gin.Context) {
	actorID, err := utils.ParamUUID(c, "actorId")
	if err != nil {
		response.BadRequest(c, "Invalid actor ID")
		return
	}

	invs, err := h.invitationService.ListByActor(c.Request.Context(), actorID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, invs)
}

// ListByMovie GET /api/v1/invitations/movie/:movieId
func (h *InvitationHandler) ListByMovie(c *gin.Context) {
	movieID, err := utils.ParamUUID(c, "movieId")
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	invs, err := h.invitationService.ListByMovie(c.Request.Context(), movieID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, invs)
}

// GetByActorAndMovie GET /api/v1/invitations/actor/:actorId/movie/:movieId
func (h *InvitationHandler) GetByActorAndMovie(c *gin.Context) {
	actorID, err := utils.ParamUUID(c, "actorId")
	if err != nil {
		response.BadRequest(c, "Invalid actor ID")
		return
	}
	movieID, err := utils.ParamUUID(c, "movieId")
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	inv, err := h.invitationService.GetByActorAndMovie(c.Request.Context(), actorID, movieID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

// Create POST /api/v1/invitations
func (h *InvitationHandler) Create(c *gin.Context) {
	var req model.InvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	inv, err := h.invitationService.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, inv)
}

// Update PUT /api/v1/invitations/:id
func (h *InvitationHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid invitation ID")
		return
	}

	var req model.InvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	inv, err := h.invitationService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

// Delete DELETE /api/v1/invitations/:id
func (h *InvitationHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid invitation ID")
		return
	}

	if err := h.invitationService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
