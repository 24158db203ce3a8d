package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/domains/rating/model"
	"filmforge-backend/internal/domains/rating/service"
	"filmforge-backend/internal/shared/middleware"
	"filmforge-backend/internal/shared/response"
	"filmforge-backend/internal/shared/utils"
)

type RatingHandler struct {
	ratingService service.ServiceInterface
}

func NewRatingHandler(ratingService service.ServiceInterface) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// List GET /api/v1/ratings?movie_id=
func (h *RatingHandler) List(c *gin.Context) {
	var filter model.ListFilter
	movieID, ok, err := utils.QueryUUID(c, "movie_id")
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}
	if ok {
		filter.MovieID = &movieID
	}

	page := utils.ParsePagination(c)
	ratings, total, err := h.ratingService.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, ratings, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get GET /api/v1/ratings/:id
func (h *RatingHandler) Get(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid rating ID")
		return
	}

	r, err := h.ratingService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

// Create POST /api/v1/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	caller, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var req model.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	r, err := h.ratingService.Create(c.Request.Context(), caller.UserID, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, r)
}

// Update PUT /api/v1/ratings/:id
func (h *RatingHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid rating ID")
		return
	}

	var req model.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	r, err := h.ratingService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

// Delete DELETE /api/v1/ratings/:id
func (h *RatingHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid rating ID")
		return
	}

	if err := h.ratingService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
