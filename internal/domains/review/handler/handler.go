package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/domains/review/model"
	"filmforge-backend/internal/domains/review/service"
	"filmforge-backend/internal/shared/middleware"
	"filmforge-backend/internal/shared/response"
	"filmforge-backend/internal/shared/utils"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create creates a review for the authenticated user
// POST /api/v1/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	// Step 1: Get caller from JWT
	caller, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	// Step 2: Bind request body
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Step 3: Call service
	review, err := h.reviewService.Create(c.Request.Context(), caller.UserID, req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, review)
}

// Get GET /api/v1/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, review)
}

// List lists reviews, optionally for one movie or one user
// GET /api/v1/reviews?movie_id=&user_id=
func (h *ReviewHandler) List(c *gin.Context) {
	var filter model.ListFilter

	movieID, ok, err := utils.QueryUUID(c, "movie_id")
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}
	if ok {
		filter.MovieID = &movieID
	}

	userID, ok, err := utils.QueryUUID(c, "user_id")
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}
	if ok {
		filter.UserID = &userID
	}

	page := utils.ParsePagination(c)
	reviews, total, err := h.reviewService.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, reviews, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Update PUT /api/v1/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, review)
}

// Delete DELETE /api/v1/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
