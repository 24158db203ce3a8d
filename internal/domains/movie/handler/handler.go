package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/domains/movie/service"
	"filmforge-backend/internal/shared/response"
	"filmforge-backend/internal/shared/utils"
)

type MovieHandler struct {
	movieService service.ServiceInterface
}

func NewMovieHandler(movieService service.ServiceInterface) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// List GET /api/v1/movies?director_id=&genre_id=
func (h *MovieHandler) List(c *gin.Context) {
	var filter model.ListFilter

	directorID, ok, err := utils.QueryUUID(c, "director_id")
	if err != nil {
		response.BadRequest(c, "Invalid director ID")
		return
	}
	if ok {
		filter.DirectorID = &directorID
	}

	genreID, ok, err := utils.QueryUUID(c, "genre_id")
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}
	if ok {
		filter.GenreID = &genreID
	}

	page := utils.ParsePagination(c)
	movies, total, err := h.movieService.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, movies, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get GET /api/v1/movies/:id
func (h *MovieHandler) Get(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	m, err := h.movieService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// GetByActor GET /api/v1/actors/:id/movie
func (h *MovieHandler) GetByActor(c *gin.Context) {
	actorID, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid actor ID")
		return
	}

	m, err := h.movieService.GetCurrentByActor(c.Request.Context(), actorID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Budget GET /api/v1/movies/:id/budget
func (h *MovieHandler) Budget(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	summary, err := h.movieService.BudgetSummary(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// Create POST /api/v1/movies
func (h *MovieHandler) Create(c *gin.Context) {
	var req model.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.movieService.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// Update PUT /api/v1/movies/:id
func (h *MovieHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	var req model.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.movieService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Delete DELETE /api/v1/movies/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	if err := h.movieService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
