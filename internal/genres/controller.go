package genres

import (
	"errors"
	"net/http"

	"stagely/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) CreateGenre(c *gin.Context) {
	var req CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	genre, err := ctrl.service.CreateGenre(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrGenreExists) {
			response.RespondJSON(c, "error", http.StatusConflict, "Genre already exists", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create genre", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Genre created successfully", genre, nil)
}

func (ctrl *Controller) GetGenres(c *gin.Context) {
	genres, err := ctrl.service.GetGenres(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch genres", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genres fetched successfully", genres, nil)
}

func (ctrl *Controller) GetGenreByID(c *gin.Context) {
	id := c.Param("id")

	genre, err := ctrl.service.GetGenreByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGenreNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Genre not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch genre", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genre fetched successfully", genre, nil)
}

func (ctrl *Controller) UpdateGenre(c *gin.Context) {
	id := c.Param("id")

	var req UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	genre, err := ctrl.service.UpdateGenre(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGenreNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Genre not found", nil, err.Error())
		case errors.Is(err, ErrGenreExists):
			response.RespondJSON(c, "error", http.StatusConflict, "Genre already exists", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update genre", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genre updated successfully", genre, nil)
}

func (ctrl *Controller) DeleteGenre(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.service.DeleteGenre(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrGenreNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Genre not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete genre", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genre deleted successfully", nil, nil)
}
