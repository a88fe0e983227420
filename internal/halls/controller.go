package halls

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

// CreateHall handles POST /api/v1/theatre-halls
func (ctrl *Controller) CreateHall(c *gin.Context) {
	var req CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	hall, err := ctrl.service.CreateHall(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Theatre hall created successfully", hall, nil)
}

// GetHall handles GET /api/v1/theatre-halls/:id
func (ctrl *Controller) GetHall(c *gin.Context) {
	hall, err := ctrl.service.GetHallByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrHallNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Theatre hall retrieved successfully", hall, nil)
}

// GetHalls handles GET /api/v1/theatre-halls
func (ctrl *Controller) GetHalls(c *gin.Context) {
	var query HallListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetHalls(c.Request.Context(), query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Theatre halls retrieved successfully", result, nil)
}

// UpdateHall handles PUT /api/v1/theatre-halls/:id
func (ctrl *Controller) UpdateHall(c *gin.Context) {
	var req UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	hall, err := ctrl.service.UpdateHall(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		statusCode := http.StatusBadRequest
		switch {
		case errors.Is(err, ErrHallNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrHallFrozen):
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Theatre hall updated successfully", hall, nil)
}

// DeleteHall handles DELETE /api/v1/theatre-halls/:id
func (ctrl *Controller) DeleteHall(c *gin.Context) {
	if err := ctrl.service.DeleteHall(c.Request.Context(), c.Param("id")); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrHallNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Theatre hall deleted successfully", nil, nil)
}
