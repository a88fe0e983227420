package performances

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

func (ctrl *Controller) CreatePerformance(c *gin.Context) {
	var req CreatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	performance, err := ctrl.service.CreatePerformance(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrPlayNotFound) || errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid references", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create performance", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Performance created successfully", performance, nil)
}

func (ctrl *Controller) GetPerformances(c *gin.Context) {
	var query PerformanceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	performances, err := ctrl.service.GetPerformances(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, ErrInvalidDateFilter) {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid date filter", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch performances", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performances fetched successfully", performances, nil)
}

func (ctrl *Controller) GetPerformanceByID(c *gin.Context) {
	id := c.Param("id")

	performance, err := ctrl.service.GetPerformanceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPerformanceNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Performance not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch performance", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performance fetched successfully", performance, nil)
}

func (ctrl *Controller) UpdatePerformance(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	performance, err := ctrl.service.UpdatePerformance(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPerformanceNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Performance not found", nil, err.Error())
		case errors.Is(err, ErrPlayNotFound), errors.Is(err, ErrHallNotFound):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid references", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update performance", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performance updated successfully", performance, nil)
}

func (ctrl *Controller) DeletePerformance(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.service.DeletePerformance(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPerformanceNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Performance not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete performance", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performance deleted successfully", nil, nil)
}
