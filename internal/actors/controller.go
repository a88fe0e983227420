package actors

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

func (ctrl *Controller) CreateActor(c *gin.Context) {
	var req CreateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	actor, err := ctrl.service.CreateActor(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create actor", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Actor created successfully", actor, nil)
}

func (ctrl *Controller) GetActors(c *gin.Context) {
	actors, err := ctrl.service.GetActors(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch actors", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Actors fetched successfully", actors, nil)
}

func (ctrl *Controller) GetActorByID(c *gin.Context) {
	id := c.Param("id")

	actor, err := ctrl.service.GetActorByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrActorNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Actor not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch actor", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Actor fetched successfully", actor, nil)
}

func (ctrl *Controller) UpdateActor(c *gin.Context) {
	id := c.Param("id")

	var req UpdateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	actor, err := ctrl.service.UpdateActor(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrActorNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Actor not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update actor", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Actor updated successfully", actor, nil)
}

func (ctrl *Controller) DeleteActor(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.service.DeleteActor(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrActorNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Actor not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete actor", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Actor deleted successfully", nil, nil)
}
