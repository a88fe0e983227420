package reservations

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

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return "", false
	}
	return userID.(string), true
}

func (ctrl *Controller) CreateReservation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	reservation, err := ctrl.service.CreateReservation(c.Request.Context(), userID, req)
	if err != nil {
		var outOfRange *SeatOutOfRangeError
		var seatTaken *SeatTakenError
		switch {
		case errors.Is(err, ErrEmptyBatch):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Reservation must contain tickets", nil, err.Error())
		case errors.As(err, &outOfRange):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Seat out of range", nil, err.Error())
		case errors.As(err, &seatTaken):
			response.RespondJSON(c, "error", http.StatusConflict, "Seat already taken", nil, err.Error())
		case errors.Is(err, ErrPerformanceNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Performance not found", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create reservation", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Reservation created successfully", reservation, nil)
}

func (ctrl *Controller) GetMyReservations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query ReservationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	reservations, err := ctrl.service.GetUserReservations(c.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch reservations", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservations fetched successfully", reservations, nil)
}

func (ctrl *Controller) GetReservationByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reservation, err := ctrl.service.GetReservationByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Reservation not found", nil, err.Error())
		case errors.Is(err, ErrNotReservationOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "Access denied", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch reservation", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation fetched successfully", reservation, nil)
}

func (ctrl *Controller) CancelReservation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.service.CancelReservation(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Reservation not found", nil, err.Error())
		case errors.Is(err, ErrNotReservationOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "Access denied", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to cancel reservation", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation cancelled successfully", nil, nil)
}
