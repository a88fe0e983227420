package reservations

import (
	"stagely/internal/performances"
	"stagely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupReservationRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	repo := NewRepository(db)
	service := NewService(repo, performances.NewRepository(db))
	controller := NewController(service)

	reservationRoutes := rg.Group("/reservations")
	reservationRoutes.Use(middleware.JWTAuth())
	{
		reservationRoutes.POST("", controller.CreateReservation)
		reservationRoutes.GET("", controller.GetMyReservations)
		reservationRoutes.GET("/:id", controller.GetReservationByID)
		reservationRoutes.DELETE("/:id", controller.CancelReservation)
	}
}
