package halls

import (
	"stagely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupHallRoutes configures all theatre hall routes
func SetupHallRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	repo := NewRepository(db)
	service := NewService(repo)
	controller := NewController(service)

	hallsGroup := rg.Group("/theatre-halls")
	{
		// Public catalog reads
		hallsGroup.GET("", controller.GetHalls)
		hallsGroup.GET("/:id", controller.GetHall)

		// Catalog writes are staff-only
		admin := hallsGroup.Group("")
		admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateHall)
			admin.PUT("/:id", controller.UpdateHall)
			admin.DELETE("/:id", controller.DeleteHall)
		}
	}
}
