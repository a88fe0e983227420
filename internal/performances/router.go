package performances

import (
	"stagely/internal/halls"
	"stagely/internal/plays"
	"stagely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupPerformanceRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	repo := NewRepository(db)
	service := NewService(repo, plays.NewRepository(db), halls.NewRepository(db))
	controller := NewController(service)

	performanceRoutes := rg.Group("/performances")
	{
		performanceRoutes.GET("", controller.GetPerformances)
		performanceRoutes.GET("/:id", controller.GetPerformanceByID)

		adminRoutes := performanceRoutes.Group("")
		adminRoutes.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			adminRoutes.POST("", controller.CreatePerformance)
			adminRoutes.PUT("/:id", controller.UpdatePerformance)
			adminRoutes.DELETE("/:id", controller.DeletePerformance)
		}
	}
}
