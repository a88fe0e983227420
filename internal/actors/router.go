package actors

import (
	"stagely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupActorRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	repo := NewRepository(db)
	service := NewService(repo)
	controller := NewController(service)

	actorRoutes := rg.Group("/actors")
	{
		actorRoutes.GET("", controller.GetActors)
		actorRoutes.GET("/:id", controller.GetActorByID)

		adminRoutes := actorRoutes.Group("")
		adminRoutes.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			adminRoutes.POST("", controller.CreateActor)
			adminRoutes.PUT("/:id", controller.UpdateActor)
			adminRoutes.DELETE("/:id", controller.DeleteActor)
		}
	}
}
