package plays

import (
	"stagely/internal/actors"
	"stagely/internal/genres"
	"stagely/internal/shared/config"
	"stagely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupPlayRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	repo := NewRepository(db)
	service := NewService(repo, genres.NewRepository(db), actors.NewRepository(db))
	controller := NewController(service, cfg)

	playRoutes := rg.Group("/plays")
	{
		playRoutes.GET("", controller.GetPlays)
		playRoutes.GET("/:id", controller.GetPlayByID)

		adminRoutes := playRoutes.Group("")
		adminRoutes.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			adminRoutes.POST("", controller.CreatePlay)
			adminRoutes.PUT("/:id", controller.UpdatePlay)
			adminRoutes.POST("/:id/upload-image", controller.UploadImage)
			adminRoutes.DELETE("/:id", controller.DeletePlay)
		}
	}
}
