package genres

import (
	"stagely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupGenreRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	repo := NewRepository(db)
	service := NewService(repo)
	controller := NewController(service)

	genreRoutes := rg.Group("/genres")
	{
		genreRoutes.GET("", controller.GetGenres)
		genreRoutes.GET("/:id", controller.GetGenreByID)

		adminRoutes := genreRoutes.Group("")
		adminRoutes.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			adminRoutes.POST("", controller.CreateGenre)
			adminRoutes.PUT("/:id", controller.UpdateGenre)
			adminRoutes.DELETE("/:id", controller.DeleteGenre)
		}
	}
}
