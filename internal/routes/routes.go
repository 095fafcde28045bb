package routes

import (
	"github.com/gin-gonic/gin"

	"comictrack/internal/handlers"
	"comictrack/internal/middleware"
	"comictrack/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	auth services.AuthService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	comicHandler *handlers.ComicHandler,
	genreHandler *handlers.GenreHandler,
	favoriteHandler *handlers.FavoriteHandler,
	notificationHandler *handlers.NotificationHandler,
) *gin.Engine {

	// ---- public
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/verify-email", authHandler.SendResetToken)
	r.POST("/auth/verify-token", authHandler.VerifyToken)
	r.POST("/auth/reset-password", authHandler.ResetPassword)

	// ---- protected
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(auth))

	protected.POST("/auth/change-password", authHandler.ChangePassword)

	users := protected.Group("/users")
	{
		users.GET("/me", userHandler.GetMe)
		users.PUT("/me", userHandler.UpdateMe)
		users.DELETE("/me", userHandler.DeleteMe)
	}

	comics := protected.Group("/comics")
	{
		comics.POST("", comicHandler.Create)
		comics.GET("", comicHandler.List)
		comics.GET("/:id", comicHandler.GetByID)
		comics.PUT("/:id", comicHandler.Update)
		comics.DELETE("/:id", comicHandler.Delete)
	}

	genres := protected.Group("/genres")
	{
		genres.POST("", genreHandler.Create)
		genres.GET("", genreHandler.List)
		genres.GET("/:id", genreHandler.GetByID)
		genres.PUT("/:id", genreHandler.Update)
		genres.DELETE("/:id", genreHandler.Delete)
	}

	favorites := protected.Group("/favorites")
	{
		favorites.GET("", favoriteHandler.List)
		favorites.POST("/:comicId", favoriteHandler.Add)
		favorites.DELETE("/:comicId", favoriteHandler.Remove)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.PATCH("/readAll", notificationHandler.MarkAllAsRead)
		notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
	}

	return r
}
