package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/danielinjesus/vibe-coding-shopping-mall-demo/controllers/user"
	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/middleware"
	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

func SetupUserRoutes(api *gin.RouterGroup, users *models.UsersRepository) {
	api.POST("/users", userControllers.RegisterHandler(users))
	api.POST("/login", userControllers.LoginHandler(users))
	api.GET("/users/:id", userControllers.GetUserHandler(users))

	api.GET("/me", middleware.ValidateToken, userControllers.GetMeHandler(users))
	api.GET("/users", middleware.ValidateToken, middleware.RequireAdmin(users),
		userControllers.GetAllUsersHandler(users))
}
