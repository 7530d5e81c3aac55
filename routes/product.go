package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/danielinjesus/vibe-coding-shopping-mall-demo/controllers/product"
	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/middleware"
	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

func SetupProductRoutes(api *gin.RouterGroup, products *models.ProductsRepository, users *models.UsersRepository) {
	// public catalog browsing
	api.GET("/products", productControllers.GetProductsHandler(products))
	api.GET("/products/:id", productControllers.GetProductHandler(products))

	// catalog management
	admin := api.Group("/products")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin(users))
	{
		admin.POST("", productControllers.CreateProductHandler(products))
		admin.PUT("/:id", productControllers.UpdateProductHandler(products))
		admin.DELETE("/:id", productControllers.DeleteProductHandler(products))
	}
}
