package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/danielinjesus/vibe-coding-shopping-mall-demo/controllers/cart"
	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/middleware"
	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

func SetupCartRoutes(api *gin.RouterGroup, carts *models.CartsRepository, products *models.ProductsRepository) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCartHandler(carts))
		cart.POST("", cartControllers.AddToCartHandler(carts, products))
		cart.PUT("/quantity", cartControllers.UpdateQuantityHandler(carts))
		cart.PUT("/select", cartControllers.ToggleSelectHandler(carts))
		cart.DELETE("/:productId", cartControllers.RemoveFromCartHandler(carts))
		cart.DELETE("", cartControllers.ClearCartHandler(carts))
	}
}
