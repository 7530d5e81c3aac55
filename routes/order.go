package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/danielinjesus/vibe-coding-shopping-mall-demo/controllers/order"
	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/middleware"
	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

func SetupOrderRoutes(api *gin.RouterGroup, checkout *orderControllers.Checkout, orders *models.OrdersRepository, users *models.UsersRepository) {
	order := api.Group("/order")
	order.Use(middleware.ValidateToken)
	{
		order.POST("", orderControllers.CreateOrderHandler(checkout))
		order.GET("", orderControllers.GetOrdersHandler(orders))
		order.GET("/:orderId", orderControllers.GetOrderHandler(orders))
		order.PUT("/:orderId/cancel", orderControllers.CancelOrderHandler(checkout))
		order.PUT("/:orderId/status",
			middleware.RequireAdmin(users), orderControllers.UpdateOrderStatusHandler(orders))
	}

	adminOrders := api.Group("/orders")
	adminOrders.Use(middleware.ValidateToken, middleware.RequireAdmin(users))
	{
		adminOrders.GET("/all", orderControllers.GetAllOrdersHandler(orders))
		adminOrders.GET("/export", orderControllers.ExportOrdersToExcel(orders))
		adminOrders.GET("/ws", orderControllers.OrderFeedHandler)
	}
}
