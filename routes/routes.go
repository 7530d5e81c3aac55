package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/danielinjesus/vibe-coding-shopping-mall-demo/controllers/order"
	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

// SetupRoutes is the single entry-point that wires the repositories, the
// checkout workflow and every /api route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, verifier orderControllers.Verifier) {
	users := models.NewUsersRepository(db)
	products := models.NewProductsRepository(db)
	carts := models.NewCartsRepository(db)
	orders := models.NewOrdersRepository(db)

	checkout := orderControllers.NewCheckout(products, carts, orders, verifier)

	api := r.Group("/api")
	SetupUserRoutes(api, users)
	SetupProductRoutes(api, products, users)
	SetupCartRoutes(api, carts, products)
	SetupOrderRoutes(api, checkout, orders, users)
}
