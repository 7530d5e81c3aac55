package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

type CartStore interface {
	GetByUser(userID string) (*models.Cart, error)
	AddItem(userID string, productID uint, quantity int) (*models.Cart, error)
	UpdateQuantity(userID string, productID uint, quantity int) (*models.Cart, error)
	ToggleSelected(userID string, productID uint) (*models.Cart, error)
	RemoveItem(userID string, productID uint) (*models.Cart, error)
	Clear(userID string) (*models.Cart, error)
}

type ProductProvider interface {
	GetByID(id uint) (*models.Product, error)
}

func failStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrCartNotFound),
		errors.Is(err, models.ErrItemNotInCart):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// GET /api/cart
func GetCartHandler(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		cart, err := carts.GetByUser(userID)
		if errors.Is(err, models.ErrCartNotFound) {
			// lazy creation: no cart yet just means an empty one
			c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"items": []models.CartItem{}}})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": cart})
	}
}

// POST /api/cart
func AddToCartHandler(carts CartStore, products ProductProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req struct {
			ProductID uint `json:"productId" binding:"required"`
			Quantity  int  `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if req.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Quantity must be at least 1"})
			return
		}

		if _, err := products.GetByID(req.ProductID); err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}

		cart, err := carts.AddItem(userID, req.ProductID, req.Quantity)
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": cart})
	}
}

// PUT /api/cart/quantity
func UpdateQuantityHandler(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req struct {
			ProductID uint `json:"productId" binding:"required"`
			Quantity  int  `json:"quantity" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		if req.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Quantity must be at least 1"})
			return
		}

		cart, err := carts.UpdateQuantity(userID, req.ProductID, req.Quantity)
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": cart})
	}
}

// PUT /api/cart/select
func ToggleSelectHandler(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req struct {
			ProductID uint `json:"productId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}

		cart, err := carts.ToggleSelected(userID, req.ProductID)
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": cart})
	}
}

// DELETE /api/cart/:productId
func RemoveFromCartHandler(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Invalid product id"})
			return
		}

		cart, err := carts.RemoveItem(userID, uint(productID))
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": cart})
	}
}

// DELETE /api/cart
func ClearCartHandler(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := carts.Clear(userID)
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": cart})
	}
}
