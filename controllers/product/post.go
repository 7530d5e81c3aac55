package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

type CreateProductRequest struct {
	SKU         string  `json:"sku" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// POST /api/products (admin)
func CreateProductHandler(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		if req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Price must be non-negative"})
			return
		}
		category, err := models.ParseCategory(req.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}

		product := &models.Product{
			SKU:         req.SKU,
			Name:        req.Name,
			Price:       decimal.NewFromFloat(req.Price),
			Category:    category,
			Image:       req.Image,
			Description: req.Description,
		}
		if err := products.Create(product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": "success", "data": product})
	}
}
