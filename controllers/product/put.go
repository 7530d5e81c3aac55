package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

type UpdateProductRequest struct {
	SKU         *string  `json:"sku"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

// PUT /api/products/:id (admin)
func UpdateProductHandler(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Invalid product id"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.SKU != nil {
			updates["sku"] = *req.SKU
		}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Price != nil {
			if *req.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Price must be non-negative"})
				return
			}
			updates["price"] = decimal.NewFromFloat(*req.Price)
		}
		if req.Category != nil {
			category, err := models.ParseCategory(*req.Category)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
				return
			}
			updates["category"] = category
		}
		if req.Image != nil {
			updates["image"] = *req.Image
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}

		product, err := products.Update(uint(id), updates)
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": product})
	}
}
