package productControllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /api/products?page=&limit=
func GetProductsHandler(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1
		limit := 10
		if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
			page = p
		}
		if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
			limit = l
		}

		list, total, err := products.List(page, limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   list,
			"pagination": gin.H{
				"currentPage": page,
				"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
				"totalCount":  total,
				"limit":       limit,
			},
		})
	}
}

// GET /api/products/:id
func GetProductHandler(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Invalid product id"})
			return
		}
		product, err := products.GetByID(uint(id))
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": product})
	}
}
