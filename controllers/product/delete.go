package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DELETE /api/products/:id (admin). Hard delete; cart and order items keep
// their dangling reference and render a null product.
func DeleteProductHandler(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Invalid product id"})
			return
		}
		if err := products.Delete(uint(id)); err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"message": "Product deleted successfully"}})
	}
}
