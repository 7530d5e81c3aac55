package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

// failStatus maps workflow errors to the 4xx of the response envelope.
// Validation and state failures never surface as 5xx.
func failStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrProductNotFound), errors.Is(err, models.ErrOrderNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// POST /api/order
func CreateOrderHandler(svc *Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "error": "Unauthorized - No user ID"})
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}

		order, err := svc.CreateOrder(c.Request.Context(), userID, req)
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, gin.H{"status": "success", "data": order})
	}
}

// GET /api/order
func GetOrdersHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		list, err := orders.ListByUser(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": list})
	}
}

// GET /api/order/:orderId
func GetOrderHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := orders.GetForUser(id, userID)
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": order})
	}
}

// PUT /api/order/:orderId/cancel
func CancelOrderHandler(svc *Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := svc.Cancel(userID, id)
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": order})
	}
}

// PUT /api/order/:orderId/status (admin)
func UpdateOrderStatusHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		var req struct {
			OrderStatus string `json:"orderStatus" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.OrderStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		if err := orders.SetStatus(id, status); err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		order, err := orders.Get(id)
		if err != nil {
			c.JSON(failStatus(err), gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": order})
	}
}

// GET /api/orders/all (admin)
func GetAllOrdersHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": list})
	}
}
