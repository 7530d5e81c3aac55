package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

func newRouter(userID string, svc *Checkout, orders OrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	}
	r.POST("/api/order", CreateOrderHandler(svc))
	r.GET("/api/order", GetOrdersHandler(orders))
	r.PUT("/api/order/:orderId/cancel", CancelOrderHandler(svc))
	r.PUT("/api/order/:orderId/status", UpdateOrderStatusHandler(orders))
	r.GET("/api/orders/all", GetAllOrdersHandler(orders))
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestCreateOrderHandlerSuccess(t *testing.T) {
	svc, _, _, orders, _ := newFixture()
	r := newRouter("user-1", svc, orders)

	rec := postJSON(r, "/api/order", gin.H{
		"shippingAddress": "123 Test St",
		"recipientName":   "Kim",
		"recipientPhone":  "010-1234-5678",
		"paymentMethod":   "card",
		"totalAmount":     900,
		"items":           []gin.H{{"productId": 3, "quantity": 3}},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "success", env.Status)

	var order models.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.NotEmpty(t, order.OrderNumber)
}

func TestCreateOrderHandlerUnauthorized(t *testing.T) {
	svc, _, _, orders, _ := newFixture()
	r := newRouter("", svc, orders)

	rec := postJSON(r, "/api/order", gin.H{
		"shippingAddress": "123 Test St",
		"recipientName":   "Kim",
		"recipientPhone":  "010-1234-5678",
		"paymentMethod":   "card",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "fail", decodeEnvelope(t, rec).Status)
}

func TestCreateOrderHandlerAmountMismatch(t *testing.T) {
	svc, _, _, orders, _ := newFixture()
	r := newRouter("user-1", svc, orders)

	rec := postJSON(r, "/api/order", gin.H{
		"shippingAddress": "123 Test St",
		"recipientName":   "Kim",
		"recipientPhone":  "010-1234-5678",
		"paymentMethod":   "card",
		"totalAmount":     850,
		"items":           []gin.H{{"productId": 3, "quantity": 3}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "fail", env.Status)
	assert.Contains(t, env.Error, "amount mismatch")
}

func TestCreateOrderHandlerUnknownProductIs404(t *testing.T) {
	svc, _, _, orders, _ := newFixture()
	r := newRouter("user-1", svc, orders)

	rec := postJSON(r, "/api/order", gin.H{
		"shippingAddress": "123 Test St",
		"recipientName":   "Kim",
		"recipientPhone":  "010-1234-5678",
		"paymentMethod":   "card",
		"items":           []gin.H{{"productId": 99, "quantity": 1}},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderHandlerMissingFields(t *testing.T) {
	svc, _, _, orders, _ := newFixture()
	r := newRouter("user-1", svc, orders)

	rec := postJSON(r, "/api/order", gin.H{"paymentMethod": "card"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrderHandler(t *testing.T) {
	svc, _, _, orders, _ := newFixture()
	r := newRouter("user-1", svc, orders)

	rec := postJSON(r, "/api/order", gin.H{
		"shippingAddress": "123 Test St",
		"recipientName":   "Kim",
		"recipientPhone":  "010-1234-5678",
		"paymentMethod":   "cash",
		"items":           []gin.H{{"productId": 1, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodPut, "/api/order/1/cancel", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// a second cancellation attempt is an invalid state
	req = httptest.NewRequest(http.MethodPut, "/api/order/1/cancel", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	svc, _, _, orders, _ := newFixture()
	r := newRouter("admin-1", svc, orders)

	rec := postJSON(r, "/api/order", gin.H{
		"shippingAddress": "123 Test St",
		"recipientName":   "Kim",
		"recipientPhone":  "010-1234-5678",
		"paymentMethod":   "card",
		"items":           []gin.H{{"productId": 1, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body, _ := json.Marshal(gin.H{"orderStatus": "confirmed"})
	req := httptest.NewRequest(http.MethodPut, "/api/order/1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	order, err := orders.Get(1)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestUpdateOrderStatusHandlerInvalidStatus(t *testing.T) {
	svc, _, _, orders, _ := newFixture()
	r := newRouter("admin-1", svc, orders)

	body, _ := json.Marshal(gin.H{"orderStatus": "teleported"})
	req := httptest.NewRequest(http.MethodPut, "/api/order/1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrdersHandlerNewestFirstEnvelope(t *testing.T) {
	svc, _, _, orders, _ := newFixture()
	r := newRouter("user-1", svc, orders)

	for i := 0; i < 2; i++ {
		rec := postJSON(r, "/api/order", gin.H{
			"shippingAddress": "123 Test St",
			"recipientName":   "Kim",
			"recipientPhone":  "010-1234-5678",
			"paymentMethod":   "card",
			"items":           []gin.H{{"productId": uint(i + 1), "quantity": i + 1}},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var list []models.Order
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)
}
