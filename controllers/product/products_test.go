package productControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

type mockProductStore struct {
	products map[uint]*models.Product
	nextID   uint
}

func newMockProductStore() *mockProductStore {
	return &mockProductStore{products: make(map[uint]*models.Product), nextID: 1}
}

func (m *mockProductStore) Create(p *models.Product) error {
	p.SKU = models.NormalizeSKU(p.SKU)
	for _, existing := range m.products {
		if existing.SKU == p.SKU {
			return models.ErrSKUExists
		}
	}
	p.ID = m.nextID
	m.nextID++
	m.products[p.ID] = p
	return nil
}

func (m *mockProductStore) GetByID(id uint) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return p, nil
}

func (m *mockProductStore) List(page, limit int) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, int64(len(m.products)), nil
}

func (m *mockProductStore) Update(id uint, updates map[string]interface{}) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	if name, ok := updates["name"].(string); ok {
		p.Name = name
	}
	if price, ok := updates["price"].(decimal.Decimal); ok {
		p.Price = price
	}
	return p, nil
}

func (m *mockProductStore) Delete(id uint) error {
	if _, ok := m.products[id]; !ok {
		return models.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func newRouter(store ProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", GetProductsHandler(store))
	r.GET("/api/products/:id", GetProductHandler(store))
	r.POST("/api/products", CreateProductHandler(store))
	r.PUT("/api/products/:id", UpdateProductHandler(store))
	r.DELETE("/api/products/:id", DeleteProductHandler(store))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var data []byte
	if body != nil {
		data, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateProduct(t *testing.T) {
	store := newMockProductStore()
	r := newRouter(store)

	rec := doJSON(r, http.MethodPost, "/api/products", gin.H{
		"sku":      "gpu-rtx4090",
		"name":     "NVIDIA GeForce RTX 4090",
		"price":    1000,
		"category": "gpu",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	p, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "GPU-RTX4090", p.SKU, "SKU normalized to uppercase")
	assert.Equal(t, models.CategoryGPU, p.Category)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(1000)))
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	store := newMockProductStore()
	r := newRouter(store)

	body := gin.H{"sku": "GPU-X", "name": "X", "price": 10, "category": "gpu"}
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/products", body).Code)

	rec := doJSON(r, http.MethodPost, "/api/products", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "SKU already exists")
}

func TestCreateProductInvalidCategory(t *testing.T) {
	r := newRouter(newMockProductStore())

	rec := doJSON(r, http.MethodPost, "/api/products", gin.H{
		"sku": "A-1", "name": "A", "price": 10, "category": "toaster",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductNegativePrice(t *testing.T) {
	r := newRouter(newMockProductStore())

	rec := doJSON(r, http.MethodPost, "/api/products", gin.H{
		"sku": "A-1", "name": "A", "price": -5, "category": "gpu",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductNotFound(t *testing.T) {
	r := newRouter(newMockProductStore())

	rec := doJSON(r, http.MethodGet, "/api/products/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "fail")
}

func TestListProductsPaginationEnvelope(t *testing.T) {
	store := newMockProductStore()
	store.Create(&models.Product{SKU: "A-1", Name: "A", Price: decimal.NewFromInt(1), Category: models.CategoryGPU})
	store.Create(&models.Product{SKU: "B-1", Name: "B", Price: decimal.NewFromInt(2), Category: models.CategoryGPU})
	r := newRouter(store)

	rec := doJSON(r, http.MethodGet, "/api/products?page=1&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status     string `json:"status"`
		Pagination struct {
			CurrentPage int   `json:"currentPage"`
			TotalPages  int   `json:"totalPages"`
			TotalCount  int64 `json:"totalCount"`
			Limit       int   `json:"limit"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.Pagination.CurrentPage)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, int64(2), resp.Pagination.TotalCount)
}

func TestUpdateProduct(t *testing.T) {
	store := newMockProductStore()
	store.Create(&models.Product{SKU: "A-1", Name: "A", Price: decimal.NewFromInt(1), Category: models.CategoryGPU})
	r := newRouter(store)

	rec := doJSON(r, http.MethodPut, "/api/products/1", gin.H{"name": "A2", "price": 3})
	require.Equal(t, http.StatusOK, rec.Code)

	p, _ := store.GetByID(1)
	assert.Equal(t, "A2", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(3)))
}

func TestDeleteProduct(t *testing.T) {
	store := newMockProductStore()
	store.Create(&models.Product{SKU: "A-1", Name: "A", Price: decimal.NewFromInt(1), Category: models.CategoryGPU})
	r := newRouter(store)

	require.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/api/products/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/api/products/1", nil).Code)
}
