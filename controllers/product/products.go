package productControllers

import (
	"errors"
	"net/http"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

// ProductStore is the slice of the products repository the handlers need.
type ProductStore interface {
	Create(p *models.Product) error
	GetByID(id uint) (*models.Product, error)
	List(page, limit int) ([]models.Product, int64, error)
	Update(id uint, updates map[string]interface{}) (*models.Product, error)
	Delete(id uint) error
}

func failStatus(err error) int {
	if errors.Is(err, models.ErrProductNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
