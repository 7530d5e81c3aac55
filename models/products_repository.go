package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrSKUExists is returned when a create or update collides with an existing SKU.
var ErrSKUExists = errors.New("SKU already exists")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{db: db}
}

func (r *ProductsRepository) Create(p *Product) error {
	p.SKU = NormalizeSKU(p.SKU)
	if err := r.db.Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSKUExists
		}
		return err
	}
	return nil
}

func (r *ProductsRepository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List returns one page of products, newest first, plus the unpaged total.
func (r *ProductsRepository) List(page, limit int) ([]Product, int64, error) {
	var products []Product
	var total int64

	if err := r.db.Model(&Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Update applies the given column updates and returns the fresh row.
func (r *ProductsRepository) Update(id uint, updates map[string]interface{}) (*Product, error) {
	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sku, ok := updates["sku"].(string); ok {
		updates["sku"] = NormalizeSKU(sku)
	}
	if err := r.db.Model(product).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSKUExists
		}
		return nil, err
	}
	return product, nil
}

// Delete hard-deletes the product. Cart and order items that reference it
// keep their dangling product id.
func (r *ProductsRepository) Delete(id uint) error {
	res := r.db.Delete(&Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// isUniqueViolation matches both GORM's translated error and the raw
// Postgres 23505 message, depending on driver configuration.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
