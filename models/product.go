package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryComputer ProductCategory = "computer"
	CategoryLaptop   ProductCategory = "laptop"
	CategoryGPU      ProductCategory = "gpu"
)

// Product is a catalog entry. Identity is immutable; attributes change only
// through admin edits and deletion is hard (no soft-delete).
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU         string          `gorm:"uniqueIndex;not null" json:"sku"`
	Name        string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    ProductCategory `gorm:"type:VARCHAR(20);not null" json:"category"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ParseCategory maps a request string to the fixed category set.
func ParseCategory(s string) (ProductCategory, error) {
	switch ProductCategory(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryComputer:
		return CategoryComputer, nil
	case CategoryLaptop:
		return CategoryLaptop, nil
	case CategoryGPU:
		return CategoryGPU, nil
	default:
		return "", errors.New("invalid category")
	}
}

// NormalizeSKU trims and uppercases a SKU before storage or lookup.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
