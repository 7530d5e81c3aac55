package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order does not exist or does not
// belong to the requesting user.
var ErrOrderNotFound = errors.New("order not found")

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{db: db}
}

// Create persists a direct-purchase order.
func (r *OrdersRepository) Create(o *Order) error {
	return r.db.Create(o).Error
}

// CreateDrainingCart persists a cart-mode order and removes the consumed
// (selected) items from the cart in the same transaction, so a drained cart
// can never exist without its order.
func (r *OrdersRepository) CreateDrainingCart(o *Order, cartID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ? AND selected = ?", cartID, true).
			Delete(&CartItem{}).Error
	})
}

// Count returns the all-time number of orders, cancelled included.
func (r *OrdersRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&Order{}).Count(&n).Error
	return n, err
}

// HasRecentDuplicate reports whether the user already has a non-cancelled
// order with the identical total created at or after since.
func (r *OrdersRepository) HasRecentDuplicate(userID string, total decimal.Decimal, since time.Time) (bool, error) {
	var n int64
	err := r.db.Model(&Order{}).
		Where("user_id = ? AND total_amount = ? AND created_at >= ? AND status <> ?",
			userID, total, since, OrderStatusCancelled).
		Count(&n).Error
	return n > 0, err
}

// Get loads one order with items and products resolved.
func (r *OrdersRepository) Get(id uint) (*Order, error) {
	var order Order
	if err := r.db.Preload("Items.Product").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetForUser loads one order only if it belongs to the given user.
func (r *OrdersRepository) GetForUser(id uint, userID string) (*Order, error) {
	var order Order
	if err := r.db.Preload("Items.Product").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser returns the user's orders, newest first.
func (r *OrdersRepository) ListByUser(userID string) ([]Order, error) {
	var orders []Order
	if err := r.db.Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAll returns every order with user and product data, newest first.
func (r *OrdersRepository) ListAll() ([]Order, error) {
	var orders []Order
	if err := r.db.Preload("User").Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SetStatus updates the fulfillment status of one order.
func (r *OrdersRepository) SetStatus(id uint, status OrderStatus) error {
	res := r.db.Model(&Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
