package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrCartNotFound is returned when the user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrItemNotInCart is returned when the product is not among the cart items.
	ErrItemNotInCart = errors.New("product not in cart")
)

type CartsRepository struct {
	db *gorm.DB
}

func NewCartsRepository(db *gorm.DB) *CartsRepository {
	return &CartsRepository{db: db}
}

// GetByUser loads the user's cart with products resolved. Items whose product
// was deleted come back with a nil Product.
func (r *CartsRepository) GetByUser(userID string) (*Cart, error) {
	var cart Cart
	if err := r.db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem merges the product into the user's cart, creating the cart lazily.
// Quantities accumulate when the product is already present.
func (r *CartsRepository) AddItem(userID string, productID uint, quantity int) (*Cart, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cart Cart
		err := tx.Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var item CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
				Selected:  true,
				AddedAt:   time.Now(),
			}).Error
		} else if err != nil {
			return err
		}

		item.Quantity += quantity
		item.AddedAt = time.Now()
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByUser(userID)
}

// UpdateQuantity sets the quantity of an existing line item.
func (r *CartsRepository) UpdateQuantity(userID string, productID uint, quantity int) (*Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	res := r.db.Model(&CartItem{}).
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrItemNotInCart
	}
	return r.GetByUser(userID)
}

// ToggleSelected flips the checkout flag of an existing line item.
func (r *CartsRepository) ToggleSelected(userID string, productID uint) (*Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	res := r.db.Model(&CartItem{}).
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		Update("selected", gorm.Expr("NOT selected"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrItemNotInCart
	}
	return r.GetByUser(userID)
}

// RemoveItem drops a single line item.
func (r *CartsRepository) RemoveItem(userID string, productID uint) (*Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	res := r.db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).Delete(&CartItem{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrItemNotInCart
	}
	return r.GetByUser(userID)
}

// Clear removes every line item but keeps the cart row.
func (r *CartsRepository) Clear(userID string) (*Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Where("cart_id = ?", cart.ID).Delete(&CartItem{}).Error; err != nil {
		return nil, err
	}
	return r.GetByUser(userID)
}
