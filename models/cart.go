package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem references its product live. The reference may dangle after an
// admin hard-deletes the product; Product is then nil and serializes as null.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CartID    uint      `gorm:"index;uniqueIndex:idx_cart_product,priority:1" json:"-"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_product,priority:2" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Selected  bool      `gorm:"not null;default:true" json:"selected"`
	AddedAt   time.Time `json:"addedAt"`
}

// SelectedItems returns the items flagged for checkout.
func (c *Cart) SelectedItems() []CartItem {
	var out []CartItem
	for _, it := range c.Items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}
