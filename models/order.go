package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by admin
	OrderStatusShipping  OrderStatus = "shipping"  // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // terminal
	OrderStatusCancelled OrderStatus = "cancelled" // terminal

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCash     PaymentMethod = "cash"
)

// Order is the frozen record of a checkout. Items keep only (product, quantity);
// prices are always read live through the product relation, so historical
// orders display current prices.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderNumber     string          `gorm:"uniqueIndex;not null" json:"orderNumber"`
	UserID          string          `gorm:"not null;index" json:"userId"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	ShippingAddress string          `gorm:"not null" json:"shippingAddress"`
	RecipientName   string          `gorm:"not null" json:"recipientName"`
	RecipientPhone  string          `gorm:"not null" json:"recipientPhone"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	PaymentMethod   PaymentMethod   `gorm:"type:VARCHAR(20);not null" json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `gorm:"type:VARCHAR(20);not null;default:'pending'" json:"paymentStatus"`
	ImpUID          string          `json:"imp_uid,omitempty"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);not null;default:'pending'" json:"orderStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"-"`
	OrderID   uint     `gorm:"index" json:"-"`
	ProductID uint     `json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product"` // nil once the product is hard-deleted
	Quantity  int      `gorm:"not null" json:"quantity"`
}

// CanCancel reports whether the owning customer may still cancel.
// Customer cancellation is permitted only from pending.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending
}

// ParseOrderStatus maps a request string to an order status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, nil
	case OrderStatusShipping:
		return OrderStatusShipping, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ParsePaymentMethod maps a request string to a payment method.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentMethodCard:
		return PaymentMethodCard, nil
	case PaymentMethodTransfer:
		return PaymentMethodTransfer, nil
	case PaymentMethodCash:
		return PaymentMethodCash, nil
	default:
		return "", errors.New("invalid payment method")
	}
}
