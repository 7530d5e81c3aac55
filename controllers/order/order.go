package orderControllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

// duplicateWindow is the trailing window of the duplicate-submission guard.
const duplicateWindow = 5 * time.Minute

// amountEpsilon bounds the tolerated drift between the client-declared total
// and the server-computed one. Anything larger is treated as tampering.
var amountEpsilon = decimal.NewFromFloat(0.01)

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrNoItemsSelected = errors.New("no items selected")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrAmountMismatch  = errors.New("payment amount mismatch")
	ErrDuplicateOrder  = errors.New("duplicate order detected")
	ErrNotCancellable  = errors.New("only pending orders can be cancelled")
)

type ProductProvider interface {
	GetByID(id uint) (*models.Product, error)
}

type CartProvider interface {
	GetByUser(userID string) (*models.Cart, error)
}

type OrderStore interface {
	Create(o *models.Order) error
	CreateDrainingCart(o *models.Order, cartID uint) error
	Count() (int64, error)
	HasRecentDuplicate(userID string, total decimal.Decimal, since time.Time) (bool, error)
	Get(id uint) (*models.Order, error)
	GetForUser(id uint, userID string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
	ListAll() ([]models.Order, error)
	SetStatus(id uint, status models.OrderStatus) error
}

// Verifier confirms a payment transaction's status and amount with the
// external gateway.
type Verifier interface {
	Verify(ctx context.Context, impUID string, expected decimal.Decimal) error
}

type OrderItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CreateOrderRequest carries the checkout fields. Items empty means "use the
// cart's selected items"; a non-empty Items list is a direct purchase and the
// cart is never touched. TotalAmount, when present, is only a tamper check —
// the server-computed total is always authoritative.
type CreateOrderRequest struct {
	ShippingAddress string           `json:"shippingAddress" binding:"required"`
	RecipientName   string           `json:"recipientName" binding:"required"`
	RecipientPhone  string           `json:"recipientPhone" binding:"required"`
	PaymentMethod   string           `json:"paymentMethod" binding:"required"`
	TotalAmount     *float64         `json:"totalAmount"`
	Items           []OrderItemInput `json:"items"`
	ImpUID          string           `json:"imp_uid"`
}

// Checkout runs the order-creation workflow.
type Checkout struct {
	products ProductProvider
	carts    CartProvider
	orders   OrderStore
	verifier Verifier
	locks    userLocks
}

func NewCheckout(products ProductProvider, carts CartProvider, orders OrderStore, verifier Verifier) *Checkout {
	return &Checkout{
		products: products,
		carts:    carts,
		orders:   orders,
		verifier: verifier,
		locks:    userLocks{locks: make(map[string]*userLock)},
	}
}

// CreateOrder resolves the item set, recomputes the total, verifies payment
// when a transaction id is supplied, guards against duplicate submissions and
// persists the order. Failures before persistence leave every store
// untouched; in cart mode the order insert and the cart drain commit
// together. The whole sequence is serialized per user so two concurrent
// checkouts cannot consume the same selected items twice.
func (s *Checkout) CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*models.Order, error) {
	method, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(userID)
	defer unlock()

	var (
		items  []models.OrderItem
		total  decimal.Decimal
		cartID uint
	)
	cartMode := len(req.Items) == 0

	if cartMode {
		cart, err := s.carts.GetByUser(userID)
		if err != nil {
			if errors.Is(err, models.ErrCartNotFound) {
				return nil, ErrCartEmpty
			}
			return nil, err
		}
		if len(cart.Items) == 0 {
			return nil, ErrCartEmpty
		}
		selected := cart.SelectedItems()
		if len(selected) == 0 {
			return nil, ErrNoItemsSelected
		}
		for _, it := range selected {
			if it.Product == nil {
				// the product was deleted after the item was added
				return nil, models.ErrProductNotFound
			}
			total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
			items = append(items, models.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		cartID = cart.ID
	} else {
		for _, in := range req.Items {
			if in.Quantity < 1 {
				return nil, ErrInvalidQuantity
			}
			product, err := s.products.GetByID(in.ProductID)
			if err != nil {
				return nil, err
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))))
			items = append(items, models.OrderItem{ProductID: in.ProductID, Quantity: in.Quantity})
		}
	}

	// Tamper check against the client-declared total. Hard rejection, never
	// a warning.
	if req.TotalAmount != nil {
		declared := decimal.NewFromFloat(*req.TotalAmount)
		if declared.Sub(total).Abs().GreaterThan(amountEpsilon) {
			return nil, ErrAmountMismatch
		}
	}

	paymentStatus := models.PaymentStatusPending
	if req.ImpUID != "" {
		if err := s.verifier.Verify(ctx, req.ImpUID, total); err != nil {
			return nil, err
		}
		paymentStatus = models.PaymentStatusCompleted
	}

	dup, err := s.orders.HasRecentDuplicate(userID, total, time.Now().Add(-duplicateWindow))
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateOrder
	}

	number, err := s.nextOrderNumber()
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNumber:     number,
		UserID:          userID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		RecipientName:   req.RecipientName,
		RecipientPhone:  req.RecipientPhone,
		TotalAmount:     total,
		PaymentMethod:   method,
		PaymentStatus:   paymentStatus,
		ImpUID:          req.ImpUID,
		Status:          models.OrderStatusPending,
	}

	if cartMode {
		err = s.orders.CreateDrainingCart(order, cartID)
	} else {
		err = s.orders.Create(order)
	}
	if err != nil {
		return nil, err
	}

	return s.orders.Get(order.ID)
}

// nextOrderNumber derives a human-readable order number from the date and the
// all-time order count, e.g. ORD-20260830-004.
func (s *Checkout) nextOrderNumber() (string, error) {
	count, err := s.orders.Count()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%03d", time.Now().Format("20060102"), count+1), nil
}

// Cancel is the customer-side cancellation: permitted only while the order is
// still pending, transitioning straight to cancelled.
func (s *Checkout) Cancel(userID string, orderID uint) (*models.Order, error) {
	order, err := s.orders.GetForUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if !order.CanCancel() {
		return nil, ErrNotCancellable
	}
	if err := s.orders.SetStatus(order.ID, models.OrderStatusCancelled); err != nil {
		return nil, err
	}
	return s.orders.Get(order.ID)
}
