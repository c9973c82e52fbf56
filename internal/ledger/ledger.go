// Package ledger accumulates one user session's cart items and created
// orders. A ledger is scoped to a single session and must never be shared
// across sessions; the session registry hands each session its own.
package ledger

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"sync"
	"time"

	"greenchain/internal/models"
)

var (
	// ErrInvalidQuantity rejects quantities that are non-positive or
	// exceed the available stock. Nothing is mutated on rejection.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrIncompleteShippingInfo rejects order creation with an empty
	// delivery address or phone number.
	ErrIncompleteShippingInfo = errors.New("incomplete shipping info")
)

// Stocker reports the available stock for a product name. The catalog
// satisfies it; a nil Stocker disables stock validation.
type Stocker interface {
	Available(name string) (int, bool)
}

// OrderStore mirrors created orders into durable storage. A nil store
// keeps the ledger purely in memory.
type OrderStore interface {
	Append(models.Order) error
}

// Ledger holds the cart items and orders of one session.
type Ledger struct {
	mu     sync.Mutex
	stock  Stocker
	store  OrderStore
	items  []models.CartItem
	orders []models.Order
}

// New creates an empty ledger. Both collaborators are optional.
func New(stock Stocker, store OrderStore) *Ledger {
	return &Ledger{stock: stock, store: store}
}

// AddItem appends a cart line for the named product. It fails with
// ErrInvalidQuantity if quantity is non-positive or exceeds known stock,
// leaving the cart untouched.
func (l *Ledger) AddItem(name string, unitPrice float64, quantity int) (models.CartItem, error) {
	if quantity <= 0 {
		return models.CartItem{}, fmt.Errorf("add %q: %w", name, ErrInvalidQuantity)
	}
	if l.stock != nil {
		if available, ok := l.stock.Available(name); ok && quantity > available {
			return models.CartItem{}, fmt.Errorf("add %q: %d exceeds stock of %d: %w", name, quantity, available, ErrInvalidQuantity)
		}
	}

	item := models.CartItem{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		LineTotal: unitPrice * float64(quantity),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
	return item, nil
}

// Items returns a copy of the cart lines in insertion order.
func (l *Ledger) Items() []models.CartItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

// Total returns the sum of line totals, zero for an empty cart.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var total float64
	for _, item := range l.items {
		total += item.LineTotal
	}
	return total
}

// Clear empties the cart.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}

// CreateOrder appends an immutable order and returns its identifier. It
// fails with ErrIncompleteShippingInfo when the address or phone is empty;
// nothing is recorded on failure.
func (l *Ledger) CreateOrder(itemName string, quantity int, unitPrice float64, address, phone string, createdAt time.Time, estimatedDeliveryHours int) (int, error) {
	if address == "" || phone == "" {
		return 0, fmt.Errorf("create order for %q: %w", itemName, ErrIncompleteShippingInfo)
	}

	l.mu.Lock()
	order := models.Order{
		ID:                     len(l.orders) + 1,
		ItemName:               itemName,
		Quantity:               quantity,
		UnitPrice:              unitPrice,
		TotalPrice:             unitPrice * float64(quantity),
		DeliveryAddress:        address,
		Phone:                  phone,
		CreatedAt:              createdAt,
		EstimatedDeliveryHours: estimatedDeliveryHours,
	}
	l.orders = append(l.orders, order)
	l.mu.Unlock()

	if l.store != nil {
		// Durability is best-effort; the session ledger stays authoritative.
		if err := l.store.Append(order); err != nil {
			log.Printf("order store append failed for order %d: %v", order.ID, err)
		}
	}

	return order.ID, nil
}

// Order returns the order with the given identifier.
func (l *Ledger) Order(id int) (models.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id < 1 || id > len(l.orders) {
		return models.Order{}, false
	}
	return l.orders[id-1], true
}

// OrderCount returns the number of created orders.
func (l *Ledger) OrderCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}

// Orders returns a restartable sequence over the orders in creation order.
// The sequence iterates a snapshot, so it remains valid while the ledger
// keeps changing and can be ranged over any number of times.
func (l *Ledger) Orders() iter.Seq[models.Order] {
	l.mu.Lock()
	snapshot := make([]models.Order, len(l.orders))
	copy(snapshot, l.orders)
	l.mu.Unlock()

	return func(yield func(models.Order) bool) {
		for _, order := range snapshot {
			if !yield(order) {
				return
			}
		}
	}
}
