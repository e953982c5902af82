/*
Package session holds the explicit per-session context: cart, wallet,
and dietary preferences. A Session is created per client interaction
and passed to handlers; there is no process-wide mutable session state.
*/
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quickbites/quickbites/internal/catalog"
)

const (
	// defaultWalletBalance seeds a new session's simulated wallet.
	defaultWalletBalance = 1000.0

	// orderIDLength truncates the uuid for display-friendly order ids.
	orderIDLength = 8
)

// CartLine is one cart entry: a menu item and its quantity.
type CartLine struct {
	Item     catalog.MenuItem `json:"item"`
	Quantity int              `json:"quantity"`
	// Discount is an item-specific discount percentage (10 = 10%).
	Discount float64 `json:"discount,omitempty"`
}

// Order is a placed order with its computed totals.
type Order struct {
	ID       string     `json:"orderId"`
	Lines    []CartLine `json:"lines"`
	Totals   Totals     `json:"totals"`
	PlacedAt time.Time  `json:"placedAt"`
}

// Session is the per-session context object.
type Session struct {
	ID            string     `json:"sessionId"`
	UserID        string     `json:"userId"`
	Cart          []CartLine `json:"cart"`
	WalletBalance float64    `json:"walletBalance"`
	Dietary       []string   `json:"dietaryPreferences,omitempty"`
	Orders        []Order    `json:"orders,omitempty"`
}

// New creates a session with a fresh identity and the default wallet.
func New() *Session {
	return &Session{
		ID:            uuid.NewString(),
		UserID:        newShortID(),
		WalletBalance: defaultWalletBalance,
	}
}

// newShortID generates an 8-character identifier.
func newShortID() string {
	return uuid.NewString()[:orderIDLength]
}

// AddItem adds a menu item to the cart, merging quantity onto an
// existing line for the same natural key.
func (s *Session) AddItem(item catalog.MenuItem, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range s.Cart {
		if s.Cart[i].Item.Key() == item.Key() {
			s.Cart[i].Quantity += quantity
			return
		}
	}
	s.Cart = append(s.Cart, CartLine{Item: item, Quantity: quantity})
}

// RemoveItem drops a cart line by natural key. Unknown keys are
// ignored.
func (s *Session) RemoveItem(key catalog.ItemKey) {
	for i := range s.Cart {
		if s.Cart[i].Item.Key() == key {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return
		}
	}
}

// CartItemNames returns the names of the items currently in the cart,
// in cart order.
func (s *Session) CartItemNames() []string {
	names := make([]string, 0, len(s.Cart))
	for _, line := range s.Cart {
		names = append(names, line.Item.Name)
	}
	return names
}

// PlaceOrder computes the cart totals, debits the wallet, records the
// order, and empties the cart. An empty cart or an insufficient wallet
// balance is an error and leaves the session unchanged.
func (s *Session) PlaceOrder(taxRate, globalDiscountPercent float64) (Order, error) {
	if len(s.Cart) == 0 {
		return Order{}, fmt.Errorf("cart is empty")
	}

	totals := ComputeTotals(s.Cart, taxRate, globalDiscountPercent)
	if totals.FinalTotal > s.WalletBalance {
		return Order{}, fmt.Errorf("insufficient wallet balance: need %.2f, have %.2f",
			totals.FinalTotal, s.WalletBalance)
	}

	order := Order{
		ID:       newShortID(),
		Lines:    s.Cart,
		Totals:   totals,
		PlacedAt: time.Now(),
	}

	s.WalletBalance -= totals.FinalTotal
	s.Orders = append(s.Orders, order)
	s.Cart = nil
	return order, nil
}
