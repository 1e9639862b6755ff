// Package store owns the mutable application state: catalogue, cart and
// order history. All mutation goes through named commands that replace the
// affected slice wholesale; callers only ever see copies.
package store

import (
	"sync"

	"plastic-world/internal/cart"
	"plastic-world/internal/model"

	"github.com/rs/zerolog"
)

// Store is the single owner of catalogue, cart and order state for the
// process. There is one active shopper per process; the mutex only guards
// against concurrent HTTP handlers touching the same slices.
type Store struct {
	mu       sync.Mutex
	products []model.Product
	items    []model.CartItem
	orders   []model.Order
	logger   zerolog.Logger
}

// New creates a store seeded with the given catalogue.
func New(seed []model.Product, logger zerolog.Logger) *Store {
	products := make([]model.Product, len(seed))
	copy(products, seed)

	return &Store{
		products: products,
		logger:   logger.With().Str("component", "store").Logger(),
	}
}

// Products returns a copy of the current catalogue.
func (s *Store) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID returns the product with the given id, if present.
func (s *Store) ProductByID(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// ReplaceProduct swaps the catalogue entry matching product.ID in place,
// leaving every other entry's position unchanged. It reports whether a
// matching entry existed.
func (s *Store) ReplaceProduct(product model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == product.ID {
			next := make([]model.Product, len(s.products))
			copy(next, s.products)
			next[i] = product
			s.products = next
			return true
		}
	}
	return false
}

// PrependProduct inserts a new product at the head of the catalogue.
func (s *Store) PrependProduct(product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Product, 0, len(s.products)+1)
	next = append(next, product)
	next = append(next, s.products...)
	s.products = next
}

// RemoveProduct deletes the catalogue entry with the given id. Removing an
// unknown id is a no-op; the bool reports whether an entry was removed.
func (s *Store) RemoveProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Product, 0, len(s.products))
	removed := false
	for _, p := range s.products {
		if p.ID == id {
			removed = true
			continue
		}
		next = append(next, p)
	}
	s.products = next
	return removed
}

// CartItems returns a copy of the current cart contents.
func (s *Store) CartItems() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// AddToCart adds one unit of the product with the given id to the cart.
// Unknown ids return model.ErrProductNotFound; stock-ceiling handling is
// the cart package's clamp contract. The bool carries cart.Add's signal
// that the cart should be surfaced to the shopper.
func (s *Store) AddToCart(productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product model.Product
	found := false
	for _, p := range s.products {
		if p.ID == productID {
			product = p
			found = true
			break
		}
	}
	if !found {
		return false, model.ErrProductNotFound
	}

	var visible bool
	s.items, visible = cart.Add(s.items, product)
	s.logger.Debug().Str("product_id", productID).Int("cart_size", len(s.items)).Msg("product added to cart")
	return visible, nil
}

// RemoveFromCart deletes the cart entry for the given product id.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = cart.Remove(s.items, productID)
}

// AdjustCartQuantity shifts the cart quantity of the given product by
// delta, clamped to [1, stock].
func (s *Store) AdjustCartQuantity(productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = cart.AdjustQuantity(s.items, productID, delta)
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// Orders returns a copy of the order history, most recent first.
func (s *Store) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// PrependOrder inserts an order at the head of the history.
func (s *Store) PrependOrder(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Order, 0, len(s.orders)+1)
	next = append(next, order)
	next = append(next, s.orders...)
	s.orders = next
}
