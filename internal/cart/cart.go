// Package cart implements the pure cart transformation functions. Every
// operation sanitises its input by clamping or no-op rather than returning
// an error; callers never need to handle a cart mutation failure.
package cart

import "plastic-world/internal/model"

// Add returns a new cart with one more unit of product. If the product is
// already present below its stock ceiling, its quantity is incremented; at
// the ceiling the cart is returned unchanged. An absent product is inserted
// with quantity 1. The returned bool signals that the cart should be shown
// to the user (it is true on every call).
func Add(items []model.CartItem, product model.Product) ([]model.CartItem, bool) {
	for i, item := range items {
		if item.ID != product.ID {
			continue
		}

		next := copyItems(items)
		if item.CartQuantity < product.Quantity {
			next[i].CartQuantity++
		}
		return next, true
	}

	next := copyItems(items)
	next = append(next, model.CartItem{Product: product, CartQuantity: 1})
	return next, true
}

// Remove returns a new cart without the item matching productID. Removing
// an absent product is a no-op.
func Remove(items []model.CartItem, productID string) []model.CartItem {
	next := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// AdjustQuantity returns a new cart with the matching item's quantity
// shifted by delta, clamped to [1, stock]. The item is never removed, no
// matter how negative delta is; an unknown productID is a no-op.
func AdjustQuantity(items []model.CartItem, productID string, delta int) []model.CartItem {
	next := copyItems(items)
	for i, item := range next {
		if item.ID == productID {
			next[i].CartQuantity = clamp(item.CartQuantity+delta, 1, item.Quantity)
			break
		}
	}
	return next
}

// Total returns the sum of unit price times cart quantity over all items.
// The total of an empty cart is 0.
func Total(items []model.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.CartQuantity)
	}
	return total
}

// Count returns the number of units across all items.
func Count(items []model.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.CartQuantity
	}
	return count
}

func copyItems(items []model.CartItem) []model.CartItem {
	next := make([]model.CartItem, len(items))
	copy(next, items)
	return next
}

// clamp bounds v to [lo, hi], with the floor winning when the range is
// empty (hi < lo): a zero-stock item still keeps a cart quantity of 1.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
