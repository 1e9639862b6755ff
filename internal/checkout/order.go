package checkout

import (
	"time"

	"plastic-world/internal/cart"
	"plastic-world/internal/model"

	"github.com/google/uuid"
)

// dateLayout mirrors the storefront's human-readable order timestamp.
const dateLayout = "2006/01/02, 3:04:05 PM"

// BuildOrder assembles an immutable order snapshot from the cart and the
// customer's contact details. Items are deep-copied so later catalogue
// mutation never alters the order; status is always "new". Callers are
// expected to gate on a non-empty cart.
func BuildOrder(items []model.CartItem, customer model.CustomerDetails) model.Order {
	snapshot := make([]model.CartItem, len(items))
	copy(snapshot, items)

	return model.Order{
		ID:              uuid.NewString(),
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Items:           snapshot,
		Total:           cart.Total(snapshot),
		Date:            time.Now().Format(dateLayout),
		Status:          model.StatusNew,
	}
}
