package model

// UnitType is the unit of measure a product is sold in.
type UnitType string

// The full set of units used by the shop.
const (
	UnitBale   UnitType = "باله"
	UnitSack   UnitType = "كونية"
	UnitCarton UnitType = "كارتونة"
	UnitSet    UnitType = "سيت"
	UnitDozen  UnitType = "درزن"
	UnitBundle UnitType = "ربطة"
	UnitPiece  UnitType = "قطعة"
)

// UnitTypes lists every valid unit, in display order.
var UnitTypes = []UnitType{
	UnitBale,
	UnitSack,
	UnitCarton,
	UnitSet,
	UnitDozen,
	UnitBundle,
	UnitPiece,
}

// DefaultUnitType is assigned to new products whose draft omits the unit.
const DefaultUnitType = UnitBale

// Valid reports whether u is one of the known unit types.
func (u UnitType) Valid() bool {
	for _, known := range UnitTypes {
		if u == known {
			return true
		}
	}
	return false
}

// Product represents a catalogue entry. Prices are in the smallest
// currency unit (Iraqi dinar). Quantity is the available stock and is
// never negative.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          int64    `json:"price"`
	WholesalePrice int64    `json:"wholesalePrice"`
	Quantity       int      `json:"quantity"`
	UnitType       UnitType `json:"unitType"`
	Image          Image    `json:"image"`
}

// CartItem is a product plus the quantity of it currently in the cart.
// CartQuantity stays within [1, Quantity]; the cart package enforces the
// bound by clamping, never by returning an error.
type CartItem struct {
	Product
	CartQuantity int `json:"cartQuantity"`
}

// CustomerDetails holds the contact details collected at checkout.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
