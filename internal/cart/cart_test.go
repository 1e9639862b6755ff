package cart

import (
	"testing"

	"plastic-world/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price int64, stock int) model.Product {
	return model.Product{
		ID:       id,
		Name:     "منتج " + id,
		Price:    price,
		Quantity: stock,
		UnitType: model.UnitPiece,
		Image:    model.RemoteImage("https://picsum.photos/400/300"),
	}
}

func TestAdd_NewProduct(t *testing.T) {
	product := testProduct("1", 15000, 50)

	items, visible := Add(nil, product)

	assert.True(t, visible)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 1, items[0].CartQuantity)
}

func TestAdd_IncrementsUpToStockCeiling(t *testing.T) {
	product := testProduct("1", 15000, 5)

	var items []model.CartItem
	for i := 0; i < product.Quantity; i++ {
		items, _ = Add(items, product)
	}

	require.Len(t, items, 1)
	assert.Equal(t, product.Quantity, items[0].CartQuantity)

	// One more Add at the ceiling is a silent no-op.
	items, visible := Add(items, product)
	assert.True(t, visible)
	require.Len(t, items, 1)
	assert.Equal(t, product.Quantity, items[0].CartQuantity)
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	product := testProduct("1", 15000, 50)
	items, _ := Add(nil, product)
	items, _ = Add(items, product)

	before := items[0].CartQuantity
	Add(items, product)
	assert.Equal(t, before, items[0].CartQuantity)
}

func TestRemove(t *testing.T) {
	a := testProduct("1", 15000, 50)
	b := testProduct("2", 25000, 30)

	items, _ := Add(nil, a)
	items, _ = Add(items, b)

	items = Remove(items, "1")
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)

	// Removing an absent product is idempotent.
	items = Remove(items, "1")
	assert.Len(t, items, 1)
}

func TestAdjustQuantity_Clamps(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		stock    int
		delta    int
		expected int
	}{
		{name: "Increment within bounds", start: 3, stock: 50, delta: 2, expected: 5},
		{name: "Decrement within bounds", start: 3, stock: 50, delta: -2, expected: 1},
		{name: "Large negative delta clamps to floor", start: 3, stock: 50, delta: -100, expected: 1},
		{name: "Large positive delta clamps to stock", start: 3, stock: 50, delta: 1000, expected: 50},
		{name: "Zero delta is a no-op", start: 3, stock: 50, delta: 0, expected: 3},
		{name: "Zero stock keeps the floor", start: 1, stock: 0, delta: 1, expected: 1},
		{name: "Zero stock with negative delta keeps the floor", start: 1, stock: 0, delta: -5, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []model.CartItem{
				{Product: testProduct("1", 15000, tt.stock), CartQuantity: tt.start},
			}

			result := AdjustQuantity(items, "1", tt.delta)

			require.Len(t, result, 1)
			assert.Equal(t, tt.expected, result[0].CartQuantity)
			// The floor always holds; the ceiling only applies while
			// there is stock to bound against.
			assert.GreaterOrEqual(t, result[0].CartQuantity, 1)
			if tt.stock >= 1 {
				assert.LessOrEqual(t, result[0].CartQuantity, tt.stock)
			}
		})
	}
}

func TestAdjustQuantity_ZeroStockItemStaysAtFloor(t *testing.T) {
	// A product created with zero stock still enters the cart at 1; no
	// later adjustment may drive the quantity below that floor.
	product := testProduct("1", 15000, 0)
	items, _ := Add(nil, product)
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].CartQuantity)

	for _, delta := range []int{1, -1, 100, -100} {
		items = AdjustQuantity(items, "1", delta)
		assert.Equal(t, 1, items[0].CartQuantity)
	}
}

func TestAdjustQuantity_UnknownProductIsNoOp(t *testing.T) {
	items := []model.CartItem{
		{Product: testProduct("1", 15000, 50), CartQuantity: 3},
	}

	result := AdjustQuantity(items, "missing", -100)

	require.Len(t, result, 1)
	assert.Equal(t, 3, result[0].CartQuantity)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(0), Total(nil))

	items := []model.CartItem{
		{Product: testProduct("1", 15000, 50), CartQuantity: 3},
		{Product: testProduct("2", 25000, 30), CartQuantity: 2},
	}

	assert.Equal(t, int64(95000), Total(items))
}

func TestTotal_IsLinear(t *testing.T) {
	items := []model.CartItem{
		{Product: testProduct("1", 15000, 100), CartQuantity: 3},
		{Product: testProduct("2", 25000, 100), CartQuantity: 2},
		{Product: testProduct("3", 8000, 100), CartQuantity: 7},
	}

	doubled := make([]model.CartItem, len(items))
	copy(doubled, items)
	for i := range doubled {
		doubled[i].CartQuantity *= 2
	}

	assert.Equal(t, 2*Total(items), Total(doubled))
}

func TestCount(t *testing.T) {
	items := []model.CartItem{
		{Product: testProduct("1", 15000, 50), CartQuantity: 3},
		{Product: testProduct("2", 25000, 30), CartQuantity: 2},
	}

	assert.Equal(t, 5, Count(items))
	assert.Equal(t, 0, Count(nil))
}
