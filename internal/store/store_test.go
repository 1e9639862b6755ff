package store

import (
	"testing"

	"plastic-world/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(SeedCatalogue(), zerolog.Nop())
}

func mustAddToCart(t *testing.T, st *Store, productID string) {
	t.Helper()
	_, err := st.AddToCart(productID)
	require.NoError(t, err)
}

func TestProducts_ReturnsCopy(t *testing.T) {
	st := newTestStore(t)

	products := st.Products()
	products[0].Name = "تم التلاعب"

	assert.NotEqual(t, "تم التلاعب", st.Products()[0].Name)
}

func TestProductByID(t *testing.T) {
	st := newTestStore(t)

	product, ok := st.ProductByID("1")
	require.True(t, ok)
	assert.Equal(t, "أكياس بلاستيكية صغيرة", product.Name)

	_, ok = st.ProductByID("missing")
	assert.False(t, ok)
}

func TestReplaceProduct(t *testing.T) {
	st := newTestStore(t)
	before := st.Products()

	edited := before[2]
	edited.Price = 77000

	require.True(t, st.ReplaceProduct(edited))

	after := st.Products()
	assert.Len(t, after, len(before))
	assert.Equal(t, edited.ID, after[2].ID)
	assert.Equal(t, int64(77000), after[2].Price)

	assert.False(t, st.ReplaceProduct(model.Product{ID: "missing"}))
}

func TestPrependProduct(t *testing.T) {
	st := newTestStore(t)
	before := len(st.Products())

	st.PrependProduct(model.Product{ID: "new", Name: "جديد"})

	after := st.Products()
	require.Len(t, after, before+1)
	assert.Equal(t, "new", after[0].ID)
}

func TestRemoveProduct(t *testing.T) {
	st := newTestStore(t)
	before := len(st.Products())

	assert.True(t, st.RemoveProduct("1"))
	assert.Len(t, st.Products(), before-1)

	assert.False(t, st.RemoveProduct("1"))
	assert.Len(t, st.Products(), before-1)
}

func TestAddToCart(t *testing.T) {
	st := newTestStore(t)

	visible, err := st.AddToCart("1")
	require.NoError(t, err)
	assert.True(t, visible)

	visible, err = st.AddToCart("1")
	require.NoError(t, err)
	assert.True(t, visible)

	items := st.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].CartQuantity)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	st := newTestStore(t)

	visible, err := st.AddToCart("missing")

	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.False(t, visible)
	assert.Empty(t, st.CartItems())
}

func TestAdjustCartQuantity(t *testing.T) {
	st := newTestStore(t)
	mustAddToCart(t, st, "1")

	st.AdjustCartQuantity("1", -100)

	items := st.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].CartQuantity)
}

func TestClearCart(t *testing.T) {
	st := newTestStore(t)
	mustAddToCart(t, st, "1")
	mustAddToCart(t, st, "2")

	st.ClearCart()

	assert.Empty(t, st.CartItems())
}

func TestPrependOrder(t *testing.T) {
	st := newTestStore(t)

	st.PrependOrder(model.Order{ID: "a"})
	st.PrependOrder(model.Order{ID: "b"})

	orders := st.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "b", orders[0].ID)
	assert.Equal(t, "a", orders[1].ID)
}

func TestSeedCatalogue(t *testing.T) {
	seed := SeedCatalogue()

	require.Len(t, seed, 6)
	for _, p := range seed {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.UnitType.Valid())
		assert.GreaterOrEqual(t, p.Quantity, 0)
	}
}
