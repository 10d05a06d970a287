package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem_NewLine(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem("p1", "HP X", "hp-x.jpg", 50000, 1))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, int64(50000), items[0].UnitPrice)
}

func TestAddItem_MergesByProductID(t *testing.T) {
	c := New()

	// Three separate adds of the same product collapse into one line.
	for range 3 {
		require.NoError(t, c.AddItem("p1", "HP X", "hp-x.jpg", 50000, 1))
	}

	require.Equal(t, 1, c.Len())
	items := c.Items()
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(150000), items[0].LineTotal())
}

func TestAddItem_AccumulatesQuantityAndRefreshesFields(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem("p1", "HP X", "old.jpg", 50000, 1))
	require.NoError(t, c.AddItem("p1", "HP X (2026)", "new.jpg", 45000, 2))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "HP X (2026)", items[0].Name)
	assert.Equal(t, "new.jpg", items[0].Image)
	assert.Equal(t, int64(45000), items[0].UnitPrice)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem("p2", "Dell Y", "", 150000, 1))
	require.NoError(t, c.AddItem("p1", "HP X", "", 50000, 1))
	require.NoError(t, c.AddItem("p2", "Dell Y", "", 150000, 1))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.Equal(t, "p1", items[1].ProductID)
}

func TestAddItem_InvalidInput(t *testing.T) {
	c := New()

	require.ErrorIs(t, c.AddItem("p1", "HP X", "", 50000, 0), ErrInvalidOperation)
	require.ErrorIs(t, c.AddItem("p1", "HP X", "", 50000, -2), ErrInvalidOperation)
	require.ErrorIs(t, c.AddItem("p1", "HP X", "", -1, 1), ErrInvalidOperation)
	assert.Zero(t, c.Len())
}

func TestUpdateQuantity_SetsDirectly(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("p1", "HP X", "", 50000, 5))

	require.NoError(t, c.UpdateQuantity("p1", 2))

	assert.Equal(t, 2, c.Items()[0].Quantity)
	assert.Equal(t, int64(100000), c.Subtotal())
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("p1", "HP X", "", 50000, 2))

	require.NoError(t, c.UpdateQuantity("p1", 0))

	assert.Zero(t, c.Len())
	assert.Zero(t, c.Subtotal())
}

func TestUpdateQuantity_Missing(t *testing.T) {
	c := New()

	require.ErrorIs(t, c.UpdateQuantity("ghost", 1), ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("p1", "HP X", "", 50000, 1))
	require.NoError(t, c.AddItem("p2", "Dell Y", "", 150000, 1))

	c.RemoveItem("p1")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	// Removing an absent product is a no-op.
	c.RemoveItem("ghost")
	assert.Equal(t, 1, c.Len())
}

func TestUpdateQuantityZero_EquivalentToRemove(t *testing.T) {
	viaUpdate := New()
	require.NoError(t, viaUpdate.AddItem("p1", "HP X", "", 50000, 3))
	require.NoError(t, viaUpdate.UpdateQuantity("p1", 0))

	viaRemove := New()
	require.NoError(t, viaRemove.AddItem("p1", "HP X", "", 50000, 3))
	viaRemove.RemoveItem("p1")

	assert.Equal(t, viaRemove.Items(), viaUpdate.Items())
	assert.Zero(t, viaUpdate.Len())
}

func TestClear(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("p1", "HP X", "", 50000, 1))
	require.NoError(t, c.AddItem("p2", "Dell Y", "", 150000, 2))

	c.Clear()

	assert.Zero(t, c.Len())
	assert.Zero(t, c.Subtotal())
	assert.Zero(t, c.ItemCount())
}

// Subtotal must equal the sum over lines after every mutation.
func TestSubtotalInvariant(t *testing.T) {
	c := New()

	check := func() {
		var want int64
		for _, li := range c.Items() {
			want += li.UnitPrice * int64(li.Quantity)
		}
		assert.Equal(t, want, c.Subtotal())
	}

	require.NoError(t, c.AddItem("p1", "HP X", "", 50000, 1))
	check()
	require.NoError(t, c.AddItem("p2", "Dell Y", "", 150000, 2))
	check()
	require.NoError(t, c.AddItem("p1", "HP X", "", 48000, 1))
	check()
	require.NoError(t, c.UpdateQuantity("p2", 1))
	check()
	c.RemoveItem("p1")
	check()
	c.Clear()
	check()
}

func TestItemCount_CountsUnits(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("p1", "HP X", "", 50000, 2))
	require.NoError(t, c.AddItem("p2", "Dell Y", "", 150000, 3))

	assert.Equal(t, 5, c.ItemCount())
	assert.Equal(t, 2, c.Len())
}

func TestItems_ReturnsCopy(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem("p1", "HP X", "", 50000, 1))

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestRestore_PreservesOrder(t *testing.T) {
	src := []LineItem{
		{ProductID: "p2", Name: "Dell Y", UnitPrice: 150000, Quantity: 1},
		{ProductID: "p1", Name: "HP X", UnitPrice: 50000, Quantity: 2},
	}

	c := Restore(src)

	assert.Equal(t, src, c.Items())
	assert.Equal(t, int64(250000), c.Subtotal())

	// The restored cart owns its own copy of the lines.
	src[0].Quantity = 9
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

// Worked example: add one, then two more of the same laptop.
func TestMergeScenario(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem("1", "HP X", "hp.jpg", 50000, 1))
	require.NoError(t, c.AddItem("1", "HP X", "hp.jpg", 50000, 2))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(150000), items[0].LineTotal())
	assert.Equal(t, int64(150000), c.Subtotal())
	assert.Equal(t, 3, c.ItemCount())
}
