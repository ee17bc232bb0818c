package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct(id string, price float64) *Product {
	return &Product{
		ID:    id,
		Name:  "Product " + id,
		Price: price,
		Image: "https://img.example/" + id,
		Brand: "GameZone",
	}
}

func TestCartAddMergesQuantities(t *testing.T) {
	cart := NewCart()
	p := testProduct("1", 10)

	cart.Add(p, 2)
	cart.Add(p, 3)

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, cart.Count())
}

func TestCartAddSnapshotsProductFields(t *testing.T) {
	cart := NewCart()
	p := testProduct("1", 59.99)
	cart.Add(p, 1)

	// Later catalog changes do not rewrite the cart line.
	p.Price = 79.99
	p.Name = "Renamed"

	line := cart.Lines()[0]
	assert.Equal(t, 59.99, line.Price)
	assert.Equal(t, "Product 1", line.Name)
	assert.Equal(t, "GameZone", line.Brand)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 10), 0)

	assert.Equal(t, 1, cart.Count())
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 10), 2)

	cart.UpdateQuantity("1", 7)
	assert.Equal(t, 7, cart.Lines()[0].Quantity)

	// Below 1 is ignored, not a deletion.
	cart.UpdateQuantity("1", 0)
	assert.Equal(t, 7, cart.Lines()[0].Quantity)
	cart.UpdateQuantity("1", -3)
	assert.Equal(t, 7, cart.Lines()[0].Quantity)

	// Unknown ids are a no-op.
	cart.UpdateQuantity("missing", 2)
	assert.Len(t, cart.Lines(), 1)
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 10), 1)
	cart.Add(testProduct("2", 20), 1)

	cart.RemoveItem("1")
	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "2", lines[0].ID)

	cart.RemoveItem("missing")
	assert.Len(t, cart.Lines(), 1)
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 10), 4)
	cart.Add(testProduct("2", 20), 1)

	cart.Clear()
	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartDerivedTotals(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 10.50), 2)
	cart.Add(testProduct("2", 5), 3)

	assert.Equal(t, 5, cart.Count())
	assert.InDelta(t, 36.0, cart.Total(), 1e-9)

	cart.UpdateQuantity("2", 1)
	cart.RemoveItem("1")
	assert.Equal(t, 1, cart.Count())
	assert.InDelta(t, 5.0, cart.Total(), 1e-9)
}

func TestCartSnapshotIsDetached(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 10), 2)

	snap := cart.Snapshot()
	cart.Add(testProduct("2", 20), 1)
	cart.UpdateQuantity("1", 9)

	assert.Len(t, snap.Lines(), 1)
	assert.Equal(t, 2, snap.Lines()[0].Quantity)

	snap.Clear()
	assert.Equal(t, 10, cart.Count())
}

func TestCartDeductSettlesChargedLines(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 10), 2)

	charged := cart.Lines()

	// Added after the snapshot was taken.
	cart.Add(testProduct("2", 20), 1)
	cart.Add(testProduct("1", 10), 1)

	cart.Deduct(charged)
	lines := cart.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "2", lines[1].ID)
}

func TestCartDeductDropsEmptiedLines(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", 10), 2)
	cart.Add(testProduct("2", 20), 1)

	cart.Deduct(cart.Lines())
	assert.Empty(t, cart.Lines())

	// Deducting against an empty or mismatched cart is a no-op.
	cart.Deduct([]CartLine{{ID: "missing", Quantity: 3}})
	assert.Empty(t, cart.Lines())
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	for _, id := range []string{"3", "1", "2"} {
		cart.Add(testProduct(id, 1), 1)
	}

	ids := []string{}
	for _, line := range cart.Lines() {
		ids = append(ids, line.ID)
	}
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}
