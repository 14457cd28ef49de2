package models

import (
	"testing"

	"gopkg.in/go-playground/assert.v1"
)

func burger() CartItem {
	return CartItem{Menu_id: "m1", Name: "Burger", Unit_price: 150}
}

func fries() CartItem {
	return CartItem{Menu_id: "m2", Name: "Fries", Unit_price: 80}
}

func TestCartAddItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(burger())
	cart.AddItem(fries())

	items := cart.Items()
	assert.Equal(t, len(items), 2)
	assert.Equal(t, items[0].Quantity, 1)
	assert.Equal(t, items[1].Quantity, 1)
}

func TestCartAddItemIncrementsExisting(t *testing.T) {
	cart := NewCart()
	cart.AddItem(burger())
	cart.AddItem(burger())

	items := cart.Items()
	assert.Equal(t, len(items), 1)
	assert.Equal(t, items[0].Quantity, 2)

	// Adding twice must equal one add followed by an absolute set to 2.
	other := NewCart()
	other.AddItem(burger())
	other.UpdateQuantity("m1", 2)
	assert.Equal(t, other.Items()[0].Quantity, items[0].Quantity)
	assert.Equal(t, other.TotalAmount(), cart.TotalAmount())
}

func TestCartTotalAmount(t *testing.T) {
	cart := NewCart()
	cart.AddItem(burger())
	cart.AddItem(burger())
	cart.AddItem(fries())

	assert.Equal(t, cart.TotalAmount(), 150.0*2+80.0)

	cart.UpdateQuantity("m2", 3)
	assert.Equal(t, cart.TotalAmount(), 150.0*2+80.0*3)

	cart.RemoveItem("m1")
	assert.Equal(t, cart.TotalAmount(), 80.0*3)
}

func TestCartTotalItemCountIsDistinctEntries(t *testing.T) {
	cart := NewCart()
	cart.AddItem(burger())
	cart.AddItem(fries())
	cart.UpdateQuantity("m1", 3)
	cart.UpdateQuantity("m2", 3)

	// Two dishes at quantity 3 each count as 2, not 6.
	assert.Equal(t, cart.TotalItemCount(), 2)
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	cart := NewCart()
	cart.AddItem(burger())

	cart.UpdateQuantity("m1", 0)
	assert.Equal(t, cart.TotalItemCount(), 0)

	cart.AddItem(burger())
	cart.UpdateQuantity("m1", -2)
	assert.Equal(t, cart.TotalItemCount(), 0)

	// Removing an entry that is already gone is a no-op.
	cart.RemoveItem("m1")
	assert.Equal(t, cart.TotalItemCount(), 0)
	assert.Equal(t, cart.TotalAmount(), 0.0)
}

func TestCartUpdateQuantityAbsoluteSet(t *testing.T) {
	cart := NewCart()
	cart.AddItem(burger())
	cart.UpdateQuantity("m1", 5)
	cart.UpdateQuantity("m1", 2)

	assert.Equal(t, cart.Items()[0].Quantity, 2)
}

func TestCartUpdateQuantityUnknownIdIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(burger())
	cart.UpdateQuantity("nope", 7)

	assert.Equal(t, cart.TotalItemCount(), 1)
	assert.Equal(t, cart.Items()[0].Quantity, 1)
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(burger())
	cart.AddItem(fries())
	cart.Clear()

	assert.Equal(t, cart.TotalItemCount(), 0)
	assert.Equal(t, cart.TotalAmount(), 0.0)
	assert.Equal(t, len(cart.Items()), 0)
}
