package models

import "sync"

type CartItem struct {
	Menu_id    string  `json:"menu_id" validate:"required"`
	Name       string  `json:"name"`
	Unit_price float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Image      *string `json:"image"`
}

// Cart accumulates an unsubmitted order's line items for one table session.
// A cart is shared by every request carrying the same session id, so all
// access goes through the mutex.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem appends the item with quantity 1, or bumps the quantity by one if
// an entry with the same menu id already exists. Insertion order is kept for
// display only.
func (c *Cart) AddItem(item CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Menu_id == item.Menu_id {
			c.items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
}

// RemoveItem deletes the entry for the menu id; absent entries are a no-op.
func (c *Cart) RemoveItem(menuId string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(menuId)
}

func (c *Cart) removeLocked(menuId string) {
	for i := range c.items {
		if c.items[i].Menu_id == menuId {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the entry's quantity outright. Zero or negative removes
// the entry.
func (c *Cart) UpdateQuantity(menuId string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.removeLocked(menuId)
		return
	}
	for i := range c.items {
		if c.items[i].Menu_id == menuId {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy for display.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) TotalAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Unit_price * float64(item.Quantity)
	}
	return total
}

// TotalItemCount counts distinct entries, not the sum of quantities. The
// cart badge in the UI shows how many different dishes are in the cart.
func (c *Cart) TotalItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
