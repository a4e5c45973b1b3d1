package models

// CartLine - a product plus how many units the customer is buying.
// Quantity is always a positive integer while the line exists; any
// operation that would push it to zero or below removes the line.
type CartLine struct {
	Product  Product `json:"product"` // Snapshot taken from the catalog at add-time
	Quantity int     `json:"quantity"`
}

// Cart - the in-progress transaction. At most one line per product id.
// Owned exclusively by the active session; discarded on checkout
// completion, void, or logout.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add puts one unit of the product into the cart. If a line for this
// product already exists its quantity goes up by 1, otherwise a new
// line with quantity 1 is appended. Always succeeds: the cart does not
// check stock at add-time, only checkout clamps.
func (c *Cart) Add(p Product) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// AdjustQuantity adds delta (positive or negative) to an existing
// line's quantity. A result of zero or below removes the line.
// No-op if the product is not in the cart.
func (c *Cart) AdjustQuantity(productID uint, delta int) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines[i].Quantity += delta
			if c.Lines[i].Quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			}
			return
		}
	}
}

// SetQuantity replaces a line's quantity outright (the quantity-edit
// modal path). A non-positive quantity means "remove item".
// No-op if the product is not in the cart.
func (c *Cart) SetQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line for productID if present; no-op otherwise.
func (c *Cart) Remove(productID uint) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Used on void, logout, and after a
// successful checkout.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Snapshot copies the current lines into immutable sale items.
func (c *Cart) Snapshot() []SaleItem {
	items := make([]SaleItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, SaleItem{
			ProductID:   line.Product.ID,
			Name:        line.Product.Name,
			Quantity:    line.Quantity,
			PriceAtSale: line.Product.Price,
		})
	}
	return items
}
