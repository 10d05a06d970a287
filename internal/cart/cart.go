// Package cart implements the shopping cart aggregation model: an ordered
// collection of line items merged by product identity, with derived totals.
//
// A Cart is plain single-writer state. It performs no I/O and no locking;
// callers that share a cart across goroutines must serialize access (the
// HTTP layer does so through a read-modify-write cycle against a Store).
package cart

import "github.com/go-faster/errors"

// Sentinel errors for cart operations.
var (
	// ErrInvalidOperation is returned for contract violations: a non-positive
	// quantity or negative unit price passed to AddItem.
	ErrInvalidOperation = errors.New("invalid cart operation")

	// ErrItemNotFound is returned by UpdateQuantity when the product has no
	// line in the cart. It signals a caller logic error, not a transient
	// condition.
	ErrItemNotFound = errors.New("cart item not found")
)

// LineItem is one aggregated cart entry for a single product. UnitPrice is in
// minor currency units.
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// LineTotal returns UnitPrice * Quantity.
func (li LineItem) LineTotal() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// Cart holds at most one LineItem per product ID, in insertion order.
// Insertion order is preserved for display; it does not affect totals.
type Cart struct {
	items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Restore builds a cart from previously captured line items, preserving their
// order. The input slice is copied.
func Restore(items []LineItem) *Cart {
	c := &Cart{items: make([]LineItem, len(items))}
	copy(c.items, items)
	return c
}

// AddItem merges a product into the cart by identity. An existing line for
// the product has quantity added to it (accumulated, not overwritten) and its
// name, image, and unit price refreshed to the values passed in; otherwise a
// new line is appended.
func (c *Cart) AddItem(productID, name, image string, unitPrice int64, quantity int) error {
	if quantity < 1 {
		return errors.Wrap(ErrInvalidOperation, "quantity must be at least 1")
	}
	if unitPrice < 0 {
		return errors.Wrap(ErrInvalidOperation, "unit price must not be negative")
	}

	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity += quantity
		c.items[i].Name = name
		c.items[i].Image = image
		c.items[i].UnitPrice = unitPrice
		return nil
	}

	c.items = append(c.items, LineItem{
		ProductID: productID,
		Name:      name,
		Image:     image,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
	return nil
}

// UpdateQuantity sets a line's quantity directly. A quantity of zero or less
// removes the line, making UpdateQuantity(id, 0) equivalent to RemoveItem(id).
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	i := c.indexOf(productID)
	if i < 0 {
		return errors.Wrapf(ErrItemNotFound, "product %s", productID)
	}

	if quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return nil
	}
	c.items[i].Quantity = quantity
	return nil
}

// RemoveItem removes the line for the product. Removing an absent product is
// a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
}

// Subtotal returns the sum of line totals; zero for an empty cart.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, li := range c.items {
		total += li.LineTotal()
	}
	return total
}

// ItemCount returns the total number of units across all lines, not the
// number of distinct lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, li := range c.items {
		count += li.Quantity
	}
	return count
}

// Items returns a copy of the line items in insertion order. Mutating the
// returned slice does not affect the cart.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
