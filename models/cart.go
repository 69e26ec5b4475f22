package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidIndex = errors.New("cart index out of range")

// CartLine is one product+customization entry. Two lines with the same
// product but different customization (and therefore a different Name) are
// distinct entries.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered set of line items for one browsing session. The total
// is always derived from the lines, never tracked separately.
type Cart struct {
	Items []CartLine `json:"items"`
}

// AddLine merges into an existing line when (productID, name) matches,
// otherwise appends a new line with quantity 1.
func (c *Cart) AddLine(productID, name string, unitPrice decimal.Decimal) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Name == name {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartLine{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrInvalidIndex
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// DecrementLine lowers the quantity of the first line matching productID;
// the line is removed, not zeroed, when the quantity would reach 0.
func (c *Cart) DecrementLine(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity--
			if c.Items[i].Quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Items {
		total = total.Add(l.Subtotal())
	}
	return total
}

// JoinedProductIDs renders the legacy Product_id order column, e.g.
// "IC1, IC2".
func (c *Cart) JoinedProductIDs() string {
	ids := make([]string, 0, len(c.Items))
	for _, l := range c.Items {
		ids = append(ids, l.ProductID)
	}
	return strings.Join(ids, ", ")
}

// Summary renders the legacy list_of_orders column, e.g.
// "Waco Milktea (16oz) x2, Classic Waffle x1".
func (c *Cart) Summary() string {
	parts := make([]string, 0, len(c.Items))
	for _, l := range c.Items {
		parts = append(parts, fmt.Sprintf("%s x%d", l.Name, l.Quantity))
	}
	return strings.Join(parts, ", ")
}
