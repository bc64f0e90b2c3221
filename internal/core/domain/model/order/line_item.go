package order

import (
	"errors"

	"foodrush/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a snapshot of one ordered position: dish name, unit price,
// quantity, and the subtotal computed by the caller. The order stores line
// items as an opaque structured blob; they are never normalized into rows of
// their own and never recomputed after creation.
type LineItem struct {
	name     string
	price    float64
	quantity int
	subtotal float64

	isConstructed bool
}

// NewLineItem creates a validated line item. The subtotal is taken as given;
// the order's monetary total is an independent scalar and is not derived from
// line items.
func NewLineItem(name string, price float64, quantity int, subtotal float64) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("line item name")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("line item quantity", quantity, 1, int(^uint(0)>>1))
	}

	return LineItem{
		name:          name,
		price:         price,
		quantity:      quantity,
		subtotal:      subtotal,
		isConstructed: true,
	}, nil
}

// Validate ensures the line item was created via NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// Name returns the dish name.
func (li LineItem) Name() string {
	return li.name
}

// Price returns the unit price.
func (li LineItem) Price() float64 {
	return li.price
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns the caller-computed subtotal for this line.
func (li LineItem) Subtotal() float64 {
	return li.subtotal
}
