package order

import (
	"errors"
	"math"

	"skate/internal/pkg/errs"
	"skate/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one product line of an order. It has no identity of its own: items
// belong to exactly one order and are stored and removed together with it.
//
// TotalPrice is expected to equal Quantity * UnitPrice, but the value is kept as
// supplied by the caller.
type Item struct {
	productID  int64
	quantity   int
	unitPrice  int64
	totalPrice int64

	guard guard.ConstructorGuard
}

// NewItem creates a line item. Quantity must be positive, prices must not be negative.
func NewItem(productID int64, quantity int, unitPrice, totalPrice int64) (Item, error) {
	item := Item{
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: totalPrice,
		guard:      guard.NewConstructorGuard(),
	}

	var validationErrs []error
	if quantity < 1 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32))
	}
	if unitPrice < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("unit_price", unitPrice, 0, int64(math.MaxInt64)))
	}
	if totalPrice < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("total_price", totalPrice, 0, int64(math.MaxInt64)))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem rebuilds a persisted item without validation.
func RestoreItem(productID int64, quantity int, unitPrice, totalPrice int64) Item {
	return Item{
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: totalPrice,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the item was built through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID references the ordered product in the product service.
func (i Item) ProductID() int64 {
	return i.productID
}

// Quantity is the number of units ordered, at least 1.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice is the price of one unit in minor currency units.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// TotalPrice is the line total as supplied by the caller.
func (i Item) TotalPrice() int64 {
	return i.totalPrice
}
