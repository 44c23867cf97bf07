package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"skate/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order service: a header (customer, status,
// delivery address, price) together with the line items it owns.
//
// Order follows these invariants:
//   - The identifier is assigned by storage on insert and never changes afterwards
//   - Status is one of the defined statuses
//   - Address is not empty
//   - Price is not negative
//   - Every item was created through NewItem
//
// An order built by NewOrder has ID 0 until it is persisted; 0 never identifies
// a stored order.
type Order struct {
	// id is the storage-generated identifier (0 for unsaved orders)
	id int64

	// customerID references the customer who placed the order
	customerID int64

	// status is the current lifecycle stage
	status Status

	// address is the free-text delivery destination
	address string

	// price is the order total in minor currency units
	price int64

	// items are the order lines in submission order
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an unsaved order from client-supplied values.
//
// Example:
//
//	item, _ := order.NewItem(456, 2, 500, 1000)
//	o, err := order.NewOrder(123, order.Completed, "123 Main St", 1000, []order.Item{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerID int64, status Status, address string, price int64, items []Item) (*Order, error) {
	o := &Order{
		customerID:    customerID,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setStatus(status),
		o.setAddress(address),
		o.setPrice(price),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. Values are trusted as stored; the
// status has already been normalized by StatusFromCode.
func RestoreOrder(id, customerID int64, status Status, address string, price int64, items []Item) *Order {
	if items == nil {
		items = []Item{}
	}
	return &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		address:       address,
		price:         price,
		items:         items,
		isConstructed: true,
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two persisted orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the storage-generated identifier, 0 before the order is saved.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Status returns the current lifecycle stage.
func (o *Order) Status() Status {
	return o.status
}

// Address returns the delivery destination.
func (o *Order) Address() string {
	return o.address
}

// Price returns the order total in minor currency units.
func (o *Order) Price() int64 {
	return o.price
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, int64(math.MaxInt64))
	}
	o.price = price
	return nil
}

func (o *Order) setItems(items []Item) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
