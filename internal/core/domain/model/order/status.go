package order

import (
	"fmt"

	"skate/internal/pkg/errs"
)

// Status represents the lifecycle stage of an order.
//
// Statuses are persisted by their ordinal code, so the numeric values below are
// part of the storage format and must never be reordered:
//
//	Processing(0) -> Accepted(1) -> Assembly(2) -> InProgress(3) -> Completed(4)
//	                                                              \-> Cancelled(5)
//
// The service does not enforce transitions between statuses; any status may be
// written by an update.
type Status int

const (
	// Processing is the initial status of a freshly submitted order.
	Processing Status = iota

	// Accepted indicates the order was confirmed by the shop.
	Accepted

	// Assembly indicates the order is being packed.
	Assembly

	// InProgress indicates a courier is delivering the order.
	InProgress

	// Completed indicates the order was delivered.
	Completed

	// Cancelled indicates the order was cancelled. It is also the fallback for
	// unknown status codes read from storage.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Processing: "Processing",
		Accepted:   "Accepted",
		Assembly:   "Assembly",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Statuses returns every defined status in ordinal order.
func Statuses() []Status {
	return []Status{Processing, Accepted, Assembly, InProgress, Completed, Cancelled}
}

// StatusFromCode decodes a stored ordinal. It is total: codes outside the
// defined range decode to Cancelled so that malformed or future data never
// aborts a read.
//
// Example:
//
//	order.StatusFromCode(4)  // Completed
//	order.StatusFromCode(42) // Cancelled
func StatusFromCode(code int) Status {
	s := Status(code)
	if s.Validate() != nil {
		return Cancelled
	}
	return s
}

// ParseStatus converts a status name ("Processing", "Completed", ...) into a Status.
// Unlike StatusFromCode it rejects unknown names, since they come from clients.
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// Code returns the ordinal used in storage.
func (s Status) Code() int {
	return int(s)
}

// String returns the status name, or "Unknown" for undefined values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
