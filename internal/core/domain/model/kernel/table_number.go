package kernel

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// ErrTableNumberIsNotConstructed indicates that a TableNumber was not created
// through NewTableNumber. Returned when validating a zero-value TableNumber.
var ErrTableNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TableNumber must be created via NewTableNumber constructor",
)

// TableNumber is a value object identifying a physical table on the floor.
// Table numbers are positive integers; the zero value is invalid and must be
// constructed through NewTableNumber.
//
// At most one order with a non-terminal status may exist per table number at
// any instant. That invariant is enforced at the storage layer; TableNumber
// only guarantees that the number itself is well-formed.
//
// Example:
//
//	table, err := kernel.NewTableNumber(5)
//	if err != nil {
//	    // handle invalid table number
//	}
type TableNumber struct {
	value int
}

// NewTableNumber creates a TableNumber from a positive integer.
// Returns a validation error if the number is less than 1.
func NewTableNumber(value int) (TableNumber, error) {
	if value < 1 {
		return TableNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tableNumber",
			fmt.Errorf("%d is not a positive table number", value),
		)
	}
	return TableNumber{value: value}, nil
}

// Value returns the table number as a plain integer.
func (t TableNumber) Value() int {
	return t.value
}

// String returns the decimal representation of the table number.
func (t TableNumber) String() string {
	return fmt.Sprintf("%d", t.value)
}

// IsEqual compares two table numbers for equality.
func (t TableNumber) IsEqual(other TableNumber) bool {
	return t.value == other.value
}

// Validate checks that the TableNumber was properly constructed.
// Returns ErrTableNumberIsNotConstructed for a zero value.
func (t TableNumber) Validate() error {
	if t.value < 1 {
		return ErrTableNumberIsNotConstructed
	}
	return nil
}
