package commands

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// ItemSpec describes one item line requested by a client: what dish, how
// many, and at what unit price. Prices arrive from the client because the
// engine captures them at ordering time rather than re-reading the menu.
type ItemSpec struct {
	Name     string
	Quantity int
	Price    float64
}

func validateItemSpecs(specs []ItemSpec) error {
	if len(specs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, spec := range specs {
		if spec.Name == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].name", i))
		}
		if spec.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not at least 1", spec.Quantity),
			)
		}
		if spec.Price < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].price", i),
				fmt.Errorf("%v is negative", spec.Price),
			)
		}
	}

	return nil
}
