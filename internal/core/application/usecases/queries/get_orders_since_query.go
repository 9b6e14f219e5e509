package queries

import (
	"errors"
	"time"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrGetOrdersSinceQueryIsNotConstructed = errors.New(
	"GetOrdersSinceQuery must be created via NewGetOrdersSinceQuery constructor",
)

// DefaultKitchenWindow is how far back the kitchen display reaches when the
// caller does not narrow the range itself.
const DefaultKitchenWindow = 180 * 24 * time.Hour

// GetOrdersSinceQuery retrieves all orders created at or after the given
// time, regardless of status. The kitchen display uses it to show the full
// recent history including paid and cancelled tabs.
type GetOrdersSinceQuery struct {
	since time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersSinceQuery creates a query for orders created at or after since.
func NewGetOrdersSinceQuery(since time.Time) (GetOrdersSinceQuery, error) {
	if since.IsZero() {
		return GetOrdersSinceQuery{}, errs.NewValueIsRequiredError("since")
	}

	return GetOrdersSinceQuery{
		since: since,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Since returns the lower bound of the creation-time range.
func (q GetOrdersSinceQuery) Since() time.Time {
	return q.since
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersSinceQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSinceQueryIsNotConstructed)
}
