package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrGetCurrentSessionQueryIsNotConstructed = errors.New(
	"GetCurrentSessionQuery must be created via NewGetCurrentSessionQuery constructor",
)

// GetCurrentSessionQuery retrieves a waiter's session for a calendar date.
type GetCurrentSessionQuery struct {
	waiterID kernel.UUID
	date     time.Time

	guard guard.ConstructorGuard
}

// NewGetCurrentSessionQuery creates a query for the given waiter and date.
// The date's time-of-day component is ignored.
func NewGetCurrentSessionQuery(waiterID kernel.UUID, date time.Time) (GetCurrentSessionQuery, error) {
	if err := waiterID.Validate(); err != nil {
		return GetCurrentSessionQuery{}, err
	}
	if date.IsZero() {
		return GetCurrentSessionQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetCurrentSessionQuery{
		waiterID: waiterID,
		date:     date,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// WaiterID returns the waiter whose session is requested.
func (q GetCurrentSessionQuery) WaiterID() kernel.UUID {
	return q.waiterID
}

// Date returns the requested calendar date.
func (q GetCurrentSessionQuery) Date() time.Time {
	return q.date
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentSessionQueryIsNotConstructed)
}

// SessionResponse is a waiter's working day as served to clients.
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	WaiterID  uuid.UUID `json:"waiter_id"`
	Date      time.Time `json:"date"`
	StartedAt time.Time `json:"started_at"`
}
