package queries

import (
	"errors"

	"github.com/google/uuid"

	"tableside/internal/pkg/guard"
)

var ErrGetWaitersQueryIsNotConstructed = errors.New(
	"GetWaitersQuery must be created via NewGetWaitersQuery constructor",
)

// GetWaitersQuery retrieves the waiter roster.
type GetWaitersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWaitersQuery creates a query to retrieve all waiters.
// This is a parameterless query.
func NewGetWaitersQuery() GetWaitersQuery {
	return GetWaitersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWaitersQuery) Validate() error {
	return q.guard.Validate(ErrGetWaitersQueryIsNotConstructed)
}

// WaiterResponse is one waiter on the roster.
type WaiterResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
