package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetWaitersQueryHandler loads the waiter roster from the database.
type GetWaitersQueryHandler struct {
	db *gorm.DB
}

// NewGetWaitersQueryHandler creates a handler for waiter roster queries.
// Requires a GORM database connection for query execution.
func NewGetWaitersQueryHandler(db *gorm.DB) GetWaitersQueryHandler {
	return GetWaitersQueryHandler{db: db}
}

// Handle executes the query. Waiters come back sorted by name.
func (h GetWaitersQueryHandler) Handle(
	ctx context.Context,
	query GetWaitersQuery,
) ([]WaiterResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	waiters := make([]WaiterResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM waiters
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var waiter WaiterResponse

		err = rows.Scan(&waiter.ID, &waiter.Name)
		if err != nil {
			return nil, err
		}

		waiters = append(waiters, waiter)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return waiters, nil
}
