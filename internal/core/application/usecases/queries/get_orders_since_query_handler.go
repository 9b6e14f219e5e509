package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersSinceQueryHandler loads recent orders of every status from the
// database.
type GetOrdersSinceQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersSinceQueryHandler creates a handler for recent-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersSinceQueryHandler(db *gorm.DB) GetOrdersSinceQueryHandler {
	return GetOrdersSinceQueryHandler{db: db}
}

// Handle executes the query. Orders come back sorted by creation time with
// their item lines attached.
func (h GetOrdersSinceQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersSinceQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrders(ctx, h.db, "o.created_at >= ?", query.Since())
}
