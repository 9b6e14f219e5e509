package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders along with
// their item lines.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	// Returns a conflict error when the order's table already has an
	// open tab.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all of its item lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by id while locking its row for the
	// duration of the surrounding transaction. Commands that mutate the
	// order must load it through this method so concurrent transitions
	// serialize on the row lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemForUpdate retrieves the order that owns the given item
	// line, locking the order row. Returns a not-found error when no
	// order holds the item.
	GetByItemForUpdate(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// HasOpenOrderForTable reports whether the table already has a tab in
	// Active or Ready status.
	HasOpenOrderForTable(ctx context.Context, tableNumber kernel.TableNumber) (bool, error)

	// Purge permanently deletes an order and its item lines.
	// Manager-only operation; the lifecycle transitions never delete rows.
	Purge(ctx context.Context, id kernel.UUID) error
}
