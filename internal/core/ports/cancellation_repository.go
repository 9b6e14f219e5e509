package ports

import (
	"context"

	"tableside/internal/core/domain/model/cancellation"
	"tableside/internal/core/domain/model/kernel"
)

// CancellationRepository defines the persistence contract for the
// append-only cancellation ledger.
type CancellationRepository interface {
	// Add appends a ledger record. Records are immutable; there is no
	// update operation.
	Add(ctx context.Context, record *cancellation.Record) error

	// PurgeByOrder permanently deletes all ledger records for an order.
	// Used only when a manager purges the order itself.
	PurgeByOrder(ctx context.Context, orderID kernel.UUID) error
}
