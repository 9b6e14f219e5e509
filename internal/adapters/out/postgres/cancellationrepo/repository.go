package cancellationrepo

import (
	"context"

	"gorm.io/gorm"

	"tableside/internal/core/domain/model/cancellation"
	"tableside/internal/core/domain/model/kernel"
)

// GormCancellationRepository implements CancellationRepository using GORM.
// The ledger is append-only: rows are never updated, and they are deleted
// only when a manager purges the owning order.
type GormCancellationRepository struct {
	db *gorm.DB
}

// NewGormCancellationRepository creates a new GORM cancellation ledger repository.
func NewGormCancellationRepository(db *gorm.DB) *GormCancellationRepository {
	return &GormCancellationRepository{db: db}
}

// Add appends a ledger record.
func (r *GormCancellationRepository) Add(ctx context.Context, record *cancellation.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// PurgeByOrder permanently deletes all ledger records for an order.
func (r *GormCancellationRepository) PurgeByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RecordDTO{}, "order_id = ?", orderID.Bytes()).Error
}
