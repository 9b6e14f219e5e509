// Package cancellationrepo persists the append-only cancellation ledger.
package cancellationrepo

import (
	"time"

	"github.com/google/uuid"

	"tableside/internal/core/domain/model/cancellation"
)

// RecordDTO represents one ledger row. ItemID is null for full-order records.
type RecordDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	ItemID     *uuid.UUID `gorm:"type:uuid"`
	Reason     string
	CanceledBy uuid.UUID `gorm:"type:uuid"`
	CanceledAt time.Time
	Kind       string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for ledger entries.
func (RecordDTO) TableName() string {
	return "cancellations"
}

// fromDomain converts a ledger record to its database representation.
func fromDomain(record *cancellation.Record) RecordDTO {
	var itemID *uuid.UUID
	if id := record.ItemID(); id != nil {
		raw := id.Bytes()
		itemID = &raw
	}

	return RecordDTO{
		ID:         record.ID().Bytes(),
		OrderID:    record.OrderID().Bytes(),
		ItemID:     itemID,
		Reason:     record.Reason(),
		CanceledBy: record.CanceledBy().Bytes(),
		CanceledAt: record.CanceledAt(),
		Kind:       record.Kind().String(),
	}
}
