// Package sessionrepo persists waiter daily sessions.
package sessionrepo

import (
	"time"

	"github.com/google/uuid"

	"tableside/internal/core/domain/model/session"
)

// SessionDTO represents one daily-session row. The unique index on waiter
// and date enforces at most one session per waiter per calendar day.
type SessionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	WaiterID  uuid.UUID `gorm:"type:uuid;index:idx_sessions_waiter_date,unique"`
	Date      time.Time `gorm:"type:date;index:idx_sessions_waiter_date,unique"`
	StartedAt time.Time
}

// TableName specifies the database table name for daily sessions.
func (SessionDTO) TableName() string {
	return "daily_sessions"
}

// fromDomain converts a session to its database representation.
func fromDomain(aggregate *session.Session) SessionDTO {
	return SessionDTO{
		ID:        aggregate.ID().Bytes(),
		WaiterID:  aggregate.WaiterID().Bytes(),
		Date:      aggregate.Date(),
		StartedAt: aggregate.StartedAt(),
	}
}
