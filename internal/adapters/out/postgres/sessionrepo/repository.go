package sessionrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tableside/internal/core/domain/model/session"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Upsert stores the session. When a session already exists for the same
// waiter and date, its start time is refreshed and the stored id is kept.
func (r *GormSessionRepository) Upsert(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "waiter_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"started_at"}),
		}).
		Create(&dto).Error
}
