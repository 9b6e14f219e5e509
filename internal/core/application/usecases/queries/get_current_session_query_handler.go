package queries

import (
	"context"
	"time"

	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCurrentSessionQueryHandler loads a waiter's session for a date from the
// database.
type GetCurrentSessionQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentSessionQueryHandler creates a handler for session lookups.
// Requires a GORM database connection for query execution.
func NewGetCurrentSessionQueryHandler(db *gorm.DB) GetCurrentSessionQueryHandler {
	return GetCurrentSessionQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when the waiter has no
// session on the requested date.
func (h GetCurrentSessionQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentSessionQuery,
) (SessionResponse, error) {
	if err := query.Validate(); err != nil {
		return SessionResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			waiter_id,
			date,
			started_at
		FROM daily_sessions
		WHERE waiter_id = ? AND date = ?
	`, query.WaiterID().Bytes(), query.Date().Truncate(24*time.Hour)).Rows()
	if err != nil {
		return SessionResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return SessionResponse{}, err
		}
		return SessionResponse{}, errs.NewObjectNotFoundError("waiterId", query.WaiterID().String())
	}

	var resp SessionResponse
	err = rows.Scan(&resp.ID, &resp.WaiterID, &resp.Date, &resp.StartedAt)
	if err != nil {
		return SessionResponse{}, err
	}

	return resp, nil
}
