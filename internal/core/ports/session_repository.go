package ports

import (
	"context"

	"tableside/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for daily sessions.
type SessionRepository interface {
	// Upsert stores the session, refreshing the start time when a session
	// for the same waiter and date already exists.
	Upsert(ctx context.Context, aggregate *session.Session) error
}
