package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/session"
)

// StartSessionCommandHandler handles the start of a waiter's working day.
type StartSessionCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewStartSessionCommandHandler creates a handler for session starts.
// Requires a SessionUoWFactory for transactional persistence.
func NewStartSessionCommandHandler(uowFactory SessionUoWFactory) StartSessionCommandHandler {
	return StartSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. The session is keyed by waiter and calendar
// date; repeated starts on the same day refresh the start time.
func (h *StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	date := now.Truncate(24 * time.Hour)

	aggregate, err := session.NewSession(cmd.SessionID(), cmd.WaiterID(), date, now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Upsert(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
