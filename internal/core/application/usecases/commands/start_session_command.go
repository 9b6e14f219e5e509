package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand represents a waiter starting their working day.
// Starting an already-started day refreshes the session's start time rather
// than creating a second session.
type StartSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	waiterID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartSessionCommand creates a command to start a waiter's session.
// The session id is used only when no session exists yet for the day.
func NewStartSessionCommand(sessionID kernel.UUID, waiterID kernel.UUID) (StartSessionCommand, error) {
	cmd := StartSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setWaiterID(waiterID),
	); err != nil {
		return StartSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartSessionCommandIsNotConstructed if validation fails.
func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

// SessionID returns the id for a newly created session.
func (c StartSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// WaiterID returns the waiter starting the day.
func (c StartSessionCommand) WaiterID() kernel.UUID {
	return c.waiterID
}

func (c *StartSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *StartSessionCommand) setWaiterID(waiterID kernel.UUID) error {
	if err := waiterID.Validate(); err != nil {
		return err
	}

	c.waiterID = waiterID
	return nil
}
