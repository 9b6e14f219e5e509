// Package session contains the daily-session entity: one row per waiter per
// calendar day, recording when the waiter started working. Orders may carry an
// optional reference to the session they were opened under.
package session

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// ErrSessionIsNotConstructed is returned when a Session instance was not
// created through the NewSession or RestoreSession factory methods.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is a waiter's working day. At most one session exists per waiter per
// date; starting an already-started session refreshes its start time.
type Session struct {
	id        kernel.UUID
	waiterID  kernel.UUID
	date      time.Time
	startedAt time.Time

	isConstructed bool
}

// NewSession creates a session for the given waiter and calendar date.
// The date is truncated to its day component by the storage layer.
func NewSession(id kernel.UUID, waiterID kernel.UUID, date time.Time, startedAt time.Time) (*Session, error) {
	if err := errors.Join(id.Validate(), waiterID.Validate()); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}
	if startedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("startedAt")
	}

	return &Session{
		id:            id,
		waiterID:      waiterID,
		date:          date,
		startedAt:     startedAt,
		isConstructed: true,
	}, nil
}

// RestoreSession reconstructs a Session from persistence.
func RestoreSession(id kernel.UUID, waiterID kernel.UUID, date time.Time, startedAt time.Time) (*Session, error) {
	return NewSession(id, waiterID, date, startedAt)
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// WaiterID returns the waiter this session belongs to.
func (s *Session) WaiterID() kernel.UUID {
	return s.waiterID
}

// Date returns the calendar date of the session.
func (s *Session) Date() time.Time {
	return s.date
}

// StartedAt returns when the session was started or last restarted.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}
