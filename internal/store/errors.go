package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Failure taxonomy surfaced to callers. The store never swallows an error;
// translating one into user-facing text is the caller's job.
var (
	// ErrNotFound: a lookup by id matched no row.
	ErrNotFound = errors.New("not found")

	// ErrConstraint: a write was rejected by a range, enumeration or
	// foreign-key rule.
	ErrConstraint = errors.New("constraint violation")

	// ErrCorrupt: a stored value broke a closed-set invariant. Unlike
	// ErrConstraint this indicates drift in data already at rest.
	ErrCorrupt = errors.New("data corruption")

	// ErrAccessUnavailable: the shared handle can no longer be acquired
	// (the store has been closed).
	ErrAccessUnavailable = errors.New("store access unavailable")

	// ErrSessionFinished: complete or interrupt was called on a session
	// that already carries a completion timestamp.
	ErrSessionFinished = errors.New("session already finished")
)

// wrapQuery classifies a driver error from a single read or write.
func wrapQuery(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case isConstraintErr(err):
		return fmt.Errorf("%s: %v: %w", op, err, ErrConstraint)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// isConstraintErr matches the driver's constraint-failure text; modernc
// errors carry no typed code at the database/sql level.
func isConstraintErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
