package bookingfsm

import (
	"context"
	"database/sql"
)

// Status constants used by the booking state machine.
const (
	StatusRequested = "requested"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var transitions = map[string]map[string]struct{}{
	StatusRequested: {StatusAccepted: {}, StatusCancelled: {}},
	StatusAccepted:  {StatusCompleted: {}, StatusCancelled: {}},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsValidStatus reports whether s is one of the four booking statuses.
func IsValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition returns whether a booking can move from the current status to
// the target status. Terminal statuses accept no transition, including to
// themselves.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Apply updates a booking status using optimistic validation: the write is
// conditional on the status the caller read, so a concurrent transition on
// the same booking makes the update affect zero rows instead of clobbering.
func Apply(ctx context.Context, db *sql.DB, bookingID, fromStatus, toStatus string) error {
	if !CanTransition(fromStatus, toStatus) {
		return ErrTransitionNotAllowed
	}
	res, err := db.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ? AND status = ?`, toStatus, bookingID, fromStatus)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
