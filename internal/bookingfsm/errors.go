package bookingfsm

import "errors"

// ErrTransitionNotAllowed is returned when the target status is not reachable
// from the current one.
var ErrTransitionNotAllowed = errors.New("bookingfsm: transition not allowed")
