package match

import "errors"

// ErrNotFound is returned when no match exists for the requested id
var ErrNotFound = errors.New("match not found")

// ErrInvalidRequest is returned when a request fails validation
var ErrInvalidRequest = errors.New("invalid request")

// ErrTimerAlreadyRunning is returned when starting a timer that is running
var ErrTimerAlreadyRunning = errors.New("timer already running")

// ErrTimerNotRunning is returned when stopping a timer that is stopped
var ErrTimerNotRunning = errors.New("timer not running")
