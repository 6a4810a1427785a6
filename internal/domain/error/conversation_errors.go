package error

import "errors"

// Conversation domain errors.
var (
	// ErrSessionDataLost is returned when a wizard reaches its finalize
	// step but required draft fields are missing (e.g. after a restart
	// mid-wizard).
	ErrSessionDataLost = errors.New("session data lost")

	// ErrUnknownToken is returned when a button token cannot be parsed
	// into a known action.
	ErrUnknownToken = errors.New("unknown button token")
)
