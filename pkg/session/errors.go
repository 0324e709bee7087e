package session

import "errors"

var (
	// ErrDuplicateSession indicates safe mode refused to create an existing session
	ErrDuplicateSession = errors.New("session.duplicate")

	// ErrUnknownSession indicates the session does not exist
	ErrUnknownSession = errors.New("session.unknown")
)
