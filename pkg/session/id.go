package session

import "github.com/google/uuid"

// NewID returns a random UUIDv4 string for hosts that have no natural session key.
func NewID() string {
	return uuid.NewString()
}
