package core

// Error codes surfaced to a single connection, never broadcast.
const (
	ErrCodeBadRequest     = "bad_request"
	ErrCodeReservedName   = "reserved_name"
	ErrCodeInvalidMessage = "invalid_message"
)
