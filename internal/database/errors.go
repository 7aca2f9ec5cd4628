package database

import (
	"context"
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors the rest of the application branches on. Everything else
// coming out of this package is opaque and only good for Message().
var (
	// ErrNotFound means the target row does not exist or belongs to another owner
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists means an insert collided with an existing primary key
	ErrAlreadyExists = errors.New("already exists")
)

// Fixed Postgres error-class/code to human-readable message table. Unmapped
// codes fall through to a generic message so driver internals never reach
// the client.
var pqMessages = map[string]string{
	"23505": "A task with this ID already exists.",                     // unique_violation
	"42501": "You do not have permission to perform this action.",      // insufficient_privilege
	"28000": "You do not have permission to perform this action.",      // invalid_authorization_specification
	"28P01": "You must be logged in to perform this action.",           // invalid_password
	"53100": "Quota exceeded. Please try again later.",                 // disk_full
	"53200": "Quota exceeded. Please try again later.",                 // out_of_memory
	"53300": "Service is temporarily unavailable. Please try again.",   // too_many_connections
	"57014": "Operation was cancelled.",                                // query_canceled
	"57P01": "Service is temporarily unavailable. Please try again.",   // admin_shutdown
	"57P02": "Service is temporarily unavailable. Please try again.",   // crash_shutdown
	"57P03": "Service is temporarily unavailable. Please try again.",   // cannot_connect_now
	"58030": "Data loss occurred. Please contact support.",             // io_error
	"08000": "Service is temporarily unavailable. Please try again.",   // connection_exception
	"08006": "Service is temporarily unavailable. Please try again.",   // connection_failure
}

const genericMessage = "An error occurred. Please try again."

// Message normalizes any error from this package into a human-readable
// string for display. Pure and side-effect free.
func Message(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return "Task not found"
	case errors.Is(err, ErrAlreadyExists):
		return pqMessages["23505"]
	case errors.Is(err, context.Canceled):
		return pqMessages["57014"]
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if msg, ok := pqMessages[string(pqErr.Code)]; ok {
			return msg
		}
	}
	return genericMessage
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
