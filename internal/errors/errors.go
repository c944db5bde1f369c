package errors

import (
	"errors"
	"fmt"
)

// Common error types for the console
var (
	// Authentication errors
	ErrAuthenticationExpired = errors.New("authentication expired")
	ErrNotAuthenticated      = errors.New("not authenticated")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionIncomplete = errors.New("session incomplete")

	// Store errors
	ErrStoreUnavailable = errors.New("session store unavailable")
	ErrKeyNotFound      = errors.New("key not found")

	// Backend errors
	ErrConnectivity = errors.New("backend unreachable")
	ErrBackend      = errors.New("backend error")

	// General errors
	ErrNotFound    = errors.New("not found")
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
