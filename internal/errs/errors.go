// Package errs provides the unified error type used across all of miniokit.
//
// Every subsystem (admin store, object store, config, …) wraps its native
// errors into *errs.Error before returning them to callers. Callers use the
// Is* predicates to handle errors without importing driver-specific packages.
//
// Usage:
//
//	// In a driver — wrap native errors:
//	return errs.Wrap(errs.ErrKindNotFound, "bucket does not exist", s3Err)
//
//	// In a caller — check error kind:
//	if errs.IsNotFound(err) {
//	    fmt.Fprintf(os.Stderr, "no such bucket\n")
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrKind categorises an error without exposing backend-specific codes.
// Both stores (madmin admin API, minio data plane) map their native errors
// to one of these kinds, giving callers a single consistent API.
type ErrKind int

const (
	ErrKindUnknown          ErrKind = iota
	ErrKindConfigMissing            // required configuration absent
	ErrKindInvalidInput             // bad arguments from the caller (bucket name, …)
	ErrKindNotFound                 // no such access key, no such bucket
	ErrKindAlreadyExists            // access key or bucket already present
	ErrKindNotEmpty                 // bucket still holds objects
	ErrKindPermissionDenied         // access denied / auth failure
	ErrKindTimeout                  // context deadline / cancellation
	ErrKindUnavailable              // cannot reach the server, transport failure
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindConfigMissing:
		return "config_missing"
	case ErrKindInvalidInput:
		return "invalid_input"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindAlreadyExists:
		return "already_exists"
	case ErrKindNotEmpty:
		return "not_empty"
	case ErrKindPermissionDenied:
		return "permission_denied"
	case ErrKindTimeout:
		return "timeout"
	case ErrKindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by all miniokit subsystems.
// Drivers produce it; callers inspect it via the Is* predicates below.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error // original driver-level error, preserved for logging
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// --- Constructors ---

// New creates an *Error with the given kind and message and no cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf creates an *Error with a formatted message and no cause.
func Newf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// --- Predicates ---

// IsConfigMissing reports whether err was caused by absent required configuration.
func IsConfigMissing(err error) bool {
	return KindOf(err) == ErrKindConfigMissing
}

// IsInvalidInput reports whether err was caused by bad input from the caller
// (an invalid bucket name, …).
func IsInvalidInput(err error) bool {
	return KindOf(err) == ErrKindInvalidInput
}

// IsNotFound reports whether err represents a "not found" result
// (missing access key, missing bucket, …).
func IsNotFound(err error) bool {
	return KindOf(err) == ErrKindNotFound
}

// IsAlreadyExists reports whether err represents a conflicting resource
// (access key ID or bucket already on the server).
func IsAlreadyExists(err error) bool {
	return KindOf(err) == ErrKindAlreadyExists
}

// IsNotEmpty reports whether err represents a bucket that still holds objects.
func IsNotEmpty(err error) bool {
	return KindOf(err) == ErrKindNotEmpty
}

// IsPermissionDenied reports whether err is an access control failure.
func IsPermissionDenied(err error) bool {
	return KindOf(err) == ErrKindPermissionDenied
}

// IsTimeout reports whether err was caused by a deadline or context cancellation.
func IsTimeout(err error) bool {
	return KindOf(err) == ErrKindTimeout
}

// IsUnavailable reports whether err is a connectivity or transport failure.
func IsUnavailable(err error) bool {
	return KindOf(err) == ErrKindUnavailable
}

// KindOf extracts the ErrKind from any error in the chain.
// Errors that do not carry an *Error report ErrKindUnknown.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
