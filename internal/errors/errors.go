// Package errors provides error handling for strand.
//
// It re-exports the parts of github.com/cockroachdb/errors the service uses
// (stack traces, wrapping, Is/As inspection) and defines the sentinel errors
// that make up the service's error taxonomy. Handlers classify failures by
// checking sentinels with Is and map them to HTTP status codes.
//
// Usage:
//
//	if err := store.Insert(entry); err != nil {
//	    return errors.Wrap(err, "create string")
//	}
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // respond 404
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New       = crdb.New
	Newf      = crdb.Newf
	Wrap      = crdb.Wrap
	Wrapf     = crdb.Wrapf
	WithStack = crdb.WithStack
)

// Error inspection
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Sentinel errors for use across strand.
// Check with Is(); wrap with Wrap() to add context while preserving the type.
var (
	// ErrInvalidRequest indicates the request was malformed or invalid
	ErrInvalidRequest = New("invalid request")

	// ErrConflict indicates a duplicate fingerprint on insert
	ErrConflict = New("resource conflict")

	// ErrNotFound indicates the requested entry does not exist
	ErrNotFound = New("not found")

	// ErrParse indicates the natural-language translator could not extract
	// a required token from the query
	ErrParse = New("parse error")
)

// NewInvalidRequestf creates an invalid-request error with a formatted message
func NewInvalidRequestf(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}

// NewNotFoundf creates a not-found error with a formatted message
func NewNotFoundf(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewParsef creates a parse error with a formatted message
func NewParsef(format string, args ...interface{}) error {
	return Wrap(ErrParse, Newf(format, args...).Error())
}

// IsNotFound reports whether err is or wraps ErrNotFound
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsConflict reports whether err is or wraps ErrConflict
func IsConflict(err error) bool {
	return err != nil && Is(err, ErrConflict)
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest
func IsInvalidRequest(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsParse reports whether err is or wraps ErrParse
func IsParse(err error) bool {
	return err != nil && Is(err, ErrParse)
}
