// Package apperrors defines the error kinds exposed across the service
// boundary. Storage failures are logged where they happen and rewrapped into
// one of these, so no driver internals leak past the store layer.
package apperrors

import "errors"

var (
	// ErrNotFound covers both "no such row" and "row owned by someone else";
	// the two are never distinguished.
	ErrNotFound = errors.New("resource not found")

	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("resource already exists")
	ErrInternal     = errors.New("operation failed")
)
