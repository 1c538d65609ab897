// Package common defines sentinel errors shared by the storage, service and
// CLI layers of legacykeeper. Callers should use errors.Is to match these
// values; wrapped errors keep the underlying driver message for logs.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Storage outcome classes reported by services.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrWriteFailure       = errors.New("write failure")
	ErrReadFailure        = errors.New("read failure")

	// Input validation errors.
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidFrequency = errors.New("invalid frequency")

	// Session errors.
	ErrorUnauthorized = errors.New("unauthorized")
)
