package common

import "errors"

var (
	// ErrAlreadyExists is returned when a record is created under the key
	// which is already in use.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound is returned when an operation refers to a missing record.
	ErrNotFound = errors.New("does not exist")

	// ErrInvalidArgument is returned when transaction arguments are malformed
	// or their number does not match the operation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDecodeFailure is returned when a stored value does not decode into
	// the expected record.
	ErrDecodeFailure = errors.New("decode failure")
)
