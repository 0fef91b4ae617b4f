package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrPackageParse ErrorType = iota
	ErrInventoryRead
	ErrFeedFetch
	ErrFeedFormat
	ErrFeedParse
	ErrSignature
	ErrChecksum
	ErrInvalidConfig
)

// ErrNoUpdateInfo is returned when a repository's repomd.xml has no updateinfo entry
var ErrNoUpdateInfo = errors.New("no updateinfo entry in repomd.xml")

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrPackageParse:
		return "PackageParse"
	case ErrInventoryRead:
		return "InventoryRead"
	case ErrFeedFetch:
		return "FeedFetch"
	case ErrFeedFormat:
		return "FeedFormat"
	case ErrFeedParse:
		return "FeedParse"
	case ErrSignature:
		return "Signature"
	case ErrChecksum:
		return "Checksum"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// UpdateError represents an error raised while looking for package updates
type UpdateError struct {
	Type   ErrorType
	Source string
	Err    error
}

// Error implements the error interface
func (e *UpdateError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Source, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *UpdateError) Unwrap() error {
	return e.Err
}

// IsErrorType reports whether err carries an UpdateError of the given type
func IsErrorType(err error, t ErrorType) bool {
	var ue *UpdateError
	if errors.As(err, &ue) {
		return ue.Type == t
	}
	return false
}
