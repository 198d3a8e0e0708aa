package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeAuth represents login-state violations
	ErrorTypeAuth ErrorType = "auth"
	// ErrorTypeStorage represents file storage errors
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// Category returns the error's type classification. Typed errors embedding
// *BaseError inherit it by promotion.
func (e *BaseError) Category() ErrorType {
	return e.Type
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Graph Errors

// ErrNotFound is returned when a lookup matches no node
type ErrNotFound struct {
	*BaseError
	Label string
	ID    string
}

func NewNotFound(label, id string) *ErrNotFound {
	return &ErrNotFound{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("%s not found: %s", label, id), nil),
		Label:     label,
		ID:        id,
	}
}

// IsNotFound reports whether err is an ErrNotFound
func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

// ErrDuplicateName is returned when a uniqueness check fails on create
type ErrDuplicateName struct {
	*BaseError
	Name string
}

func NewDuplicateName(name string) *ErrDuplicateName {
	return &ErrDuplicateName{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("name already exists: %s", name), nil),
		Name:      name,
	}
}

// ErrGraphConnectionFailed is returned when the Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Query string
}

func NewGraphQueryFailed(query string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, "query failed", err),
		Query:     query,
	}
}

// Auth Errors

// ErrInvalidCredentials is returned when login/password do not match a user
var ErrInvalidCredentials = NewBaseError(ErrorTypeAuth, "username or password incorrect", nil)

// ErrAlreadyLoggedIn is returned when a login is attempted while a session is active
var ErrAlreadyLoggedIn = NewBaseError(ErrorTypeAuth, "already logged in", nil)

// ErrNotLoggedIn is returned on logout when the user is unknown or logged out
var ErrNotLoggedIn = NewBaseError(ErrorTypeAuth, "username incorrect or not logged in", nil)

// ErrInvalidLookup is returned on password reset when login+email match no user
var ErrInvalidLookup = NewBaseError(ErrorTypeAuth, "username or email incorrect", nil)

// Storage Errors

// ErrStorageFailed is returned when a disk read/write/remove fails
type ErrStorageFailed struct {
	*BaseError
	Path string
}

func NewStorageFailed(path string, err error) *ErrStorageFailed {
	return &ErrStorageFailed{
		BaseError: NewBaseError(ErrorTypeStorage, fmt.Sprintf("storage operation failed: %s", path), err),
		Path:      path,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type. The check goes
// through the promoted Category accessor so typed errors embedding
// *BaseError classify the same as *BaseError itself.
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if categorized, ok := err.(interface{ Category() ErrorType }); ok {
			return categorized.Category() == errType
		}
		wrapped, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = wrapped.Unwrap()
	}
	return false
}
