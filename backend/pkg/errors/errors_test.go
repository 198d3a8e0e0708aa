package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorType_TypedErrors(t *testing.T) {
	assert.True(t, IsErrorType(NewNotFound("User", "u1"), ErrorTypeGraph))
	assert.True(t, IsErrorType(NewDuplicateName("alice"), ErrorTypeGraph))
	assert.True(t, IsErrorType(NewGraphQueryFailed("MATCH (n)", errors.New("boom")), ErrorTypeGraph))
	assert.True(t, IsErrorType(NewStorageFailed("files/x", errors.New("disk full")), ErrorTypeStorage))
}

func TestIsErrorType_Sentinels(t *testing.T) {
	assert.True(t, IsErrorType(ErrInvalidCredentials, ErrorTypeAuth))
	assert.True(t, IsErrorType(ErrAlreadyLoggedIn, ErrorTypeAuth))
	assert.True(t, IsErrorType(ErrNotLoggedIn, ErrorTypeAuth))
	assert.True(t, IsErrorType(ErrInvalidLookup, ErrorTypeAuth))
}

func TestIsErrorType_CategoryMismatch(t *testing.T) {
	assert.False(t, IsErrorType(NewStorageFailed("files/x", nil), ErrorTypeGraph))
	assert.False(t, IsErrorType(ErrNotLoggedIn, ErrorTypeStorage))
}

// The classification must not be confused by the wrapped cause: a storage
// error wrapping a plain error is still a storage error, never the cause's
// category.
func TestIsErrorType_StopsAtFirstCategory(t *testing.T) {
	inner := NewGraphQueryFailed("MATCH (n)", nil)
	outer := NewStorageFailed("files/x", inner)

	assert.True(t, IsErrorType(outer, ErrorTypeStorage))
	assert.False(t, IsErrorType(outer, ErrorTypeGraph))
}

func TestIsErrorType_WrappedTypedError(t *testing.T) {
	wrapped := fmt.Errorf("saving upload: %w", NewStorageFailed("files/x", nil))

	assert.True(t, IsErrorType(wrapped, ErrorTypeStorage))
	assert.False(t, IsErrorType(wrapped, ErrorTypeGraph))
}

func TestIsErrorType_PlainErrors(t *testing.T) {
	assert.False(t, IsErrorType(nil, ErrorTypeGraph))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeGraph))
	assert.False(t, IsErrorType(fmt.Errorf("wrapped: %w", errors.New("plain")), ErrorTypeGraph))
}
