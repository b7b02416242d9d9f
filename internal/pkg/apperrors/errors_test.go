package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError_Message(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	assert.Equal(t, "connect to course store: "+cause.Error(), NewStoreError("connect to course store", cause).Error())
	assert.Equal(t, cause.Error(), NewStoreError("", cause).Error())
	assert.Equal(t, "query courses", NewStoreError("query courses", nil).Error())
	assert.Equal(t, ErrStore.Error(), (&StoreError{}).Error())
}

func TestStoreError_Matching(t *testing.T) {
	cause := errors.New("no such table: Courses")
	err := fmt.Errorf("search failed: %w", NewStoreError("query courses", cause))

	assert.True(t, errors.Is(err, ErrStore))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsStoreError(err))
	assert.False(t, IsStoreError(cause))
	assert.False(t, errors.Is(cause, ErrStore))
}
