package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapMatchesByCode(t *testing.T) {
	cause := fmt.Errorf("open adult.csv: no such file")
	err := Wrap(cause, "resource_not_found", "dataset %q not found", "adult.csv")

	assert.True(t, IsResourceNotFound(err))
	assert.False(t, IsLoadFailure(err))
	assert.True(t, stderrors.Is(err, ErrResourceNotFound))
	assert.ErrorContains(t, err, "adult.csv")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestNewMatchesByCode(t *testing.T) {
	err := New("load_failure", "row %d: null value", 7)

	assert.True(t, IsLoadFailure(err))
	assert.True(t, stderrors.Is(err, ErrLoadFailure))
	assert.ErrorContains(t, err, "row 7")
	assert.Equal(t, "load_failure", err.Code())
}

func TestIsHandlesNil(t *testing.T) {
	assert.False(t, Is(nil, ErrLoadFailure))
	assert.False(t, IsResourceNotFound(nil))
}

func TestWrappedChainMatches(t *testing.T) {
	inner := Wrap(fmt.Errorf("boom"), "load_failure", "parse dataset")
	outer := fmt.Errorf("starting server: %w", inner)

	assert.True(t, IsLoadFailure(outer))
	assert.True(t, stderrors.Is(outer, ErrLoadFailure))
}
