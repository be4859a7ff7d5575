package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skelgen/cli/internal/scaffold"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"exit error", NewExitError(errors.New("boom"), 42), 42},
		{"io error", &scaffold.IOError{Op: "mkdir", Path: "/x", Err: errors.New("denied")}, ExitIOError},
		{"wrapped io error", fmt.Errorf("generating: %w", &scaffold.IOError{Op: "create", Path: "/x", Err: errors.New("denied")}), ExitIOError},
		{"invalid tree", fmt.Errorf("layout: %w", scaffold.ErrInvalidTree), ExitValidationError},
		{"validation", WrapValidation(errors.New("bad flag"), "parsing"), ExitValidationError},
		{"not found", WrapNotFound(errors.New("no such layout"), "resolving"), ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewExitError(fmt.Errorf("outer: %w", inner), ExitIOError)

	assert.True(t, errors.Is(err, inner))
	assert.Equal(t, "outer: inner", err.Error())
}

func TestWrapValidation_PreservesSentinel(t *testing.T) {
	err := WrapValidation(errors.New("boom"), "checking input")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "checking input")
	assert.Contains(t, err.Error(), "boom")
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "General Error", ExitCodeName(ExitGeneralError))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "IO Error", ExitCodeName(ExitIOError))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
