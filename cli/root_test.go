package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommandFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"config", "addr", "dataset", "log-level", "log-format", "chart-height", "preview-rows"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, "censusviz", cmd.Use)
}

func TestExitErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &ExitError{Code: 2, Err: cause}

	assert.Equal(t, "boom", err.Error())
	assert.True(t, errors.Is(err, cause))

	bare := &ExitError{Code: 3}
	assert.Equal(t, "exit code 3", bare.Error())
}

func TestRootCommandRejectsUnknownFlag(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--definitely-not-a-flag"})

	err := cmd.Execute()
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}
