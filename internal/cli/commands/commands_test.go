// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// executeCommand runs cmd with args and returns what it wrote to stdout and stderr.
func executeCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist
	flags := []string{"solution", "banned-words", "delimiters"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewTokensCommand(t *testing.T) {
	cmd := NewTokensCommand()

	assert.Equal(t, "tokens [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("delimiters"))
}

func TestNewDelimitersCommand(t *testing.T) {
	cmd := NewDelimitersCommand()

	assert.Equal(t, "delimiters", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("delimiters"))
}

func TestNewConfigCommand(t *testing.T) {
	cmd := NewConfigCommand()

	assert.Equal(t, "config", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
	show, _, err := cmd.Find([]string{"show"})
	assert.NoError(t, err)
	assert.Equal(t, "show", show.Name())
}
