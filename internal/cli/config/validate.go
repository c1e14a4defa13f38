package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/bancheck/pkg/banned"
)

// OutputFormats lists the accepted values of the output option.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// Validate checks option values that every command depends on.
func (c *Config) Validate() error {
	format := strings.ToLower(c.OutputFormat)
	for _, f := range OutputFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("%w: invalid output format %q (want one of %s)",
		banned.ErrConfiguration, c.OutputFormat, strings.Join(OutputFormats, ", "))
}

// RequireCheckInputs checks that the inputs of a banned word check are set.
func (c *Config) RequireCheckInputs() error {
	if c.Solution == "" {
		return fmt.Errorf("%w: solution file is required\nHint: pass --solution or set solution in bancheck.yaml", banned.ErrConfiguration)
	}
	if c.BannedWords == "" {
		return fmt.Errorf("%w: banned words file is required\nHint: pass --banned-words or set banned_words in bancheck.yaml", banned.ErrConfiguration)
	}
	return nil
}
