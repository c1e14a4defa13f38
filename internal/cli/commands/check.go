package commands

import (
	"fmt"

	"github.com/leapstack-labs/bancheck/internal/cli/config"
	"github.com/leapstack-labs/bancheck/internal/cli/output"
	"github.com/leapstack-labs/bancheck/internal/loader"
	"github.com/leapstack-labs/bancheck/pkg/banned"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail if a source file contains a banned word",
		Long: `Scan a source file for banned words.

The file is split into tokens by padding every delimiter with spaces and
splitting on whitespace. If any word from the banned words file is one of
the tokens, the command prints "Word <word> is banned!" to stderr and exits
with status 1. A clean file produces no output and exit status 0.

Matching is exact: a banned word inside a larger token is not reported.`,
		Example: `  # Check a solution against a word list
  bancheck check --solution main.cpp --banned-words banned.json

  # Use a custom delimiter set
  bancheck check --solution main.cpp --banned-words banned.json --delimiters delims.json

  # Machine-readable result
  bancheck check --solution main.cpp --banned-words banned.json -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunCheck(cmd)
		},
	}

	AddCheckFlags(cmd)
	return cmd
}

// AddCheckFlags registers the flags of a banned word check on cmd.
func AddCheckFlags(cmd *cobra.Command) {
	cmd.Flags().String("solution", "", "Path to the source file to scan (required)")
	cmd.Flags().String("banned-words", "", `Path to a JSON file {"banned_words": [...]} (required)`)
	addDelimitersFlag(cmd)
}

// RunCheck runs a banned word check with the configuration of cmd.
// A found word is returned as a *banned.ViolationError.
func RunCheck(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	if err := cfg.RequireCheckInputs(); err != nil {
		return err
	}

	words, err := loader.LoadBannedWords(cfg.BannedWords)
	if err != nil {
		return err
	}

	text, err := loader.ReadSource(cfg.Solution)
	if err != nil {
		return err
	}

	delims, source, err := resolveDelimiters(cfg)
	if err != nil {
		return err
	}
	logger.Debug("inputs loaded",
		"solution", cfg.Solution,
		"banned_words", len(words),
		"delimiters", len(delims),
		"delimiter_source", source,
	)

	tokens := banned.Tokenize(text, delims)
	outcome := banned.Check(tokens, words)
	logger.Debug("check finished", "status", outcome.Status.String(), "word", outcome.Word, "tokens", tokens.Len())

	if err := renderCheckResult(cmdCtx.Renderer, cfg, outcome, tokens.Len()); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	return outcome.Err()
}

// renderCheckResult writes nothing for a clean file unless JSON output or
// verbose mode was requested. Violations are reported by the caller.
func renderCheckResult(r *output.Renderer, cfg *config.Config, outcome banned.Outcome, tokenCount int) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.CheckResult{
			File:       cfg.Solution,
			Status:     outcome.Status.String(),
			Word:       outcome.Word,
			TokenCount: tokenCount,
		})
	}

	if !cfg.Verbose || !outcome.Clean() {
		return nil
	}
	status := cases.Title(language.English).String(outcome.Status.String())
	r.Success(fmt.Sprintf("%s: %s (%d tokens)", status, cfg.Solution, tokenCount))
	return nil
}
