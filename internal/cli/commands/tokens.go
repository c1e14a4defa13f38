package commands

import (
	"fmt"

	"github.com/leapstack-labs/bancheck/internal/cli/output"
	"github.com/leapstack-labs/bancheck/internal/loader"
	"github.com/leapstack-labs/bancheck/pkg/banned"
	"github.com/spf13/cobra"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens a check would see",
		Long: `Tokenize a file and print the distinct tokens in sorted order.

Use this to find out why a banned word was or was not reported. When no
file argument is given the configured solution file is used.`,
		Example: `  # Tokens with the built-in delimiters
  bancheck tokens main.cpp

  # Tokens with a custom delimiter set
  bancheck tokens main.cpp --delimiters delims.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args)
		},
	}

	addDelimitersFlag(cmd)
	return cmd
}

func runTokens(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg

	path := cfg.Solution
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("%w: no file given\nHint: pass a file argument or --solution", banned.ErrConfiguration)
	}

	text, err := loader.ReadSource(path)
	if err != nil {
		return err
	}
	delims, source, err := resolveDelimiters(cfg)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("tokenizing", "file", path, "delimiters", len(delims), "delimiter_source", source)

	return renderTokens(cmdCtx.Renderer, path, banned.Tokenize(text, delims).Sorted())
}

func renderTokens(r *output.Renderer, path string, tokens []string) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.TokensResult{File: path, Count: len(tokens), Tokens: tokens})
	case output.ModeMarkdown:
		r.Printf("### %s (%d tokens)\n\n", path, len(tokens))
		r.Println("```")
		for _, tok := range tokens {
			r.Println(tok)
		}
		r.Println("```")
	default:
		r.Printf("%s %s\n",
			r.Styles().FilePath.Render(path),
			r.Styles().Muted.Render(fmt.Sprintf("(%d tokens)", len(tokens))),
		)
		for _, tok := range tokens {
			r.Println("  " + r.Styles().Token.Render(tok))
		}
	}
	return nil
}
