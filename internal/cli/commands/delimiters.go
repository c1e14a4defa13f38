package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/bancheck/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewDelimitersCommand creates the delimiters command.
func NewDelimitersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delimiters",
		Short: "List the delimiters used for tokenization",
		Long: `List the delimiter set in the order padding passes are applied.

Without --delimiters the built-in set is shown.`,
		Example: `  # Built-in delimiters
  bancheck delimiters

  # Inspect a custom delimiters file
  bancheck delimiters --delimiters delims.json -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			delims, source, err := resolveDelimiters(cmdCtx.Cfg)
			if err != nil {
				return err
			}
			return renderDelimiters(cmdCtx.Renderer, source, delims)
		},
	}

	addDelimitersFlag(cmd)
	return cmd
}

func renderDelimiters(r *output.Renderer, source string, delims []string) error {
	if r.EffectiveMode() == output.ModeJSON {
		result := output.DelimitersResult{Source: source, Delimiters: []output.DelimiterEntry{}}
		for i, d := range delims {
			result.Delimiters = append(result.Delimiters, output.DelimiterEntry{
				Index:     i + 1,
				Delimiter: d,
				Escaped:   strconv.Quote(d),
			})
		}
		return r.JSON(result)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.AppendHeader(table.Row{"#", "Delimiter", "Code points"})
	for i, d := range delims {
		t.AppendRow(table.Row{i + 1, strconv.Quote(d), codePoints(d)})
	}
	t.AppendFooter(table.Row{"", "source", source})

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
		return nil
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// codePoints formats s as space-separated U+XXXX values.
func codePoints(s string) string {
	if s == "" {
		return "(empty)"
	}
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}
