package commands

import (
	"log/slog"

	"github.com/leapstack-labs/bancheck/internal/cli/config"
	"github.com/leapstack-labs/bancheck/internal/cli/output"
	"github.com/leapstack-labs/bancheck/internal/loader"
	"github.com/leapstack-labs/bancheck/pkg/banned"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd.
// The root command stores the loaded config in the command context; when a
// command runs on its own the config is loaded here from its flags.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	ctx := cmd.Context()

	cfg, ok := config.FromContext(ctx)
	if !ok {
		cfgFile, _ := cmd.Flags().GetString("config")
		var err error
		cfg, err = config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return nil, err
		}
	}

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(ctx),
		Renderer: r,
	}, nil
}

// Helper functions shared across commands

const builtinDelimiterSource = "built-in"

// resolveDelimiters returns the configured delimiter set and where it came
// from: the delimiters file path, or "built-in".
func resolveDelimiters(cfg *config.Config) ([]string, string, error) {
	if cfg.Delimiters == "" {
		return banned.DefaultDelimiters(), builtinDelimiterSource, nil
	}
	delims, err := loader.LoadDelimiters(cfg.Delimiters)
	if err != nil {
		return nil, "", err
	}
	return delims, cfg.Delimiters, nil
}

func addDelimitersFlag(cmd *cobra.Command) {
	cmd.Flags().String("delimiters", "", "Path to a JSON array of delimiter strings (default: built-in set)")
}
