package commands

import (
	"fmt"

	"github.com/leapstack-labs/bancheck/internal/cli/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect bancheck configuration",
		Long: `Inspect the effective configuration.

Configuration is read from bancheck.yaml (or --config), BANCHECK_*
environment variables and command-line flags, in increasing precedence.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  bancheck config show
  BANCHECK_SOLUTION=main.cpp bancheck config show -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			r := cmdCtx.Renderer
			cfg := cmdCtx.Cfg

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			if cfg.ConfigFile != "" {
				r.Printf("# %s\n", cfg.ConfigFile)
			}
			r.Printf("%s", data)
			return nil
		},
	}
}
