// Package cli provides the command-line interface for bancheck.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/bancheck/internal/cli/commands"
	"github.com/leapstack-labs/bancheck/internal/cli/config"
	"github.com/leapstack-labs/bancheck/internal/cli/output"
	"github.com/leapstack-labs/bancheck/pkg/banned"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bancheck --solution FILE --banned-words FILE [--delimiters FILE]",
		Short: "bancheck - fail when a source file uses a banned word",
		Long: `bancheck scans a submitted source file for disallowed tokens, such as
forbidden keywords or API names in a coding exercise, and fails if any are found.

Run without a subcommand it performs the check; "bancheck check" is an alias.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunCheck(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bancheck.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	commands.AddCheckFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewTokensCommand())
	rootCmd.AddCommand(commands.NewDelimitersCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return ExecuteCommand(NewRootCmd())
}

// ExecuteCommand runs cmd and reports a failure on its error stream.
// A banned word is reported as "Word <word> is banned!"; every other
// failure is prefixed with "Error: ".
func ExecuteCommand(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		printError(output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto), err)
		return err
	}
	return nil
}

func printError(r *output.Renderer, err error) {
	var violation *banned.ViolationError
	if errors.As(err, &violation) {
		r.Error(violation.Error())
		return
	}
	r.Error(fmt.Sprintf("Error: %v", err))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for bancheck.

To load completions:

Bash:
  $ source <(bancheck completion bash)

Zsh:
  $ bancheck completion zsh > "${fpath[1]}/_bancheck"

Fish:
  $ bancheck completion fish | source

PowerShell:
  PS> bancheck completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
