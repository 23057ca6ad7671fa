// Package cli implements the isospec command-line front end: a Cobra
// root command with ordered/threshold/layered/serve subcommands,
// sharing one config-load-then-log-init chain across all subcommands.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopherchem/isospec/internal/config"
	"github.com/gopherchem/isospec/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	TabSize    int
	HashSize   int
	Format     string
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config *config.Config
	Logger logging.Logger
	Format string
}

// NewRootCommand creates the root cobra command with global flags and
// the ordered/threshold/layered/serve subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "isospec",
		Short:   "Enumerate the isotopic fine structure of a chemical formula",
		Long:    "isospec streams the high-probability isotopologues of a chemical formula,\nwith exact masses and occurrence probabilities, using the ordered, threshold\nor layered streaming disciplines.",
		Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (defaults to ISOSPEC_* env vars only)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.IntVar(&opts.TabSize, "tab-size", 0, "initial capacity hint for marginal tables (0 = use config default)")
	pf.IntVar(&opts.HashSize, "hash-size", 0, "initial capacity hint for dedup sets (0 = use config default)")
	pf.StringVarP(&opts.Format, "format", "o", "ndjson", "output format: ndjson or table")

	cmd.AddCommand(
		newOrderedCmd(),
		newThresholdCmd(),
		newLayeredCmd(),
		newServeCmd(),
	)

	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	logging.SetDefault(logger)

	cliCtx := &CLIContext{Config: cfg, Logger: logger, Format: opts.Format}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

func loadConfig(opts *RootOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.TabSize > 0 {
		cfg.Generator.TabSize = opts.TabSize
	}
	if opts.HashSize > 0 {
		cfg.Generator.HashSize = opts.HashSize
	}
	return cfg, cfg.Validate()
}

// GetCLIContext extracts the CLIContext stored by persistentPreRun.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, fmt.Errorf("cli: command context is nil")
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, fmt.Errorf("cli: CLIContext not found in command context")
	}
	return cliCtx, nil
}

// Execute is the CLI's main entry point, called from cmd/isospec/main.go.
func Execute() error {
	return NewRootCommand().Execute()
}
