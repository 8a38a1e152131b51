// Package cli implements the wrrc command-line interface.
//
// wrrc generates priority lists ("addresses") for wireless repeater chains.
// The CLI is built using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
//   - gen: Print the priority list for a repeater count
//   - addr: Print the repeater settings of a single address
//   - dist: Show how many configurations reach each total delay
//   - shell: Interactive prompt accepting gen, wrrc, help and exit
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports per-tick statistics of the ranking simulation. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wrrc/internal/config"
	"github.com/matzehuels/wrrc/pkg/buildinfo"
	"github.com/matzehuels/wrrc/pkg/chain"
	apperr "github.com/matzehuels/wrrc/pkg/errors"
	"github.com/matzehuels/wrrc/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "wrrc"

	// spinnerThreshold is the repeater count from which generation shows a spinner.
	spinnerThreshold = 9
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and default preferences.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "wrrc generates priority lists for wireless repeater chains",
		Long: `wrrc (Wireless Redstone Repeater Chain) lists every repeater configuration
that reaches the optimal total delay and assigns each one an address by
simulating how a receiver queue would process them.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			observability.SetGeneratorHooks(logHooks{})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wrrc/config.toml)")

	root.AddCommand(c.genCommand())
	root.AddCommand(c.addrCommand())
	root.AddCommand(c.distCommand())
	root.AddCommand(c.shellCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Generation
// =============================================================================

// generate validates n against the configured limit and builds the priority
// list, logging under a per-run identifier. Large lists show a spinner when
// stderr is a terminal. A cancelled ctx discards the result.
func (c *CLI) generate(ctx context.Context, n int) (*chain.Result, error) {
	return c.generateList(ctx, n, spinnerEnabled(n, os.Stderr))
}

func (c *CLI) generateList(ctx context.Context, n int, spin bool) (*chain.Result, error) {
	if err := c.checkCount(n); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx).With("run", uuid.NewString()[:8])
	ctx = withLogger(ctx, logger)
	logger.Debug("generating priority list", "repeaters", n, "candidates", chain.CandidateCount(n))

	var spinner *Spinner
	if spin {
		spinner = newSpinnerWithContext(ctx, "Ranking configurations...")
		spinner.Start()
	}

	prog := newProgress(logger)
	res, err := chain.Generate(n, chain.WithContext(ctx))
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("generation interrupted", "repeaters", n)
		return nil, err
	}
	prog.done("Generated " + pluralize(res.Count(), "address", "addresses"))
	return res, nil
}

// spinnerEnabled reports whether generating n repeaters should animate a
// spinner on w.
func spinnerEnabled(n int, w any) bool {
	return n >= spinnerThreshold && isTerminal(w)
}

// checkCount rejects repeater counts outside [1, Config.MaxElements].
func (c *CLI) checkCount(n int) error {
	if err := chain.ValidateElementCount(n); err != nil {
		return err
	}
	if n > c.Config.MaxElements {
		return apperr.New(apperr.ErrCodeElementCountTooLarge, "repeater count %d exceeds the configured maximum of %d", n, c.Config.MaxElements)
	}
	return nil
}

// =============================================================================
// Terminal Detection
// =============================================================================

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
