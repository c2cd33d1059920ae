// Package cli implements the plotguide command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jakharkaran/plotguide/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "plotguide"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Plotguide standardizes plot styling for publication-quality figures",
		Long:         `Plotguide builds a merged plot styling configuration from a fixed base parameter set plus either typeset-quality text rendering (when a LaTeX engine is installed) or a fallback font set, and applies it to the process-global rendering defaults.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Attach the shared logger so every command resolves the same instance.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.probeCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.completionCommand())

	return root
}
