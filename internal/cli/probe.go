package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jakharkaran/plotguide/pkg/texprobe"
)

// probeCommand creates the probe command.
func (c *CLI) probeCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check whether a LaTeX engine is installed",
		Long: `Search the PATH for a LaTeX engine using the system lookup tool.

The probe reports availability only; it never fails. A host without LaTeX
gets the fallback font configuration, so the exit code is 0 either way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			spin := newSpinner(ctx, "Searching PATH for a LaTeX engine...")
			spin.Start()

			prober := texprobe.New()
			prober.Timeout = timeout
			res := prober.Probe(ctx)
			spin.Stop()
			if spin.Cancelled() {
				return ctx.Err()
			}

			if res.Available {
				logger.Debug("probe succeeded", "path", res.Path)
				printSuccess("LaTeX found at: %s", res.Path)
				return nil
			}

			logger.Debug("probe found no engine", "timeout", timeout)
			printError("LaTeX not found in PATH")
			printWarning("Falling back to standard fonts. For better typography, install a LaTeX distribution.")
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", texprobe.DefaultTimeout, "bound on the external lookup")

	return cmd
}
