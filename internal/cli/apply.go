package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakharkaran/plotguide/pkg/style"
)

// applyCommand creates the apply command.
func (c *CLI) applyCommand() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the merged configuration to the rendering defaults",
		Long: `Probe the host, build the merged configuration, and push every parameter
into the process-global rendering defaults.

A rejected key or value aborts with a coded error; probe failures never do.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			opts := []style.Option{style.WithLogger(logger)}
			if profilePath != "" {
				params, err := style.LoadProfile(profilePath)
				if err != nil {
					return err
				}
				opts = append(opts, style.WithProfile(params))
			}

			cfg := style.Load(ctx, opts...)
			if err := cfg.Apply(); err != nil {
				return err
			}

			printSummary(cfg)
			printInfo("Rendering defaults updated for this process")
			prog.done(fmt.Sprintf("Applied %d parameters", len(cfg.Params)))
			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "TOML profile overlaying the base parameters")

	return cmd
}
