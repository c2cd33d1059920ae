package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakharkaran/plotguide/pkg/style"
	"github.com/jakharkaran/plotguide/pkg/texprobe"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var (
		forceTypeset bool
		forcePlain   bool
		profilePath  string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged styling configuration",
		Long: `Probe the host and print the summary block plus every merged parameter.

The branch can be pinned for inspection with --typeset or --no-typeset, which
skips the probe entirely. A TOML profile overlays the base parameters before
the availability merge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if forceTypeset && forcePlain {
				return fmt.Errorf("--typeset and --no-typeset are mutually exclusive")
			}

			ctx := cmd.Context()
			opts := []style.Option{style.WithLogger(loggerFromContext(ctx))}

			if profilePath != "" {
				params, err := style.LoadProfile(profilePath)
				if err != nil {
					return err
				}
				opts = append(opts, style.WithProfile(params))
			}
			switch {
			case forceTypeset:
				opts = append(opts, style.WithProber(texprobe.Fixed(true)))
			case forcePlain:
				opts = append(opts, style.WithProber(texprobe.Fixed(false)))
			}

			cfg := style.Load(ctx, opts...)

			printSummary(cfg)
			// A pinned branch skips the probe, so any engine path is a
			// placeholder, not a resolved executable.
			pinned := forceTypeset || forcePlain
			if cfg.Available && cfg.EnginePath != "" && !pinned {
				printDetail("engine: %s", cfg.EnginePath)
			}
			if path, ok := style.ResolveMathFont(cfg.MathFontset()); ok {
				printDetail("math font: %s", path)
			}
			printNewline()

			keys := make([]string, 0, len(cfg.Params))
			for k := range cfg.Params {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				printKeyValue(k, formatValue(cfg.Params[k]))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceTypeset, "typeset", false, "pin the typeset branch (skip the probe)")
	cmd.Flags().BoolVar(&forcePlain, "no-typeset", false, "pin the fallback branch (skip the probe)")
	cmd.Flags().StringVar(&profilePath, "profile", "", "TOML profile overlaying the base parameters")

	return cmd
}

// formatValue renders a parameter value for terminal display.
func formatValue(v any) string {
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	}
	return fmt.Sprintf("%v", v)
}
