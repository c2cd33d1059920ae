// Package style provides a standardized plot styling configuration for
// publication-quality figures.
//
// The package builds a merged parameter mapping from a fixed base set plus
// either a typeset set (when a LaTeX engine is found on the host) or a small
// fallback override (when it is not). The mapping is applied explicitly via
// [Config.Apply]; nothing mutates global rendering state as a side effect of
// importing this package.
//
// # Usage
//
//	cfg := style.Load(ctx)
//	if err := cfg.Apply(); err != nil {
//	    log.Fatal(err)
//	}
//
// Tests can pin the availability branch without spawning a subprocess:
//
//	cfg := style.Load(ctx, style.WithProber(texprobe.Fixed(false)))
package style

// Standard scientific figure font sizes, in points.
const (
	SmallSize  = 10.0 // tick labels, annotations
	MediumSize = 12.0 // axis labels, legends
	LargeSize  = 14.0 // titles
)

// Plotting presets exposed alongside the parameter mapping.
const (
	// ContourLevels is the number of discrete bands for contour-style plots.
	// Deliberately high for smooth gradients (library defaults sit around 20).
	ContourLevels = 100

	// Colormap is the default diverging colormap (blue-white-red, white at zero).
	Colormap = "bwr"

	// SavefigFormat is the default save format ("pdf" for vector graphics).
	SavefigFormat = "png"

	// SaveDir is the default save directory. Empty means current directory.
	SaveDir = ""
)

// Params is a flat mapping from rendering-configuration keys to values.
// Values are float64, bool, string, or []string depending on the key; the
// registry in pkg/style/rc defines the expected kind per key.
type Params map[string]any

// Clone returns a shallow copy of p. Slice values are copied as well so the
// fixed parameter sets stay immutable after construction.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if s, ok := v.([]string); ok {
			cp := make([]string, len(s))
			copy(cp, s)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}

// Merge combines base with overlays, later keys winning on collision.
// The inputs are never mutated.
func Merge(base Params, overlays ...Params) Params {
	out := base.Clone()
	for _, overlay := range overlays {
		for k, v := range overlay.Clone() {
			out[k] = v
		}
	}
	return out
}

// Base returns the parameter set that works without a typesetting engine.
func Base() Params {
	return Params{
		"figure.dpi":       100.0, // display DPI
		"savefig.dpi":      600.0, // high DPI for saving
		"figure.facecolor": "white",
		"axes.facecolor":   "white",

		// Font sizes
		"font.size":        MediumSize,
		"axes.titlesize":   LargeSize,
		"axes.labelsize":   MediumSize,
		"xtick.labelsize":  SmallSize,
		"ytick.labelsize":  SmallSize,
		"legend.fontsize":  MediumSize,
		"figure.titlesize": LargeSize,

		// Line and marker properties
		"lines.linewidth":  1.5,
		"lines.markersize": 5.0,
		"patch.linewidth":  0.5,

		// Ticks point inward on all four sides, minor ticks visible
		"xtick.direction":     "in",
		"ytick.direction":     "in",
		"xtick.top":           true,
		"xtick.bottom":        true,
		"ytick.left":          true,
		"ytick.right":         true,
		"xtick.minor.visible": true,
		"ytick.minor.visible": true,

		// Grid off by default
		"axes.grid":  false,
		"grid.alpha": 0.3,

		// All four spines shown
		"axes.spines.top":    true,
		"axes.spines.bottom": true,
		"axes.spines.left":   true,
		"axes.spines.right":  true,
	}
}

// Typeset returns the parameters merged in only when a LaTeX engine is
// confirmed present on the host.
func Typeset() Params {
	return Params{
		"text.usetex":         true,
		"text.latex.preamble": `\usepackage{amsmath}`,
		"font.family":         "serif",
		"font.serif":          []string{"Computer Modern Roman"},
		"mathtext.fontset":    "cm",
	}
}

// Fallback returns the two-key override applied when no LaTeX engine is found.
func Fallback() Params {
	return Params{
		"font.family":      "serif",
		"mathtext.fontset": "dejavuserif",
	}
}
