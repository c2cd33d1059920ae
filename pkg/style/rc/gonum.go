package rc

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// fontCache backs both text handlers. Liberation is the library's bundled
// collection; the serif face stands in for Computer Modern when text is not
// routed through the LaTeX renderer.
var fontCache = font.NewCache(liberation.Collection())

// Library defaults captured before any sync, so Reset can restore them.
var (
	initialFont       = plot.DefaultFont
	initialLineStyle  = plotter.DefaultLineStyle
	initialGlyphStyle = plotter.DefaultGlyphStyle
)

// syncPlotDefaults pushes the expressible subset of the store into
// gonum.org/v1/plot package globals. Keys the library has no global for
// (ticks, spines, grid, DPI) remain store-only. Callers hold mu.
func syncPlotDefaults(params map[string]any) {
	if v, ok := params["font.size"].(float64); ok {
		plot.DefaultFont.Size = vg.Points(v)
	}
	if v, ok := params["lines.linewidth"].(float64); ok {
		plotter.DefaultLineStyle.Width = vg.Points(v)
	}
	if v, ok := params["lines.markersize"].(float64); ok {
		// markersize is a diameter, glyph radius is half of it
		plotter.DefaultGlyphStyle.Radius = vg.Points(v / 2)
	}
	if v, ok := params["font.family"].(string); ok {
		switch v {
		case "serif":
			plot.DefaultFont.Variant = "Serif"
		case "sans-serif":
			plot.DefaultFont.Variant = "Sans"
		case "monospace":
			plot.DefaultFont.Variant = "Mono"
		}
	}
}

// resetPlotDefaults restores the captured library defaults. Callers hold mu.
func resetPlotDefaults() {
	plot.DefaultFont = initialFont
	plotter.DefaultLineStyle = initialLineStyle
	plotter.DefaultGlyphStyle = initialGlyphStyle
}

// TextHandler returns the text handler matching the current configuration:
// the LaTeX renderer when text.usetex is set, plain text otherwise. Assign
// the result to plot.Plot.TextHandler before adding titles or labels.
func TextHandler() text.Handler {
	if GetBool("text.usetex") {
		return text.Latex{Fonts: fontCache}
	}
	return text.Plain{Fonts: fontCache}
}
