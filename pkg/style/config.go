package style

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jakharkaran/plotguide/pkg/style/rc"
	"github.com/jakharkaran/plotguide/pkg/texprobe"
)

// Config is a fully merged styling configuration. It is built once by Load
// and immutable afterward; nothing touches global rendering state until the
// caller invokes Apply.
type Config struct {
	// Available reports whether a LaTeX engine was found on the host.
	Available bool

	// EnginePath is the resolved engine executable, empty when unavailable.
	EnginePath string

	// Params is the merged parameter mapping: every base key plus either the
	// typeset set or the two-key fallback override.
	Params Params
}

type loader struct {
	prober  texprobe.Prober
	timeout time.Duration
	logger  *log.Logger
	profile Params
}

// Option configures Load.
type Option func(*loader)

// WithProber substitutes the availability probe. Tests use
// texprobe.Fixed to pin a branch without spawning a subprocess.
func WithProber(p texprobe.Prober) Option {
	return func(l *loader) { l.prober = p }
}

// WithTimeout bounds the default exec probe. Ignored when WithProber is set.
func WithTimeout(d time.Duration) Option {
	return func(l *loader) { l.timeout = d }
}

// WithLogger routes status and warning messages to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *loader) { l.logger = logger }
}

// WithProfile overlays additional parameters onto the base set before the
// availability merge. Typeset and fallback keys still win on collision.
func WithProfile(p Params) Option {
	return func(l *loader) { l.profile = p }
}

// Load probes the host for a LaTeX engine and builds the merged
// configuration. Probe failures of any sort select the fallback branch; Load
// itself never fails.
func Load(ctx context.Context, opts ...Option) *Config {
	l := loader{timeout: texprobe.DefaultTimeout, logger: log.Default()}
	for _, opt := range opts {
		opt(&l)
	}
	if l.prober == nil {
		p := texprobe.New()
		p.Timeout = l.timeout
		l.prober = p
	}

	res := l.prober.Probe(ctx)
	if res.Available {
		l.logger.Debug("LaTeX engine located", "path", res.Path)
	} else {
		l.logger.Warn("LaTeX not found; falling back to standard fonts. Install a LaTeX distribution for typeset-quality text.")
	}

	return &Config{
		Available:  res.Available,
		EnginePath: res.Path,
		Params:     merged(res.Available, l.profile),
	}
}

// merged builds the parameter mapping for the given availability flag.
// Pure: same inputs always produce the same mapping.
func merged(available bool, profile Params) Params {
	overlays := make([]Params, 0, 2)
	if profile != nil {
		overlays = append(overlays, profile)
	}
	if available {
		overlays = append(overlays, Typeset())
	} else {
		overlays = append(overlays, Fallback())
	}
	return Merge(Base(), overlays...)
}

// Apply pushes every merged key into the process-global rendering
// configuration, overwriting prior values. Unknown keys or invalid values are
// rejected by the registry and the error propagates unmodified.
func (c *Config) Apply() error {
	return rc.Update(map[string]any(c.Params))
}

// FontFamily returns the merged font.family value.
func (c *Config) FontFamily() string {
	v, _ := c.Params["font.family"].(string)
	return v
}

// MathFontset returns the merged mathtext.fontset value.
func (c *Config) MathFontset() string {
	v, _ := c.Params["mathtext.fontset"].(string)
	return v
}
