// Package texprobe detects whether a LaTeX engine is available on the host.
//
// Detection runs the external lookup tool ("which latex") with a short
// timeout. Every failure mode — lookup tool missing, nonzero exit, timeout,
// canceled context — collapses to "not available". Absence of a typesetting
// engine must degrade gracefully, so probing never returns an error.
//
// The [Prober] interface exists so callers can substitute a fixed result in
// tests instead of spawning a real subprocess:
//
//	res := texprobe.Fixed(false).Probe(ctx)
package texprobe

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds the external lookup. The lookup is a PATH search and
// normally returns in milliseconds; the bound only guards pathological hosts.
const DefaultTimeout = 5 * time.Second

const (
	defaultTool   = "which"
	defaultEngine = "latex"
)

// Result reports the outcome of a probe.
type Result struct {
	Path      string // resolved executable path, empty when unavailable
	Available bool
}

// Prober locates a typesetting engine on the host.
type Prober interface {
	Probe(ctx context.Context) Result
}

// ExecProber probes by running a lookup tool as a subprocess.
// The zero value is not usable; construct with New.
type ExecProber struct {
	Tool    string // lookup command, e.g. "which"
	Engine  string // executable to search for, e.g. "latex"
	Timeout time.Duration
}

// New returns an ExecProber for the standard "which latex" lookup with
// DefaultTimeout.
func New() *ExecProber {
	return &ExecProber{Tool: defaultTool, Engine: defaultEngine, Timeout: DefaultTimeout}
}

// Probe runs the lookup. Exit code 0 with a non-empty first output line means
// available; anything else, including a timeout, means unavailable.
func (p *ExecProber) Probe(ctx context.Context) Result {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, p.Tool, p.Engine).Output()
	if err != nil {
		return Result{}
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return Result{}
	}
	// Some lookup tools print one candidate per line; the first wins.
	if i := strings.IndexByte(path, '\n'); i >= 0 {
		path = strings.TrimSpace(path[:i])
	}
	return Result{Path: path, Available: true}
}

// Fixed returns a Prober that always reports the given availability.
// When available, the reported path is a placeholder. Intended for tests.
func Fixed(available bool) Prober {
	if available {
		return fixedProber{Result{Path: "/usr/bin/latex", Available: true}}
	}
	return fixedProber{}
}

// FixedPath returns a Prober that reports the engine available at path.
func FixedPath(path string) Prober {
	return fixedProber{Result{Path: path, Available: true}}
}

type fixedProber struct {
	res Result
}

func (p fixedProber) Probe(context.Context) Result { return p.res }
