package texprobe

import (
	"context"
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	ctx := context.Background()

	res := Fixed(true).Probe(ctx)
	if !res.Available || res.Path == "" {
		t.Errorf("Fixed(true).Probe() = %+v", res)
	}

	res = Fixed(false).Probe(ctx)
	if res.Available || res.Path != "" {
		t.Errorf("Fixed(false).Probe() = %+v", res)
	}
}

func TestFixedPath(t *testing.T) {
	res := FixedPath("/opt/texlive/bin/latex").Probe(context.Background())
	if !res.Available || res.Path != "/opt/texlive/bin/latex" {
		t.Errorf("FixedPath().Probe() = %+v", res)
	}
}

func TestNewDefaults(t *testing.T) {
	p := New()
	if p.Tool != "which" || p.Engine != "latex" {
		t.Errorf("New() = %+v", p)
	}
	if p.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", p.Timeout, DefaultTimeout)
	}
}

// Every failure mode must collapse to unavailable; Probe never errors or
// panics.
func TestProbeFailureModes(t *testing.T) {
	tests := []struct {
		name   string
		prober *ExecProber
	}{
		{
			name:   "lookup tool missing",
			prober: &ExecProber{Tool: "plotguide-no-such-lookup-tool", Engine: "latex", Timeout: time.Second},
		},
		{
			name:   "engine missing",
			prober: &ExecProber{Tool: "which", Engine: "plotguide-no-such-engine", Timeout: time.Second},
		},
		{
			name: "timeout",
			// The lookup command blocks longer than the bound.
			prober: &ExecProber{Tool: "sleep", Engine: "1", Timeout: 50 * time.Millisecond},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.prober.Probe(context.Background())
			if res.Available {
				t.Errorf("Probe() = %+v, want unavailable", res)
			}
			if res.Path != "" {
				t.Errorf("Path = %q, want empty", res.Path)
			}
		})
	}
}

func TestProbeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := New().Probe(ctx)
	if res.Available {
		t.Errorf("Probe() with canceled context = %+v, want unavailable", res)
	}
}

func TestProbeFindsKnownExecutable(t *testing.T) {
	// "sh" exists on any POSIX host, so the success path is exercised without
	// requiring a LaTeX installation.
	p := &ExecProber{Tool: "which", Engine: "sh", Timeout: time.Second}
	res := p.Probe(context.Background())
	if !res.Available {
		t.Skip("'which sh' failed; host without POSIX sh")
	}
	if res.Path == "" {
		t.Error("available probe returned empty path")
	}
}
