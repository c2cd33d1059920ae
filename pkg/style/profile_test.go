package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jakharkaran/plotguide/pkg/stylerr"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
name = "paper"

[params]
"figure.dpi" = 150
"axes.grid"  = true
"xtick.direction" = "out"
`)

	params, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error: %v", err)
	}
	if got := params["figure.dpi"]; got != 150.0 {
		t.Errorf("figure.dpi = %v (%T), want float64 150", got, got)
	}
	if got := params["axes.grid"]; got != true {
		t.Errorf("axes.grid = %v, want true", got)
	}
	if got := params["xtick.direction"]; got != "out" {
		t.Errorf("xtick.direction = %v, want out", got)
	}
}

func TestLoadProfileErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode stylerr.Code
	}{
		{
			name:     "unknown key",
			content:  "[params]\n\"no.such.key\" = 1\n",
			wantCode: stylerr.ErrCodeUnknownKey,
		},
		{
			name:     "wrong kind",
			content:  "[params]\n\"axes.grid\" = \"yes\"\n",
			wantCode: stylerr.ErrCodeInvalidValue,
		},
		{
			name:     "enum violation",
			content:  "[params]\n\"xtick.direction\" = \"sideways\"\n",
			wantCode: stylerr.ErrCodeInvalidValue,
		},
		{
			name:     "typeset-managed key",
			content:  "[params]\n\"text.usetex\" = true\n",
			wantCode: stylerr.ErrCodeInvalidProfile,
		},
		{
			name:     "malformed toml",
			content:  "[params\n",
			wantCode: stylerr.ErrCodeInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProfile(t, tt.content)
			_, err := LoadProfile(path)
			if err == nil {
				t.Fatal("LoadProfile() succeeded, want error")
			}
			if !stylerr.Is(err, tt.wantCode) {
				t.Errorf("error code = %q, want %q (err: %v)", stylerr.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.toml"))
	if !stylerr.Is(err, stylerr.ErrCodeProfileNotFound) {
		t.Errorf("error = %v, want PROFILE_NOT_FOUND", err)
	}
}

func TestResolveMathFontUnknownFontset(t *testing.T) {
	if path, ok := ResolveMathFont("no-such-fontset"); ok {
		t.Errorf("ResolveMathFont resolved %q for unknown fontset", path)
	}
}
