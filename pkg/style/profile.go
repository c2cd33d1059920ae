package style

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/jakharkaran/plotguide/pkg/style/rc"
	"github.com/jakharkaran/plotguide/pkg/stylerr"
)

// profileFile is the on-disk TOML shape:
//
//	name = "paper"
//
//	[params]
//	"figure.dpi" = 150
//	"axes.grid"  = true
type profileFile struct {
	Name   string         `toml:"name"`
	Params map[string]any `toml:"params"`
}

// typesetManaged keys are owned by the availability merge and may not be set
// from a profile; letting a profile flip text.usetex would bypass the probe.
var typesetManaged = map[string]bool{
	"text.usetex":         true,
	"text.latex.preamble": true,
	"font.serif":          true,
}

// LoadProfile reads a TOML profile and returns its parameters, validated
// against the rendering-configuration registry. Every key must be known, of
// the right kind, and not managed by the availability merge.
func LoadProfile(path string) (Params, error) {
	var file profileFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, stylerr.Wrap(stylerr.ErrCodeProfileNotFound, err, "profile %s", path)
		}
		return nil, stylerr.Wrap(stylerr.ErrCodeInvalidProfile, err, "profile %s", path)
	}

	params := make(Params, len(file.Params))
	for key, value := range file.Params {
		if typesetManaged[key] {
			return nil, stylerr.New(stylerr.ErrCodeInvalidProfile,
				"profile %s: key %q is managed by the typesetting probe and cannot be overridden", path, key)
		}
		v, err := rc.Validate(key, value)
		if err != nil {
			return nil, err
		}
		params[key] = v
	}
	return params, nil
}
