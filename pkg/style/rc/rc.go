// Package rc maintains the process-global rendering configuration.
//
// The package plays the role matplotlib's rcParams plays for Python plotting:
// a single, process-wide store of default styling values consulted by later
// figure construction. Keys are validated against a fixed registry — unknown
// keys and kind-mismatched values are rejected with coded errors rather than
// silently dropped, so a bad configuration fails loudly at apply time.
//
// Values the underlying plotting library can express are pushed into
// gonum.org/v1/plot package globals on every successful Update; the rest stay
// readable through Get and Snapshot for consumers that draw their own
// decorations (tick marks, spines, grids).
//
// The store is last-writer-wins, matching the ownership model of the plotting
// library's own globals. There is no transactionality: an Update that fails
// validation leaves the store untouched.
package rc

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jakharkaran/plotguide/pkg/stylerr"
)

// Kind describes the value type expected for a registry key.
type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindString
	KindStringList
)

// String returns a human-readable kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindStringList:
		return "string list"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keySpec describes one registry entry.
type keySpec struct {
	kind Kind
	enum []string // allowed values for string kinds; nil means unrestricted
}

// registry enumerates every rendering-configuration key this module accepts,
// with the expected value kind. Updates referencing keys outside this set fail
// with UNKNOWN_KEY, mirroring how the plotting ecosystem rejects typos.
var registry = map[string]keySpec{
	"figure.dpi":       {kind: KindNumber},
	"savefig.dpi":      {kind: KindNumber},
	"figure.facecolor": {kind: KindString},
	"axes.facecolor":   {kind: KindString},

	"font.size":        {kind: KindNumber},
	"axes.titlesize":   {kind: KindNumber},
	"axes.labelsize":   {kind: KindNumber},
	"xtick.labelsize":  {kind: KindNumber},
	"ytick.labelsize":  {kind: KindNumber},
	"legend.fontsize":  {kind: KindNumber},
	"figure.titlesize": {kind: KindNumber},

	"lines.linewidth":  {kind: KindNumber},
	"lines.markersize": {kind: KindNumber},
	"patch.linewidth":  {kind: KindNumber},

	"xtick.direction":     {kind: KindString, enum: []string{"in", "out", "inout"}},
	"ytick.direction":     {kind: KindString, enum: []string{"in", "out", "inout"}},
	"xtick.top":           {kind: KindBool},
	"xtick.bottom":        {kind: KindBool},
	"ytick.left":          {kind: KindBool},
	"ytick.right":         {kind: KindBool},
	"xtick.minor.visible": {kind: KindBool},
	"ytick.minor.visible": {kind: KindBool},

	"axes.grid":  {kind: KindBool},
	"grid.alpha": {kind: KindNumber},

	"axes.spines.top":    {kind: KindBool},
	"axes.spines.bottom": {kind: KindBool},
	"axes.spines.left":   {kind: KindBool},
	"axes.spines.right":  {kind: KindBool},

	"text.usetex":         {kind: KindBool},
	"text.latex.preamble": {kind: KindString},
	"font.family":         {kind: KindString, enum: []string{"serif", "sans-serif", "monospace", "cursive", "fantasy"}},
	"font.serif":          {kind: KindStringList},
	"mathtext.fontset":    {kind: KindString, enum: []string{"cm", "dejavuserif", "dejavusans", "stix", "stixsans"}},
}

// Known reports whether key exists in the registry.
func Known(key string) bool {
	_, ok := registry[key]
	return ok
}

// Keys returns all registry keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var (
	mu     sync.RWMutex
	global = map[string]any{}
)

// Update validates every key/value pair and, on success, writes all of them
// into the global store and syncs the expressible subset into the plotting
// library's package globals. A validation failure leaves both untouched and
// the error carries an UNKNOWN_KEY or INVALID_VALUE code.
func Update(params map[string]any) error {
	normalized := make(map[string]any, len(params))
	for key, value := range params {
		v, err := Validate(key, value)
		if err != nil {
			return err
		}
		normalized[key] = v
	}

	mu.Lock()
	defer mu.Unlock()
	for k, v := range normalized {
		global[k] = v
	}
	syncPlotDefaults(global)
	return nil
}

// Validate checks a single key/value pair against the registry and returns
// the normalized value (integers become float64, []any becomes []string).
func Validate(key string, value any) (any, error) {
	spec, ok := registry[key]
	if !ok {
		return nil, stylerr.New(stylerr.ErrCodeUnknownKey, "unknown rendering-configuration key %q", key)
	}

	switch spec.kind {
	case KindBool:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case KindNumber:
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
	case KindString:
		if v, ok := value.(string); ok {
			if spec.enum != nil && !slices.Contains(spec.enum, v) {
				return nil, stylerr.New(stylerr.ErrCodeInvalidValue,
					"key %q: value %q not in allowed set %v", key, v, spec.enum)
			}
			return v, nil
		}
	case KindStringList:
		switch v := value.(type) {
		case []string:
			return slices.Clone(v), nil
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, stylerr.New(stylerr.ErrCodeInvalidValue,
						"key %q: list element %v is not a string", key, item)
				}
				out = append(out, s)
			}
			return out, nil
		}
	}
	return nil, stylerr.New(stylerr.ErrCodeInvalidValue,
		"key %q: value %v (%T) is not a %s", key, value, value, spec.kind)
}

// Get returns the current value for key, if set.
func Get(key string) (any, bool) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := global[key]
	return v, ok
}

// GetBool returns the boolean value for key, or false when unset or not a bool.
func GetBool(key string) bool {
	v, ok := Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Snapshot returns a copy of the current store.
func Snapshot() map[string]any {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]any, len(global))
	for k, v := range global {
		out[k] = v
	}
	return out
}

// Reset clears the store and restores the plotting library's own defaults.
// Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = map[string]any{}
	resetPlotDefaults()
}
