package style_test

import (
	"context"
	"fmt"

	"github.com/jakharkaran/plotguide/pkg/style"
	"github.com/jakharkaran/plotguide/pkg/texprobe"
)

// Pinning the probe keeps the example deterministic on hosts with and
// without a LaTeX installation.
func Example() {
	cfg := style.Load(context.Background(), style.WithProber(texprobe.Fixed(false)))

	fmt.Println(cfg.Available)
	fmt.Println(cfg.Params["font.family"])
	fmt.Println(cfg.Params["mathtext.fontset"])
	// Output:
	// false
	// serif
	// dejavuserif
}

func ExampleMerge() {
	merged := style.Merge(style.Base(), style.Typeset())

	fmt.Println(merged["text.usetex"])
	fmt.Println(merged["mathtext.fontset"])
	// Output:
	// true
	// cm
}
