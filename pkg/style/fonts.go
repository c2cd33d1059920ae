package style

import "github.com/flopp/go-findfont"

// mathFontFiles maps a mathtext fontset to a representative font file to
// look up on the host. The lookup is informational: a missing file does not
// invalidate the fontset, since the plotting library bundles its own faces.
var mathFontFiles = map[string]string{
	"cm":          "cmunrm.ttf", // Computer Modern Roman
	"dejavuserif": "DejaVuSerif.ttf",
	"dejavusans":  "DejaVuSans.ttf",
}

// ResolveMathFont locates the host font file backing the given mathtext
// fontset. It returns the resolved path and true on success, or "" and false
// when the fontset is unrecognized or the file is not installed.
func ResolveMathFont(fontset string) (string, bool) {
	file, ok := mathFontFiles[fontset]
	if !ok {
		return "", false
	}
	path, err := findfont.Find(file)
	if err != nil {
		return "", false
	}
	return path, true
}
