package reader

import (
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// fontInfo carries the per-font properties the text assembler needs.
type fontInfo struct {
	// name is the BaseFont name with any subset prefix removed,
	// e.g. "ABCDEF+Helvetica-Bold" becomes "Helvetica-Bold".
	name string

	// bold is derived from the font name.
	bold bool

	// composite marks Type0 fonts, whose show strings hold two-byte
	// codes rather than single-byte WinAnsi codes.
	composite bool
}

// pageFonts resolves the /Font entries of a page's resource dictionary
// into a lookup table keyed by resource alias ("F1", "TT2", ...).
func (r *Reader) pageFonts(res types.Dict) map[string]fontInfo {
	fonts := make(map[string]fontInfo)
	if res == nil {
		return fonts
	}

	obj, found := res.Find("Font")
	if !found {
		return fonts
	}
	fontDict, err := r.ctx.DereferenceDict(obj)
	if err != nil || fontDict == nil {
		return fonts
	}

	for alias, entry := range fontDict {
		fd, err := r.ctx.DereferenceDict(entry)
		if err != nil || fd == nil {
			continue
		}

		var info fontInfo
		if bf, ok := fd.Find("BaseFont"); ok {
			if name, ok := bf.(types.Name); ok {
				info.name = trimSubsetPrefix(name.Value())
			}
		}
		if st, ok := fd.Find("Subtype"); ok {
			if name, ok := st.(types.Name); ok && name.Value() == "Type0" {
				info.composite = true
			}
		}
		info.bold = boldFontName(info.name)

		fonts[alias] = info
	}

	return fonts
}

// trimSubsetPrefix drops the "ABCDEF+" tag embedded subsets carry.
func trimSubsetPrefix(name string) string {
	if len(name) > 7 && name[6] == '+' {
		tag := name[:6]
		upper := true
		for _, c := range tag {
			if c < 'A' || c > 'Z' {
				upper = false
				break
			}
		}
		if upper {
			return name[7:]
		}
	}
	return name
}

// boldFontName reports whether a font name indicates a bold face.
func boldFontName(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
