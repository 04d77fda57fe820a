package reader

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decodeString maps the bytes of a show-text string to UTF-8. Simple
// fonts are treated as WinAnsi (cp1252), which covers the standard
// fonts and the common producer toolchains. Composite fonts and
// strings that look like big-endian UTF-16 go through the UTF-16
// decoder instead.
func decodeString(raw string, f fontInfo) string {
	b := []byte(raw)
	if len(b) == 0 {
		return ""
	}
	if f.composite || hasUTF16Shape(b) {
		if s, err := decodeUTF16(b); err == nil {
			return s
		}
	}
	return decodeWinAnsi(b)
}

func decodeWinAnsi(b []byte) string {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

func decodeUTF16(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// hasUTF16Shape reports whether b looks like big-endian UTF-16: a BOM,
// or an even length with mostly zero high bytes.
func hasUTF16Shape(b []byte) bool {
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		return true
	}
	if len(b) < 4 || len(b)%2 != 0 {
		return false
	}
	zeros := 0
	for i := 0; i < len(b); i += 2 {
		if b[i] == 0 {
			zeros++
		}
	}
	return zeros > len(b)/4
}
