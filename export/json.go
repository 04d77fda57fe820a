package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/rubrica/model"
)

// Options controls JSON rendering.
type Options struct {
	// Compact disables indentation and emits a single line.
	Compact bool
}

// WriteJSON writes the result to w as JSON, indented with two spaces
// unless Compact is set. The output always ends with a newline.
func WriteJSON(w io.Writer, res model.Result, opts Options) error {
	encoder := json.NewEncoder(w)
	if !opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(res); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return nil
}

// WriteFile writes the result to the named file, creating or
// truncating it.
func WriteFile(filename string, res model.Result, opts Options) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	return WriteJSON(f, res, opts)
}

// ToJSON renders the result as a JSON string.
func ToJSON(res model.Result, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, res, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}
