package rubrica

import (
	"github.com/tsawler/rubrica/outline"
)

// extractOptions holds configuration for outline extraction.
type extractOptions struct {
	config outline.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		config: outline.DefaultConfig(),
	}
}

// clone creates a copy of extractOptions. Config carries only value
// fields, so a plain copy is deep enough.
func (o extractOptions) clone() extractOptions {
	return o
}
