package outline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tuning knobs for detection, level assignment and
// the page-furniture filter. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// Threshold is the score a fragment must strictly exceed to become
	// a heading candidate. Ties lose: the detector prefers a missed
	// heading over a spurious one.
	Threshold float64 `yaml:"threshold"`

	// SizeWeight scales the font-size signal. A fragment whose size is
	// ratio times the body size contributes SizeWeight*(ratio-1),
	// capped at SizeWeight.
	SizeWeight float64 `yaml:"size_weight"`

	// BoldWeight is added for bold fragments.
	BoldWeight float64 `yaml:"bold_weight"`

	// IsolationWeight is added when the vertical gap to both same-page
	// neighbours exceeds GapFactor times the fragment height. Page
	// edges count as isolated sides.
	IsolationWeight float64 `yaml:"isolation_weight"`
	GapFactor       float64 `yaml:"gap_factor"`

	// BrevityWeight is added when the rune count is under
	// ShortLineRatio of the median body line.
	BrevityWeight  float64 `yaml:"brevity_weight"`
	ShortLineRatio float64 `yaml:"short_line_ratio"`

	// LongPenalty (negative) is applied to fragments longer than
	// LongLineRatio of the median body line, or over MaxRunes.
	LongPenalty   float64 `yaml:"long_penalty"`
	LongLineRatio float64 `yaml:"long_line_ratio"`
	MaxRunes      int     `yaml:"max_runes"`

	// LexicalWeight is added for section numbering, a leading bullet,
	// or all-caps text.
	LexicalWeight float64 `yaml:"lexical_weight"`

	// PunctPenalty (negative) is applied to unnumbered text ending in
	// a sentence terminator.
	PunctPenalty float64 `yaml:"punct_penalty"`

	// FurnitureMinPages is the number of distinct pages on which
	// repeated edge text becomes page furniture. Zero disables the
	// filter.
	FurnitureMinPages int `yaml:"furniture_min_pages"`

	// FurnitureBand is the fraction of the page height at the top and
	// bottom scanned for furniture.
	FurnitureBand float64 `yaml:"furniture_band"`
}

// DefaultConfig returns the tuning used when no overrides are given.
func DefaultConfig() Config {
	return Config{
		Threshold:         0.5,
		SizeWeight:        1.0,
		BoldWeight:        0.2,
		IsolationWeight:   0.15,
		GapFactor:         1.5,
		BrevityWeight:     0.1,
		ShortLineRatio:    0.7,
		LongPenalty:       -0.2,
		LongLineRatio:     1.5,
		MaxRunes:          120,
		LexicalWeight:     0.2,
		PunctPenalty:      -0.15,
		FurnitureMinPages: 3,
		FurnitureBand:     0.12,
	}
}

// LoadConfig reads a YAML file of overrides on top of DefaultConfig.
// Keys not present in the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
