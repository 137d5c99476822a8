package colourvis

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-yaml"
)

// Settings is the immutable configuration of a Converter.
type Settings struct {
	// NormaliseModel returns converted values in domain-range scale 1 when
	// true. When false they are rescaled to each model's reference range.
	NormaliseModel bool `yaml:"normalise_model"`

	// ScaleFactors overrides the built-in reference-range factors per model.
	// A single factor scales every component.
	ScaleFactors map[string][]float64 `yaml:"scale_factors,omitempty"`
}

// DefaultSettings returns the settings used by the package-level functions.
func DefaultSettings() Settings {
	return Settings{NormaliseModel: true}
}

// LoadSettings decodes YAML settings from r. Keys that are absent keep their
// DefaultSettings value.
//
//	normalise_model: false
//	scale_factors:
//	  CIE Lab: [100]
//	  Hunter Lab: [100, 100, 100]
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return Settings{}, fmt.Errorf("colourvis: decode settings: %w", err)
	}
	return s.clone(), nil
}

// clone returns a deep copy so a Converter never shares the caller's maps.
func (s Settings) clone() Settings {
	out := Settings{NormaliseModel: s.NormaliseModel}
	if s.ScaleFactors != nil {
		out.ScaleFactors = make(map[string][]float64, len(s.ScaleFactors))
		for k, v := range s.ScaleFactors {
			out.ScaleFactors[k] = slices.Clone(v)
		}
	}
	return out
}
