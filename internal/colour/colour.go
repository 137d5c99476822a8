// Package colour implements the colourspace conversion graph used by
// colourvis.
//
// Models are nodes of a directed graph whose edges are conversion steps.
// [Convert] resolves the shortest path between two models, validates the
// caller's [Params] against the options every model on the path accepts, and
// applies the steps to each triplet of the input. All values on the graph use
// the domain-range-scale-1 representation: CIE XYZ with Y = 1 for the
// reference white, CIE L*a*b* with L* in [0, 1], hue angles in [0, 1).
package colour

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedModel is returned for model names not in the graph.
	ErrUnsupportedModel = errors.New("colour: unsupported colourspace model")

	// ErrNoPath is returned when two models are not connected.
	ErrNoPath = errors.New("colour: no conversion path")

	// ErrUnsupportedOption is returned when an option is set that no model on
	// the conversion path accepts.
	ErrUnsupportedOption = errors.New("colour: option not accepted by conversion")

	// ErrUnsupportedMethod is returned for unknown method names.
	ErrUnsupportedMethod = errors.New("colour: unsupported method")

	// ErrIlluminant is returned for malformed illuminants.
	ErrIlluminant = errors.New("colour: illuminant must be CIE xy or CIE xyY")

	// ErrComponents is returned when the input last axis does not match the
	// source model.
	ErrComponents = errors.New("colour: component count mismatch")
)

// Option identifies a conversion parameter in a Params bag.
type Option uint8

const (
	// OptionMethod selects a model variant (ICtCp, DIN99).
	OptionMethod Option = 1 << iota
	// OptionPeakLuminance sets the PQ peak luminance (ICtCp).
	OptionPeakLuminance
	// OptionKab sets the Hunter chromaticity coefficients.
	OptionKab
	// OptionDIN99Weights sets the DIN99 lightness and chroma weights.
	OptionDIN99Weights
)

var optionNames = []struct {
	opt  Option
	name string
}{
	{OptionMethod, "method"},
	{OptionPeakLuminance, "peak_luminance"},
	{OptionKab, "K_ab"},
	{OptionDIN99Weights, "k_E/k_CH"},
}

// String lists the option names contained in o.
func (o Option) String() string {
	var names []string
	for _, n := range optionNames {
		if o&n.opt != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Params is the explicit parameter bag passed to conversion steps.
// The zero value selects every model default.
type Params struct {
	// Illuminant is the reference white as CIE xy (len 2) or CIE xyY (len 3).
	Illuminant []float64

	Method        string
	PeakLuminance float64
	Ka, Kb        float64
	KE, KCH       float64

	set Option
}

// SetMethod selects a model variant.
func (p *Params) SetMethod(method string) {
	p.Method = method
	p.set |= OptionMethod
}

// SetPeakLuminance sets the PQ peak luminance in cd/m².
func (p *Params) SetPeakLuminance(lp float64) {
	p.PeakLuminance = lp
	p.set |= OptionPeakLuminance
}

// SetKab overrides the Hunter K_a and K_b coefficients.
func (p *Params) SetKab(ka, kb float64) {
	p.Ka, p.Kb = ka, kb
	p.set |= OptionKab
}

// SetDIN99Weights sets the DIN99 k_E and k_CH weights.
func (p *Params) SetDIN99Weights(kE, kCH float64) {
	p.KE, p.KCH = kE, kCH
	p.set |= OptionDIN99Weights
}

// Set returns the options explicitly set on p.
func (p *Params) Set() Option { return p.set }

// Has reports whether opt was explicitly set.
func (p *Params) Has(opt Option) bool { return p.set&opt != 0 }
