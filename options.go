package colourvis

import "github.com/gogpu/colourvis/internal/colour"

// ConvertOption configures a single XYZToColourspaceModel call.
// Model-specific options are validated against the models on the resolved
// conversion path; an option none of them accepts fails the call.
//
// Example:
//
//	// Reference-range CIE L*a*b* (L* in [0, 100]).
//	lab, err := colourvis.XYZToColourspaceModel(xyz, colourvis.IlluminantD65, "CIE Lab",
//	    colourvis.WithNormaliseModel(false))
//
//	// HLG variant of ICtCp.
//	ictcp, err := colourvis.XYZToColourspaceModel(xyz, colourvis.IlluminantD65, "ICtCp",
//	    colourvis.WithMethod("ITU-R BT.2100-2 HLG"))
type ConvertOption func(*convertOptions)

// convertOptions holds the per-call configuration.
type convertOptions struct {
	normalise *bool
	params    colour.Params
}

// WithNormaliseModel overrides the converter's NormaliseModel setting for one
// call. false rescales the result to the model's reference range.
func WithNormaliseModel(normalise bool) ConvertOption {
	return func(o *convertOptions) {
		o.normalise = &normalise
	}
}

// WithMethod selects a model variant. Accepted by "ICtCp"
// ("ITU-R BT.2100-2 PQ", "ITU-R BT.2100-2 HLG", "ITU-R BT.2100-1 PQ",
// "ITU-R BT.2100-1 HLG", "Dolby 2016") and "DIN99" ("DIN99",
// "ASTMD2244-07", "DIN99b", "DIN99c").
func WithMethod(method string) ConvertOption {
	return func(o *convertOptions) {
		o.params.SetMethod(method)
	}
}

// WithPeakLuminance sets the ST 2084 peak luminance in cd/m² used by the PQ
// variants of "ICtCp". The default is 10000.
func WithPeakLuminance(lp float64) ConvertOption {
	return func(o *convertOptions) {
		o.params.SetPeakLuminance(lp)
	}
}

// WithKab overrides the chromaticity coefficients of "Hunter Lab" and
// "Hunter Rdab", which otherwise derive from the illuminant.
func WithKab(ka, kb float64) ConvertOption {
	return func(o *convertOptions) {
		o.params.SetKab(ka, kb)
	}
}

// WithDIN99Weights sets the DIN99 lightness (k_E) and chroma (k_CH) weights.
func WithDIN99Weights(kE, kCH float64) ConvertOption {
	return func(o *convertOptions) {
		o.params.SetDIN99Weights(kE, kCH)
	}
}

// ConverterOption configures a Converter during creation.
type ConverterOption func(*converterOptions)

// converterOptions holds optional configuration for Converter creation.
type converterOptions struct {
	workers           int
	parallelThreshold int
}

// defaultConverterOptions returns the default converter options.
func defaultConverterOptions() converterOptions {
	return converterOptions{
		workers:           0, // GOMAXPROCS
		parallelThreshold: colour.DefaultParallelThreshold,
	}
}

// WithWorkers caps the goroutines used to convert large arrays.
// Zero or negative uses GOMAXPROCS; 1 disables chunking.
func WithWorkers(n int) ConverterOption {
	return func(o *converterOptions) {
		o.workers = n
	}
}

// WithParallelThreshold sets the number of triplets from which conversions
// are split across goroutines.
func WithParallelThreshold(triplets int) ConverterOption {
	return func(o *converterOptions) {
		if triplets > 0 {
			o.parallelThreshold = triplets
		}
	}
}
