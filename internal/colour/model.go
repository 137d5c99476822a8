package colour

import (
	"slices"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Model names.
const (
	ModelXYZ        = "CIE XYZ"
	ModelXYY        = "CIE xyY"
	ModelXY         = "CIE 1931"
	ModelLab        = "CIE Lab"
	ModelLCHab      = "CIE LCHab"
	ModelLuv        = "CIE Luv"
	ModelLCHuv      = "CIE LCHuv"
	ModelUCS        = "CIE UCS"
	ModelUV1960     = "CIE 1960 UCS"
	ModelUVPrime    = "CIE 1976 UCS"
	ModelUVW        = "CIE UVW"
	ModelDIN99      = "DIN99"
	ModelHunterLab  = "Hunter Lab"
	ModelHunterRdab = "Hunter Rdab"
	ModelIPT        = "IPT"
	ModelOklab      = "Oklab"
	ModelJzazbz     = "Jzazbz"
	ModelICtCp      = "ICtCp"
	ModelSRGB       = "sRGB"
)

// model describes a node of the conversion graph.
type model struct {
	name       string
	components int
	// scale maps the domain-range-scale-1 representation to the model's
	// reference range. nil means identity.
	scale []float64
	// accepts lists the options conversions into this model understand.
	accepts Option
}

var models = []*model{
	{name: ModelXYZ, components: 3, scale: []float64{1, 1, 1}},
	{name: ModelXYY, components: 3, scale: []float64{1, 1, 1}},
	{name: ModelXY, components: 2, scale: []float64{1, 1}},
	{name: ModelLab, components: 3, scale: []float64{100, 100, 100}},
	{name: ModelLCHab, components: 3, scale: []float64{100, 100, 360}},
	{name: ModelLuv, components: 3, scale: []float64{100, 100, 100}},
	{name: ModelLCHuv, components: 3, scale: []float64{100, 100, 360}},
	{name: ModelUCS, components: 3, scale: []float64{1, 1, 1}},
	{name: ModelUV1960, components: 2, scale: []float64{1, 1}},
	{name: ModelUVPrime, components: 2, scale: []float64{1, 1}},
	{name: ModelUVW, components: 3, scale: []float64{100, 100, 100}},
	{name: ModelDIN99, components: 3, scale: []float64{100, 100, 100}, accepts: OptionMethod | OptionDIN99Weights},
	{name: ModelHunterLab, components: 3, scale: []float64{100, 100, 100}, accepts: OptionKab},
	{name: ModelHunterRdab, components: 3, scale: []float64{100, 100, 100}, accepts: OptionKab},
	{name: ModelIPT, components: 3, scale: []float64{1, 1, 1}},
	{name: ModelOklab, components: 3, scale: []float64{1, 1, 1}},
	{name: ModelJzazbz, components: 3, scale: []float64{1, 1, 1}},
	{name: ModelICtCp, components: 3, scale: []float64{1, 1, 1}, accepts: OptionMethod | OptionPeakLuminance},
	{name: ModelSRGB, components: 3},
}

var modelIndex = func() map[string]*model {
	idx := make(map[string]*model, len(models))
	for _, m := range models {
		idx[Canonical(m.name)] = m
	}
	return idx
}()

// Canonical returns the lookup key for a model name: case-folded with
// spaces, hyphens, underscores and dots removed, so "cie-lab" and "CIE Lab"
// name the same model.
func Canonical(name string) string {
	t := transform.Chain(runes.Remove(runes.Predicate(isNameSeparator)), cases.Fold())
	s, _, err := transform.String(t, name)
	if err != nil {
		return name
	}
	return s
}

func isNameSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
}

func lookup(name string) (*model, bool) {
	m, ok := modelIndex[Canonical(name)]
	return m, ok
}

// Models returns the supported model names in registration order.
func Models() []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.name
	}
	return names
}

// Components returns the number of components of a model.
func Components(name string) (int, bool) {
	m, ok := lookup(name)
	if !ok {
		return 0, false
	}
	return m.components, true
}

// ScaleFactor returns the per-component factor mapping a
// domain-range-scale-1 value of the model to its reference range. A nil
// slice with ok == true means the model is not rescaled.
func ScaleFactor(name string) (factors []float64, ok bool) {
	m, ok := lookup(name)
	if !ok {
		return nil, false
	}
	return slices.Clone(m.scale), true
}
