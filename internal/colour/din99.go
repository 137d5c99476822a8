package colour

import (
	"fmt"
	"math"
)

// din99Method holds the DIN99 family coefficients c1..c7.
type din99Method struct {
	c1, c2, c3, c4, c5, c6, c7 float64
}

const din99Default = "DIN99"

var din99Methods = map[string]din99Method{
	"ASTMD2244-07": {105.509, 0.0158, 16, 0.7, 1 / 0.045, 0.045, 0},
	"DIN99":        {105.509, 0.0158, 16, 0.7, 1 / 0.045, 0.045, 0},
	"DIN99b":       {303.67, 0.0039, 26, 0.83, 23.0, 0.075, 26},
	"DIN99c":       {317.65, 0.0037, 0, 0.94, 23.0, 0.066, 0},
}

// newDIN99 builds the CIE L*a*b* to DIN99 step. Both sides are scaled to
// [0, 1].
func newDIN99(p *Params, _ white) (pixelFunc, error) {
	name := din99Default
	if p.Has(OptionMethod) && p.Method != "" {
		name = p.Method
	}
	m, ok := din99Methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: DIN99 method %q", ErrUnsupportedMethod, name)
	}
	kE, kCH := 1.0, 1.0
	if p.Has(OptionDIN99Weights) {
		kE, kCH = p.KE, p.KCH
	}

	sinC, cosC := math.Sincos(m.c3 * math.Pi / 180)
	rot := m.c7 * math.Pi / 180
	return func(v [3]float64) [3]float64 {
		L, a, b := v[0]*100, v[1]*100, v[2]*100
		e := cosC*a + sinC*b
		f := m.c4 * (-sinC*a + cosC*b)
		G := math.Hypot(e, f)
		h := math.Atan2(f, e) + rot

		C99 := m.c5 * math.Log1p(m.c6*G) / (kCH * kE)
		L99 := m.c1 * math.Log1p(m.c2*L) / kE
		return [3]float64{L99 / 100, C99 * math.Cos(h) / 100, C99 * math.Sin(h) / 100}
	}, nil
}
