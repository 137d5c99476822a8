package colour

import "math"

// hunterKab returns the Hunter K_a and K_b coefficients for a reference white
// given on the 0-100 scale.
func hunterKab(Xn, Yn, Zn float64) (ka, kb float64) {
	return 175.0 / 198.04 * (Xn + Yn), 70.0 / 218.11 * (Yn + Zn)
}

func hunterCoefficients(p *Params, w white) (Xn, Yn, Zn, ka, kb float64) {
	Xn, Yn, Zn = w.XYZ[0]*100, w.XYZ[1]*100, w.XYZ[2]*100
	if p.Has(OptionKab) {
		return Xn, Yn, Zn, p.Ka, p.Kb
	}
	ka, kb = hunterKab(Xn, Yn, Zn)
	return Xn, Yn, Zn, ka, kb
}

// newHunterLab builds the CIE XYZ to Hunter L,a,b step.
// Black has no defined opponent axes and yields NaN for a and b.
func newHunterLab(p *Params, w white) (pixelFunc, error) {
	Xn, Yn, Zn, ka, kb := hunterCoefficients(p, w)
	return func(v [3]float64) [3]float64 {
		X, Y, Z := v[0]*100, v[1]*100, v[2]*100
		yr := Y / Yn
		sy := math.Sqrt(yr)
		L := 100 * sy
		a := ka * ((X/Xn - yr) / sy)
		b := kb * ((yr - Z/Zn) / sy)
		return [3]float64{L / 100, a / 100, b / 100}
	}, nil
}

// newHunterRdab builds the CIE XYZ to Hunter Rd,a,b step.
func newHunterRdab(p *Params, w white) (pixelFunc, error) {
	Xn, Yn, Zn, ka, kb := hunterCoefficients(p, w)
	return func(v [3]float64) [3]float64 {
		X, Y, Z := v[0]*100, v[1]*100, v[2]*100
		f := 0.51 * ((21 + 0.2*Y) / (1 + 0.2*Y))
		yr := Y / Yn
		a := ka * f * (X/Xn - yr)
		b := kb * f * (yr - Z/Zn)
		return [3]float64{Y / 100, a / 100, b / 100}
	}, nil
}
