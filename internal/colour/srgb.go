package colour

import "math"

// IEC 61966-2-1 sRGB primaries, D65 white.
var (
	srgbToXYZ = mat3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	xyzToSRGBLinear = srgbToXYZ.inverse()
)

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// newXYZToSRGB builds the CIE XYZ to gamma-encoded sRGB step. XYZ under a
// white other than D65 is adapted with CAT02 first. Values outside the gamut
// are not clipped.
func newXYZToSRGB(_ *Params, w white) (pixelFunc, error) {
	m := fromD65(xyzToSRGBLinear, w)
	return func(v [3]float64) [3]float64 {
		rgb := m.apply(v)
		for i := range rgb {
			rgb[i] = LinearToSRGB(rgb[i])
		}
		return rgb
	}, nil
}

// newSRGBToXYZ builds the gamma-encoded sRGB to CIE XYZ step, adapting the
// result to w.
func newSRGBToXYZ(_ *Params, w white) (pixelFunc, error) {
	m := toD65(srgbToXYZ, w)
	return func(v [3]float64) [3]float64 {
		for i := range v {
			v[i] = SRGBToLinear(v[i])
		}
		return m.apply(v)
	}, nil
}
