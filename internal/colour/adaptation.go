package colour

// CIECAM02 chromatic adaptation transform.
var (
	cat02 = mat3{
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	}
	cat02Inverse = cat02.inverse()
)

// whiteD65 is the CIE 1931 2° D65 chromaticity, the white of sRGB and
// ITU-R BT.2020.
var whiteD65 = [2]float64{0.3127, 0.3290}

// unitXYZ returns the CIE XYZ of chromaticity xy at Y = 1.
func unitXYZ(xy [2]float64) [3]float64 {
	x, y := xy[0], xy[1]
	return [3]float64{x / y, 1, (1 - x - y) / y}
}

// vonKries returns the CAT02 von Kries matrix adapting CIE XYZ seen under
// the white src to the white dst.
func vonKries(src, dst [2]float64) mat3 {
	ls := cat02.apply(unitXYZ(src))
	ld := cat02.apply(unitXYZ(dst))
	gain := mat3{
		ld[0] / ls[0], 0, 0,
		0, ld[1] / ls[1], 0,
		0, 0, ld[2] / ls[2],
	}
	m := gain.mul(&cat02)
	return cat02Inverse.mul(&m)
}

// fromD65 returns toRGB adapted so that it accepts CIE XYZ under w. toRGB is
// returned unchanged when w is D65.
func fromD65(toRGB mat3, w white) mat3 {
	if w.xy == whiteD65 {
		return toRGB
	}
	adapt := vonKries(w.xy, whiteD65)
	return toRGB.mul(&adapt)
}

// toD65 returns fromRGB adapted so that it produces CIE XYZ under w.
// fromRGB is returned unchanged when w is D65.
func toD65(fromRGB mat3, w white) mat3 {
	if w.xy == whiteD65 {
		return fromRGB
	}
	adapt := vonKries(whiteD65, w.xy)
	return adapt.mul(&fromRGB)
}
