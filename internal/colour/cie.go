package colour

import "math"

// CIE lightness constants (CIE 15:2004 exact rationals).
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// xyzToXYY converts CIE XYZ to CIE xyY. Black maps to the white chromaticity.
func xyzToXYY(v [3]float64, w white) [3]float64 {
	s := v[0] + v[1] + v[2]
	if s == 0 {
		return [3]float64{w.xy[0], w.xy[1], v[1]}
	}
	return [3]float64{v[0] / s, v[1] / s, v[1]}
}

// xyYToXYZ converts CIE xyY to CIE XYZ. y == 0 maps to black.
func xyYToXYZ(v [3]float64, _ white) [3]float64 {
	x, y, Y := v[0], v[1], v[2]
	if y == 0 {
		return [3]float64{}
	}
	return [3]float64{x * Y / y, Y, (1 - x - y) * Y / y}
}

// xyYToXY drops the luminance: CIE xyY to CIE 1931 chromaticity.
func xyYToXY(v [3]float64, _ white) [3]float64 {
	return [3]float64{v[0], v[1], 0}
}

func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labUncompress(f float64) float64 {
	f3 := f * f * f
	if f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// xyzToLab converts CIE XYZ to CIE L*a*b* scaled to [0, 1].
func xyzToLab(v [3]float64, w white) [3]float64 {
	fx := labCompress(v[0] / w.XYZ[0])
	fy := labCompress(v[1] / w.XYZ[1])
	fz := labCompress(v[2] / w.XYZ[2])
	L := 116*fy - 16
	a := 500 * (fx - fy)
	b := 200 * (fy - fz)
	return [3]float64{L / 100, a / 100, b / 100}
}

// labToXYZ is the inverse of xyzToLab.
func labToXYZ(v [3]float64, w white) [3]float64 {
	L, a, b := v[0]*100, v[1]*100, v[2]*100
	fy := (L + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	return [3]float64{
		labUncompress(fx) * w.XYZ[0],
		labUncompress(fy) * w.XYZ[1],
		labUncompress(fz) * w.XYZ[2],
	}
}

// toPolar converts an opponent (L, a, b) triplet into (L, C, h) with the hue
// angle scaled from degrees to [0, 1).
func toPolar(v [3]float64, _ white) [3]float64 {
	C := math.Hypot(v[1], v[2])
	h := math.Mod(math.Atan2(v[2], v[1])*180/math.Pi, 360)
	if h < 0 {
		h += 360
	}
	return [3]float64{v[0], C, h / 360}
}

// xyzToLuv converts CIE XYZ to CIE L*u*v* scaled to [0, 1].
func xyzToLuv(v [3]float64, w white) [3]float64 {
	yr := v[1] / w.XYZ[1]
	var L float64
	if yr > labEpsilon {
		L = 116*math.Cbrt(yr) - 16
	} else {
		L = labKappa * yr
	}

	d := v[0] + 15*v[1] + 3*v[2]
	if d == 0 {
		return [3]float64{L / 100, 0, 0}
	}
	un, vn := w.uvPrime()
	u := 13 * L * (4*v[0]/d - un)
	vv := 13 * L * (9*v[1]/d - vn)
	return [3]float64{L / 100, u / 100, vv / 100}
}

// xyzToUVPrime converts CIE XYZ to CIE 1976 UCS u'v' chromaticity.
// Black maps to the white chromaticity.
func xyzToUVPrime(v [3]float64, w white) [3]float64 {
	d := v[0] + 15*v[1] + 3*v[2]
	if d == 0 {
		u, vv := w.uvPrime()
		return [3]float64{u, vv, 0}
	}
	return [3]float64{4 * v[0] / d, 9 * v[1] / d, 0}
}

// xyzToUCS converts CIE XYZ to CIE 1960 UCS UVW tristimulus values.
func xyzToUCS(v [3]float64, _ white) [3]float64 {
	X, Y, Z := v[0], v[1], v[2]
	return [3]float64{2 * X / 3, Y, (-X + 3*Y + Z) / 2}
}

// ucsToUV1960 converts CIE 1960 UCS UVW to uv chromaticity.
func ucsToUV1960(v [3]float64, _ white) [3]float64 {
	s := v[0] + v[1] + v[2]
	if s == 0 {
		return [3]float64{}
	}
	return [3]float64{v[0] / s, v[1] / s, 0}
}

// xyzToUVW converts CIE XYZ to CIE 1964 U*V*W* scaled to [0, 1].
func xyzToUVW(v [3]float64, w white) [3]float64 {
	xyY := xyzToXYY(v, w)
	u, vv := xyToUV1960(xyY[0], xyY[1])
	u0, v0 := w.uv1960()

	Y := xyY[2] * 100
	W := 25*math.Cbrt(Y) - 17
	U := 13 * W * (u - u0)
	V := 13 * W * (vv - v0)
	return [3]float64{U / 100, V / 100, W / 100}
}
