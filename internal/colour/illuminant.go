package colour

import "fmt"

// white is a reference white resolved from an illuminant argument.
type white struct {
	xy  [2]float64
	XYZ [3]float64
}

// resolveWhite accepts CIE xy chromaticity coordinates, where Y defaults to
// 1, or a CIE xyY triplet.
func resolveWhite(illuminant []float64) (white, error) {
	var w white
	Y := 1.0
	switch len(illuminant) {
	case 2:
	case 3:
		Y = illuminant[2]
	default:
		return w, fmt.Errorf("%w: got %d components", ErrIlluminant, len(illuminant))
	}
	x, y := illuminant[0], illuminant[1]
	if y == 0 {
		return w, fmt.Errorf("%w: y chromaticity is zero", ErrIlluminant)
	}
	w.xy = [2]float64{x, y}
	w.XYZ = xyYToXYZ([3]float64{x, y, Y}, w)
	return w, nil
}

// uvPrime returns the CIE 1976 UCS chromaticity of the white.
func (w white) uvPrime() (u, v float64) {
	return xyToUVPrime(w.xy[0], w.xy[1])
}

// uv1960 returns the CIE 1960 UCS chromaticity of the white.
func (w white) uv1960() (u, v float64) {
	return xyToUV1960(w.xy[0], w.xy[1])
}

func xyToUVPrime(x, y float64) (u, v float64) {
	d := -2*x + 12*y + 3
	return 4 * x / d, 9 * y / d
}

func xyToUV1960(x, y float64) (u, v float64) {
	d := -2*x + 12*y + 3
	return 4 * x / d, 6 * y / d
}
