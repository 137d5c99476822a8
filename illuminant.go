package colourvis

// Illuminant is a reference white given either as CIE xy chromaticity
// coordinates (two components, luminance 1) or as CIE xyY (three
// components).
type Illuminant []float64

// CIE 1931 2° standard observer illuminants.
var (
	IlluminantA   = Illuminant{0.44757, 0.40745}
	IlluminantC   = Illuminant{0.31006, 0.31616}
	IlluminantD50 = Illuminant{0.34570, 0.35850}
	IlluminantD65 = Illuminant{0.31270, 0.32900}
	IlluminantE   = Illuminant{1.0 / 3, 1.0 / 3}
)
