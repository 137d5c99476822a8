package colour

import (
	"fmt"
	"math"
)

// IPT (Ebner and Fairchild 1998).
var (
	iptXYZToLMS = mat3{
		0.4002, 0.7075, -0.0807,
		-0.2280, 1.1500, 0.0612,
		0.0000, 0.0000, 0.9184,
	}
	iptLMSToIPT = mat3{
		0.4000, 0.4000, 0.2000,
		4.4550, -4.8510, 0.3960,
		0.8056, 0.3572, -1.1628,
	}
)

// xyzToIPT converts CIE XYZ (D65) to IPT.
func xyzToIPT(v [3]float64, _ white) [3]float64 {
	lms := iptXYZToLMS.apply(v)
	for i := range lms {
		lms[i] = spow(lms[i], 0.43)
	}
	return iptLMSToIPT.apply(lms)
}

// Oklab (Ottosson 2020).
var (
	oklabXYZToLMS = mat3{
		0.8189330101, 0.3618667424, -0.1288597137,
		0.0329845436, 0.9293118715, 0.0361456387,
		0.0482003018, 0.2643662691, 0.6338517070,
	}
	oklabLMSToLab = mat3{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}
	oklabLMSToXYZ = oklabXYZToLMS.inverse()
	oklabLabToLMS = oklabLMSToLab.inverse()
)

// xyzToOklab converts CIE XYZ (D65) to Oklab.
func xyzToOklab(v [3]float64, _ white) [3]float64 {
	lms := oklabXYZToLMS.apply(v)
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	return oklabLMSToLab.apply(lms)
}

// oklabToXYZ is the inverse of xyzToOklab.
func oklabToXYZ(v [3]float64, _ white) [3]float64 {
	lms := oklabLabToLMS.apply(v)
	for i := range lms {
		lms[i] = lms[i] * lms[i] * lms[i]
	}
	return oklabLMSToXYZ.apply(lms)
}

// Jzazbz (Safdar et al. 2017).
const (
	jzB  = 1.15
	jzG  = 0.66
	jzC1 = 3424.0 / 4096
	jzC2 = 2413.0 / 128
	jzC3 = 2392.0 / 128
	jzN  = 2610.0 / 16384
	jzP  = 1.7 * 2523.0 / 32
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11
)

var (
	jzXYZToLMS = mat3{
		0.41478972, 0.579999, 0.0146480,
		-0.2015100, 1.120649, 0.0531008,
		-0.0166008, 0.264800, 0.6684799,
	}
	jzLMSToIzazbz = mat3{
		0.5, 0.5, 0,
		3.524000, -4.066708, 0.542708,
		0.199076, 1.096799, -1.295875,
	}
)

// xyzToJzazbz converts absolute CIE XYZ (D65, cd/m²) to Jzazbz.
func xyzToJzazbz(v [3]float64, _ white) [3]float64 {
	X, Y, Z := v[0], v[1], v[2]
	Xp := jzB*X - (jzB-1)*Z
	Yp := jzG*Y - (jzG-1)*X

	lms := jzXYZToLMS.apply([3]float64{Xp, Yp, Z})
	for i := range lms {
		t := spow(lms[i]/10000, jzN)
		lms[i] = spow((jzC1+jzC2*t)/(1+jzC3*t), jzP)
	}
	izab := jzLMSToIzazbz.apply(lms)
	Iz := izab[0]
	Jz := (1+jzD)*Iz/(1+jzD*Iz) - jzD0
	return [3]float64{Jz, izab[1], izab[2]}
}

// ITU-R BT.2100 ICtCp.
const (
	ictcpMethodPQ  = "ITU-R BT.2100-2 PQ"
	ictcpMethodHLG = "ITU-R BT.2100-2 HLG"

	// DefaultPeakLuminance is the ST 2084 reference peak luminance in cd/m².
	DefaultPeakLuminance = 10000.0

	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32

	hlgA = 0.17883277
	hlgB = 0.28466892
	hlgC = 0.55991073
)

var (
	bt2020XYZToRGB = mat3{
		1.7166511880, -0.3556707838, -0.2533662814,
		-0.6666843518, 1.6164812366, 0.0157685458,
		0.0176398574, -0.0427706133, 0.9421031212,
	}
	ictcpRGBToLMS = mat3{
		1688, 2146, 262,
		683, 2951, 462,
		99, 309, 3688,
	}.scaled(1.0 / 4096)
	ictcpLMSPQToICtCp = mat3{
		2048, 2048, 0,
		6610, -13613, 7003,
		17933, -17390, -543,
	}.scaled(1.0 / 4096)
	ictcpLMSHLGToICtCp = mat3{
		2048, 2048, 0,
		3625, -7465, 3840,
		9500, -9212, -288,
	}.scaled(1.0 / 4096)
)

// pqInverseEOTF is the SMPTE ST 2084 inverse EOTF for luminance c in cd/m².
func pqInverseEOTF(c, peak float64) float64 {
	yp := spow(c/peak, pqM1)
	return spow((pqC1+pqC2*yp)/(pqC3*yp+1), pqM2)
}

// hlgOETF is the ITU-R BT.2100 HLG OETF. Negative input yields NaN.
func hlgOETF(e float64) float64 {
	if e <= 1.0/12 {
		return math.Sqrt(3 * e)
	}
	return hlgA*math.Log(12*e-hlgB) + hlgC
}

// ictcpVariant is an ICtCp encoding: the non-linearity applied to LMS and
// the matrix to ICtCp.
type ictcpVariant struct {
	hlg   bool
	toICh *mat3
}

// ictcpVariants maps canonical method names to variants. BT.2100-1 HLG
// shares the PQ matrix; BT.2100-2 revised it for HLG.
var ictcpVariants = map[string]ictcpVariant{
	Canonical("Dolby 2016"):          {toICh: &ictcpLMSPQToICtCp},
	Canonical("ITU-R BT.2100-1 PQ"):  {toICh: &ictcpLMSPQToICtCp},
	Canonical(ictcpMethodPQ):         {toICh: &ictcpLMSPQToICtCp},
	Canonical("ITU-R BT.2100-1 HLG"): {hlg: true, toICh: &ictcpLMSPQToICtCp},
	Canonical(ictcpMethodHLG):        {hlg: true, toICh: &ictcpLMSHLGToICtCp},
}

// newICtCp builds the CIE XYZ to ICtCp step. XYZ under a white other than
// D65 is adapted with CAT02 before the BT.2020 matrix.
func newICtCp(p *Params, w white) (pixelFunc, error) {
	method := ictcpMethodPQ
	if p.Has(OptionMethod) && p.Method != "" {
		method = p.Method
	}
	variant, ok := ictcpVariants[Canonical(method)]
	if !ok {
		return nil, fmt.Errorf("%w: ICtCp method %q", ErrUnsupportedMethod, method)
	}
	peak := DefaultPeakLuminance
	if p.Has(OptionPeakLuminance) {
		if variant.hlg {
			return nil, fmt.Errorf("%w: peak luminance does not apply to %q", ErrUnsupportedOption, method)
		}
		peak = p.PeakLuminance
	}

	toRGB := fromD65(bt2020XYZToRGB, w)
	toLMS := ictcpRGBToLMS.mul(&toRGB)
	toICh := variant.toICh
	if variant.hlg {
		return func(v [3]float64) [3]float64 {
			lms := toLMS.apply(v)
			for i := range lms {
				lms[i] = hlgOETF(lms[i])
			}
			return toICh.apply(lms)
		}, nil
	}
	return func(v [3]float64) [3]float64 {
		lms := toLMS.apply(v)
		for i := range lms {
			lms[i] = pqInverseEOTF(lms[i], peak)
		}
		return toICh.apply(lms)
	}, nil
}
