package colour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/colourvis/ndarray"
)

var (
	d65       = []float64{0.3127, 0.3290}
	sampleXYZ = []float64{0.20654008, 0.12197225, 0.05136952}
)

func convert(t *testing.T, target string, xyz []float64, p *Params) []float64 {
	t.Helper()
	if p == nil {
		p = &Params{}
	}
	if p.Illuminant == nil {
		p.Illuminant = d65
	}
	out, err := Convert(ndarray.MustFromSlice(xyz), ModelXYZ, target, p, Exec{})
	require.NoError(t, err)
	return out.Values()
}

func TestConvertReferenceValues(t *testing.T) {
	tests := []struct {
		model string
		want  []float64
		delta float64
	}{
		{ModelXYZ, sampleXYZ, 1e-12},
		{ModelXYY, []float64{0.5436955727, 0.3210794356, 0.12197225}, 1e-9},
		{ModelXY, []float64{0.5436955727, 0.3210794356}, 1e-9},
		{ModelLab, []float64{0.4152787529, 0.5263858304, 0.2692317922}, 1e-9},
		{ModelLCHab, []float64{0.4152787529, 0.5912425901, 27.0884878455 / 360}, 1e-9},
		{ModelLuv, []float64{0.4152787529, 0.9683626054, 0.1775210149}, 1e-9},
		{ModelUVPrime, []float64{0.3772021288, 0.5012026372}, 1e-9},
		{ModelOklab, []float64{0.5163401914, 0.1546949990, 0.0628957873}, 1e-9},
		{ModelIPT, []float64{0.3842619082, 0.3848730603, 0.1888683774}, 1e-9},
		{ModelJzazbz, []float64{0.0053504761, 0.0092430173, 0.0052600722}, 1e-9},
		{ModelICtCp, []float64{0.0685809688, -0.0028384184, 0.0602098328}, 1e-9},
		{ModelSRGB, []float64{0.7057261563, 0.1923250647, 0.2235324072}, 1e-6},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got := convert(t, tt.model, sampleXYZ, nil)
			assert.InDeltaSlice(t, tt.want, got, tt.delta)
		})
	}
}

func TestConvertWhite(t *testing.T) {
	white, err := resolveWhite(d65)
	require.NoError(t, err)
	xyz := white.XYZ[:]

	lab := convert(t, ModelLab, xyz, nil)
	assert.InDeltaSlice(t, []float64{1, 0, 0}, lab, 1e-12)

	din := convert(t, ModelDIN99, xyz, nil)
	assert.InDelta(t, 105.509*math.Log(2.58)/100, din[0], 1e-12)
	assert.InDelta(t, 0, din[1], 1e-12)
	assert.InDelta(t, 0, din[2], 1e-12)

	hunter := convert(t, ModelHunterLab, xyz, nil)
	assert.InDeltaSlice(t, []float64{1, 0, 0}, hunter, 1e-12)

	uvw := convert(t, ModelUVW, xyz, nil)
	assert.InDelta(t, 0, uvw[0], 1e-12)
	assert.InDelta(t, 0, uvw[1], 1e-12)
	assert.InDelta(t, (25*math.Cbrt(100)-17)/100, uvw[2], 1e-12)

	rgb := convert(t, ModelSRGB, []float64{0.95047, 1, 1.08883}, nil)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, rgb, 1e-6)
}

func TestConvertBlack(t *testing.T) {
	black := []float64{0, 0, 0}

	xyY := convert(t, ModelXYY, black, nil)
	assert.Equal(t, []float64{0.3127, 0.3290, 0}, xyY)

	uv := convert(t, ModelUVPrime, black, nil)
	u, v := xyToUVPrime(0.3127, 0.3290)
	assert.InDeltaSlice(t, []float64{u, v}, uv, 1e-12)

	luv := convert(t, ModelLuv, black, nil)
	assert.Equal(t, []float64{0, 0, 0}, luv)

	// Hunter opponent axes are undefined for black.
	hunter := convert(t, ModelHunterLab, black, nil)
	assert.Equal(t, 0.0, hunter[0])
	assert.True(t, math.IsNaN(hunter[1]))
	assert.True(t, math.IsNaN(hunter[2]))
}

func TestHunterLabLightness(t *testing.T) {
	got := convert(t, ModelHunterLab, sampleXYZ, nil)
	assert.InDelta(t, 0.3492452577, got[0], 1e-9)
	assert.InDelta(t, 0.4704775338, got[1], 1e-9)
	assert.InDelta(t, 0.1436032154, got[2], 1e-9)

	p := &Params{}
	p.SetKab(100, 100)
	custom := convert(t, ModelHunterLab, sampleXYZ, p)
	assert.InDelta(t, got[0], custom[0], 1e-12)
	assert.NotEqual(t, got[1], custom[1])
}

func TestRoundTrips(t *testing.T) {
	for _, model := range []string{ModelLab, ModelOklab, ModelXYY, ModelSRGB} {
		t.Run(model, func(t *testing.T) {
			fwd, err := Convert(ndarray.MustFromSlice(sampleXYZ), ModelXYZ, model, &Params{Illuminant: d65}, Exec{})
			require.NoError(t, err)
			back, err := Convert(fwd, model, ModelXYZ, &Params{Illuminant: d65}, Exec{})
			require.NoError(t, err)
			assert.InDeltaSlice(t, sampleXYZ, back.Values(), 1e-9)
		})
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		target string
		want   []string
	}{
		{ModelLCHab, []string{ModelXYZ, ModelLab, ModelLCHab}},
		{ModelDIN99, []string{ModelXYZ, ModelLab, ModelDIN99}},
		{ModelXY, []string{ModelXYZ, ModelXYY, ModelXY}},
		{ModelUV1960, []string{ModelXYZ, ModelUCS, ModelUV1960}},
		{ModelXYZ, []string{ModelXYZ}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, err := Path(ModelXYZ, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Path(ModelLCHab, ModelXYZ)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestCanonicalNames(t *testing.T) {
	assert.Equal(t, Canonical("CIE Lab"), Canonical("cie-lab"))
	assert.Equal(t, Canonical("CIE 1976 UCS"), Canonical("cie_1976.ucs"))
	assert.NotEqual(t, Canonical("CIE Lab"), Canonical("CIE Luv"))

	out, err := Convert(ndarray.MustFromSlice(sampleXYZ), "cie xyz", "hunter-lab", &Params{Illuminant: d65}, Exec{})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, out.Shape())
}

func TestConvertErrors(t *testing.T) {
	a := ndarray.MustFromSlice(sampleXYZ)

	_, err := Convert(a, ModelXYZ, "CIE Nope", &Params{Illuminant: d65}, Exec{})
	assert.ErrorIs(t, err, ErrUnsupportedModel)

	_, err = Convert(ndarray.MustFromSlice([]float64{1, 2}), ModelXYZ, ModelLab, &Params{Illuminant: d65}, Exec{})
	assert.ErrorIs(t, err, ErrComponents)

	_, err = Convert(a, ModelXYZ, ModelLab, &Params{Illuminant: []float64{0.3}}, Exec{})
	assert.ErrorIs(t, err, ErrIlluminant)

	_, err = Convert(a, ModelXYZ, ModelLab, &Params{}, Exec{})
	assert.ErrorIs(t, err, ErrIlluminant, "Lab needs a reference white")

	p := &Params{Illuminant: d65}
	p.SetMethod("DIN99b")
	_, err = Convert(a, ModelXYZ, ModelLab, p, Exec{})
	assert.ErrorIs(t, err, ErrUnsupportedOption)

	p = &Params{Illuminant: d65}
	p.SetMethod("ITU-R BT.709")
	_, err = Convert(a, ModelXYZ, ModelICtCp, p, Exec{})
	assert.ErrorIs(t, err, ErrUnsupportedMethod)

	p = &Params{Illuminant: d65}
	p.SetMethod(ictcpMethodHLG)
	p.SetPeakLuminance(1000)
	_, err = Convert(a, ModelXYZ, ModelICtCp, p, Exec{})
	assert.ErrorIs(t, err, ErrUnsupportedOption)
}

func TestICtCpOptions(t *testing.T) {
	pq := convert(t, ModelICtCp, sampleXYZ, nil)

	p := &Params{}
	p.SetPeakLuminance(1000)
	dim := convert(t, ModelICtCp, sampleXYZ, p)
	assert.Greater(t, dim[0], pq[0], "lower peak luminance raises intensity")

	p = &Params{}
	p.SetMethod(ictcpMethodHLG)
	hlg := convert(t, ModelICtCp, sampleXYZ, p)
	for _, v := range hlg {
		assert.False(t, math.IsNaN(v))
	}
	assert.NotEqual(t, pq, hlg)
}

func TestDIN99Methods(t *testing.T) {
	base := convert(t, ModelDIN99, sampleXYZ, nil)

	p := &Params{}
	p.SetMethod("ASTMD2244-07")
	assert.Equal(t, base, convert(t, ModelDIN99, sampleXYZ, p))

	p = &Params{}
	p.SetMethod("DIN99b")
	assert.NotEqual(t, base, convert(t, ModelDIN99, sampleXYZ, p))

	p = &Params{}
	p.SetDIN99Weights(2, 1)
	weighted := convert(t, ModelDIN99, sampleXYZ, p)
	assert.InDelta(t, base[0]/2, weighted[0], 1e-12)
}

func TestConvertPreservesLeadingShape(t *testing.T) {
	xyz := ndarray.MustFromSlice([]float64{
		0.2, 0.3, 0.1,
		0.5, 0.5, 0.5,
		0.1, 0.1, 0.8,
		0.9, 1.0, 1.1,
	}, 2, 2, 3)

	out, err := Convert(xyz, ModelXYZ, ModelXY, &Params{Illuminant: d65}, Exec{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, out.Shape())
	assert.InDelta(t, 0.2/0.6, out.At(0, 0, 0), 1e-12)
	assert.InDelta(t, 0.3/0.6, out.At(0, 0, 1), 1e-12)
}

func TestConvertChunkedMatchesSerial(t *testing.T) {
	const n = 1000
	data := make([]float64, n*3)
	for i := range data {
		data[i] = float64(i%97) / 97
	}
	xyz := ndarray.MustFromSlice(data, n, 3)
	p := &Params{Illuminant: d65}

	serial, err := Convert(xyz, ModelXYZ, ModelLCHuv, p, Exec{Workers: 1})
	require.NoError(t, err)
	parallel, err := Convert(xyz, ModelXYZ, ModelLCHuv, p, Exec{Workers: 4, ParallelThreshold: 10})
	require.NoError(t, err)
	assert.Equal(t, serial.Values(), parallel.Values())
}

func TestScaleFactor(t *testing.T) {
	s, ok := ScaleFactor("CIE Lab")
	require.True(t, ok)
	assert.Equal(t, []float64{100, 100, 100}, s)

	s, ok = ScaleFactor("sRGB")
	require.True(t, ok)
	assert.Nil(t, s)

	_, ok = ScaleFactor("CIE Nope")
	assert.False(t, ok)

	// Returned factors are copies.
	s, _ = ScaleFactor(ModelLCHab)
	s[0] = 0
	again, _ := ScaleFactor(ModelLCHab)
	assert.Equal(t, 100.0, again[0])

	for _, name := range Models() {
		n, ok := Components(name)
		require.True(t, ok, name)
		if f, _ := ScaleFactor(name); f != nil {
			assert.Len(t, f, n, name)
		}
	}
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "none", Option(0).String())
	assert.Equal(t, "method,K_ab", (OptionMethod | OptionKab).String())
}

func TestMatrixInverse(t *testing.T) {
	inv := oklabXYZToLMS.inverse()
	v := oklabXYZToLMS.apply([3]float64{0.3, 0.6, 0.9})
	back := inv.apply(v)
	assert.InDeltaSlice(t, []float64{0.3, 0.6, 0.9}, back[:], 1e-12)
}
