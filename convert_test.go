package colourvis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/colourvis/ndarray"
)

var sampleXYZ = []float64{0.20654008, 0.12197225, 0.05136952}

func approxSlice(t *testing.T, name string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len = %d, want %d", name, len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("%s[%d] = %.10f, want %.10f", name, i, got[i], want[i])
		}
	}
}

func mustConvert(t *testing.T, xyz *ndarray.Array[float64], model string, opts ...ConvertOption) []float64 {
	t.Helper()
	out, err := XYZToColourspaceModel(xyz, IlluminantD65, model, opts...)
	if err != nil {
		t.Fatalf("XYZToColourspaceModel(%q): %v", model, err)
	}
	return out.Values()
}

func TestXYZToColourspaceModelNormalised(t *testing.T) {
	xyz := ndarray.MustFromSlice(sampleXYZ)
	tests := []struct {
		model string
		want  []float64
	}{
		{"CIE Lab", []float64{0.4152787529, 0.5263858304, 0.2692317922}},
		{"ICtCp", []float64{0.0685809688, -0.0028384184, 0.0602098328}},
		{"Oklab", []float64{0.5163401914, 0.1546949990, 0.0628957873}},
		{"", []float64{0.5436955727, 0.3210794356, 0.12197225}},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			approxSlice(t, tt.model, mustConvert(t, xyz, tt.model), tt.want, 1e-9)
		})
	}
}

func TestXYZToColourspaceModelDenormalised(t *testing.T) {
	xyz := ndarray.MustFromSlice(sampleXYZ)
	for _, model := range []string{"CIE Lab", "CIE LCHab", "ICtCp", "CIE 1976 UCS", "Hunter Lab", "sRGB"} {
		t.Run(model, func(t *testing.T) {
			normalised := mustConvert(t, xyz, model, WithNormaliseModel(true))
			got := mustConvert(t, xyz, model, WithNormaliseModel(false))

			factors, ok := ScaleFactor(model)
			if !ok {
				t.Fatalf("ScaleFactor(%q) not found", model)
			}
			want := make([]float64, len(normalised))
			for i, v := range normalised {
				f := 1.0
				switch len(factors) {
				case 0:
				case 1:
					f = factors[0]
				default:
					f = factors[i%len(factors)]
				}
				want[i] = v * f
			}
			approxSlice(t, model, got, want, 1e-9)
		})
	}

	// CIE Lab in reference range: L* in [0, 100].
	lab := mustConvert(t, xyz, "CIE Lab", WithNormaliseModel(false))
	approxSlice(t, "CIE Lab", lab, []float64{41.52787529, 52.63858304, 26.92317922}, 1e-7)
}

func TestXYZToColourspaceModelNanToNum(t *testing.T) {
	// Black has no Hunter a, b; denormalisation substitutes zero.
	black := ndarray.MustFromSlice([]float64{0, 0, 0})
	normalised := mustConvert(t, black, "Hunter Lab")
	if !math.IsNaN(normalised[1]) {
		t.Fatalf("normalised Hunter a of black = %v, want NaN", normalised[1])
	}
	got := mustConvert(t, black, "Hunter Lab", WithNormaliseModel(false))
	approxSlice(t, "Hunter Lab", got, []float64{0, 0, 0}, 0)
}

func TestXYZToColourspaceModelShapes(t *testing.T) {
	data := make([]float64, 0, 2*3*3)
	for range 6 {
		data = append(data, sampleXYZ...)
	}
	xyz := ndarray.MustFromSlice(data, 2, 3, 3)

	tests := []struct {
		model string
		want  []int
	}{
		{"CIE Lab", []int{2, 3, 3}},
		{"CIE 1931", []int{2, 3, 2}},
		{"CIE 1960 UCS", []int{2, 3, 2}},
	}
	for _, tt := range tests {
		out, err := XYZToColourspaceModel(xyz, IlluminantD65, tt.model)
		if err != nil {
			t.Fatalf("%s: %v", tt.model, err)
		}
		if got := out.Shape(); !equalInts(got, tt.want) {
			t.Errorf("%s shape = %v, want %v", tt.model, got, tt.want)
		}
	}
}

func TestXYZToColourspaceModelInputTypes(t *testing.T) {
	want := mustConvert(t, ndarray.MustFromSlice([]float64{0.25, 0.5, 0.125}), "CIE Luv")
	got, err := XYZToColourspaceModel(ndarray.MustFromSlice([]float32{0.25, 0.5, 0.125}), IlluminantD65, "CIE Luv")
	if err != nil {
		t.Fatal(err)
	}
	approxSlice(t, "float32 input", got.Values(), want, 1e-12)
}

func TestXYZToColourspaceModelErrors(t *testing.T) {
	xyz := ndarray.MustFromSlice(sampleXYZ)
	tests := []struct {
		name  string
		xyz   *ndarray.Array[float64]
		model string
		opts  []ConvertOption
		want  error
	}{
		{"unknown model", xyz, "CIE Nope", nil, ErrUnsupportedModel},
		{"two components", ndarray.MustFromSlice([]float64{1, 2}), "CIE Lab", nil, ndarray.ErrShape},
		{"scalar", ndarray.Scalar(1.0), "CIE Lab", nil, ndarray.ErrShape},
		{"kab on Lab", xyz, "CIE Lab", []ConvertOption{WithKab(170, 70)}, ErrUnsupportedOption},
		{"method on Oklab", xyz, "Oklab", []ConvertOption{WithMethod("DIN99b")}, ErrUnsupportedOption},
		{"unknown ICtCp method", xyz, "ICtCp", []ConvertOption{WithMethod("Dolby")}, ErrUnsupportedMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := XYZToColourspaceModel(tt.xyz, IlluminantD65, tt.model, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestXYZToColourspaceModelIlluminant(t *testing.T) {
	_, err := XYZToColourspaceModel(ndarray.MustFromSlice(sampleXYZ), Illuminant{0.3}, "CIE Lab")
	if !errors.Is(err, ErrIlluminant) {
		t.Errorf("error = %v, want ErrIlluminant", err)
	}

	for _, model := range []string{"CIE Lab", "ICtCp", "sRGB"} {
		d50 := mustConvertWith(t, IlluminantD50, model)
		d65 := mustConvertWith(t, IlluminantD65, model)
		if d50[1] == d65[1] {
			t.Errorf("%s does not depend on the illuminant", model)
		}
	}

	// CAT02 adaptation from D50 to the BT.2020 white.
	ictcp := mustConvertWith(t, IlluminantD50, "ICtCp")
	approxSlice(t, "ICtCp under D50", ictcp, []float64{0.0679243731, 0.0045208874, 0.0551448049}, 1e-9)

	// Models defined on D65 without adaptation.
	for _, model := range []string{"Oklab", "IPT", "Jzazbz"} {
		d50 := mustConvertWith(t, IlluminantD50, model)
		d65 := mustConvertWith(t, IlluminantD65, model)
		approxSlice(t, model, d50, d65, 0)
	}
}

func mustConvertWith(t *testing.T, illuminant Illuminant, model string) []float64 {
	t.Helper()
	out, err := XYZToColourspaceModel(ndarray.MustFromSlice(sampleXYZ), illuminant, model)
	if err != nil {
		t.Fatal(err)
	}
	return out.Values()
}

func TestXYZToColourspaceModelHLG(t *testing.T) {
	xyz := ndarray.MustFromSlice(sampleXYZ)
	pq := mustConvert(t, xyz, "ICtCp")
	hlg := mustConvert(t, xyz, "ICtCp", WithMethod("ITU-R BT.2100-2 HLG"))
	if pq[0] == hlg[0] {
		t.Error("HLG and PQ produced the same intensity")
	}
	dolby := mustConvert(t, xyz, "ICtCp", WithMethod("Dolby 2016"))
	approxSlice(t, "Dolby 2016", dolby, pq, 0)
	bright := mustConvert(t, xyz, "ICtCp", WithPeakLuminance(100))
	if bright[0] <= pq[0] {
		t.Errorf("lower peak luminance should raise I: %v <= %v", bright[0], pq[0])
	}
}

func TestConverterSettings(t *testing.T) {
	c, err := NewConverter(Settings{
		NormaliseModel: false,
		ScaleFactors:   map[string][]float64{"cie-lab": {1, 2, 3}},
	}, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	xyz := ndarray.MustFromSlice(sampleXYZ)
	out, err := c.Convert(xyz, IlluminantD65, "CIE Lab")
	if err != nil {
		t.Fatal(err)
	}
	approxSlice(t, "overridden Lab", out.Values(),
		[]float64{0.4152787529, 2 * 0.5263858304, 3 * 0.2692317922}, 1e-9)

	// Per-call option wins over settings.
	out, err = c.Convert(xyz, IlluminantD65, "CIE Lab", WithNormaliseModel(true))
	if err != nil {
		t.Fatal(err)
	}
	approxSlice(t, "normalised Lab", out.Values(), []float64{0.4152787529, 0.5263858304, 0.2692317922}, 1e-9)

	// Built-in table for models without overrides.
	f, _ := c.ScaleFactor("CIE Luv")
	approxSlice(t, "CIE Luv factors", f, []float64{100, 100, 100}, 0)
}

func TestNewConverterErrors(t *testing.T) {
	tests := []struct {
		name    string
		factors map[string][]float64
		want    error
	}{
		{"unknown model", map[string][]float64{"CIE Nope": {1}}, ErrUnsupportedModel},
		{"wrong length", map[string][]float64{"CIE 1931": {1, 2, 3}}, ErrScaleFactors},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConverter(Settings{ScaleFactors: tt.factors})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConverterParallel(t *testing.T) {
	const n = 1000
	data := make([]float64, 0, n*3)
	for i := range n {
		v := float64(i) / n
		data = append(data, v*0.95, v, v*1.08)
	}
	xyz := ndarray.MustFromSlice(data, n, 3)

	serial, err := NewConverter(DefaultSettings(), WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := NewConverter(DefaultSettings(), WithWorkers(4), WithParallelThreshold(10))
	if err != nil {
		t.Fatal(err)
	}
	want, err := serial.Convert(xyz, IlluminantD65, "Jzazbz")
	if err != nil {
		t.Fatal(err)
	}
	got, err := parallel.Convert(xyz, IlluminantD65, "Jzazbz")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Error("parallel conversion differs from serial")
	}
}

func TestModelsAndPath(t *testing.T) {
	models := Models()
	if len(models) == 0 || !containsString(models, "ICtCp") {
		t.Errorf("Models() = %v", models)
	}
	path, err := ConversionPath("CIE LCHuv")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(path, " > "); got != "CIE XYZ > CIE Luv > CIE LCHuv" {
		t.Errorf("path = %s", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
