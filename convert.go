package colourvis

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/colourvis/internal/colour"
	"github.com/gogpu/colourvis/ndarray"
)

// DefaultModel is the target used when XYZToColourspaceModel is given an
// empty model name.
const DefaultModel = colour.ModelXYY

var (
	// ErrUnsupportedModel is returned for model names the conversion graph
	// does not know.
	ErrUnsupportedModel = colour.ErrUnsupportedModel

	// ErrUnsupportedOption is returned when an option is set that no model
	// on the conversion path accepts.
	ErrUnsupportedOption = colour.ErrUnsupportedOption

	// ErrUnsupportedMethod is returned for unknown WithMethod values.
	ErrUnsupportedMethod = colour.ErrUnsupportedMethod

	// ErrIlluminant is returned for illuminants that are neither xy nor xyY.
	ErrIlluminant = colour.ErrIlluminant

	// ErrScaleFactors is returned by NewConverter for malformed overrides.
	ErrScaleFactors = errors.New("colourvis: invalid scale factors")
)

// Converter converts CIE XYZ arrays into colourspace models using a fixed
// set of Settings. A Converter is safe for concurrent use.
type Converter struct {
	normalise bool
	scale     map[string][]float64 // keyed by canonical model name
	exec      colour.Exec
}

// NewConverter creates a Converter. Scale factor overrides are validated
// against the model registry and merged over the built-in table.
func NewConverter(settings Settings, opts ...ConverterOption) (*Converter, error) {
	o := defaultConverterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	settings = settings.clone()
	scale := make(map[string][]float64, len(settings.ScaleFactors))
	for name, factors := range settings.ScaleFactors {
		n, ok := colour.Components(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, name)
		}
		if len(factors) != 1 && len(factors) != n {
			return nil, fmt.Errorf("%w: %q has %d components, got %d factors",
				ErrScaleFactors, name, n, len(factors))
		}
		scale[colour.Canonical(name)] = factors
	}

	return &Converter{
		normalise: settings.NormaliseModel,
		scale:     scale,
		exec: colour.Exec{
			Workers:           o.workers,
			ParallelThreshold: o.parallelThreshold,
		},
	}, nil
}

var defaultConverter = func() *Converter {
	c, err := NewConverter(DefaultSettings())
	if err != nil {
		panic(err)
	}
	return c
}()

// ScaleFactor returns the factors the converter multiplies a model's
// domain-range-scale-1 values by when normalisation is disabled. A nil
// slice means the model is returned as is.
func (c *Converter) ScaleFactor(model string) ([]float64, bool) {
	if f, ok := c.scale[colour.Canonical(model)]; ok {
		return append([]float64(nil), f...), true
	}
	return colour.ScaleFactor(model)
}

// Convert converts xyz, whose last axis holds CIE XYZ tristimulus values,
// into model under the given illuminant. An empty model selects
// DefaultModel. The result is a new float64 array; xyz is not modified.
func (c *Converter) Convert(xyz *ndarray.Array[float64], illuminant Illuminant, model string, opts ...ConvertOption) (*ndarray.Array[float64], error) {
	if model == "" {
		model = DefaultModel
	}
	if xyz.NDim() == 0 || xyz.Len() != 3 {
		return nil, fmt.Errorf("%w: tristimulus last axis must be 3, got shape %v", ndarray.ErrShape, xyz.Shape())
	}

	o := convertOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	normalise := c.normalise
	if o.normalise != nil {
		normalise = *o.normalise
	}
	o.params.Illuminant = illuminant

	out, err := colour.Convert(xyz, colour.ModelXYZ, model, &o.params, c.exec)
	if err != nil {
		return nil, err
	}
	if normalise {
		return out, nil
	}

	factors, _ := c.ScaleFactor(model)
	out, err = ndarray.ScaleLast(ndarray.NanToNum(out), factors)
	if err != nil {
		return nil, err
	}
	Logger().Debug("colourvis: denormalised",
		slog.String("model", model),
		slog.Any("factors", factors))
	return out, nil
}

// XYZToColourspaceModel converts CIE XYZ tristimulus values into model with
// the package default settings (normalised output). The input may have any
// numeric element type and any number of leading axes; the last axis must
// have length 3.
//
// Example:
//
//	xyz := ndarray.MustFromSlice([]float64{0.2065, 0.1220, 0.0514}, 3)
//	lab, err := colourvis.XYZToColourspaceModel(xyz, colourvis.IlluminantD65, "CIE Lab")
func XYZToColourspaceModel[T ndarray.Number](xyz *ndarray.Array[T], illuminant Illuminant, model string, opts ...ConvertOption) (*ndarray.Array[float64], error) {
	return defaultConverter.Convert(ndarray.AsType[float64](xyz), illuminant, model, opts...)
}

// ScaleFactor returns the built-in reference-range factors of model.
func ScaleFactor(model string) ([]float64, bool) {
	return colour.ScaleFactor(model)
}

// Models returns the names of the supported colourspace models.
func Models() []string {
	return colour.Models()
}

// ConversionPath returns the models visited when converting CIE XYZ to
// model, including both ends.
func ConversionPath(model string) ([]string, error) {
	if model == "" {
		model = DefaultModel
	}
	return colour.Path(colour.ModelXYZ, model)
}
