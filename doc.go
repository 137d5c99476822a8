// Package colourvis prepares colour-science data for GPU visualisation.
//
// # Overview
//
// colourvis is a Pure Go helper layer between colour-science computations
// and a WebGPU renderer. It converts CIE XYZ tristimulus values into
// colourspace models, coerces numeric arrays into the element types and
// row-major layout vertex buffers expect, appends channels, and strips LaTeX
// markup from axis labels.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/colourvis"
//	    "github.com/gogpu/colourvis/ndarray"
//	)
//
//	xyz := ndarray.MustFromSlice([]float64{0.2065, 0.1220, 0.0514}, 1, 3)
//
//	// Domain-range scale 1 (default).
//	oklab, err := colourvis.XYZToColourspaceModel(xyz, colourvis.IlluminantD65, "Oklab")
//
//	// Reference range: CIE Lab L* in [0, 100].
//	lab, err := colourvis.XYZToColourspaceModel(xyz, colourvis.IlluminantD65, "CIE Lab",
//	    colourvis.WithNormaliseModel(false))
//
//	// float32 contiguous copy with an alpha channel, ready for upload.
//	rgba, err := colourvis.AppendChannelOne(colourvis.AsContiguousArray(oklab))
//
// # Models
//
// Model names are matched case-insensitively, ignoring spaces, hyphens,
// underscores and dots. [Models] lists them; [ScaleFactor] reports the
// factor that maps each model's domain-range-scale-1 values to its
// reference range. Models with two components ("CIE 1931",
// "CIE 1960 UCS", "CIE 1976 UCS") shrink the last axis to 2.
//
// # Configuration
//
// Package-level functions use [DefaultSettings]. A [Converter] created with
// [NewConverter] carries its own [Settings], which may be loaded from YAML
// with [LoadSettings].
//
// # Primitives
//
// [ConformPrimitiveDType] builds a [primitive.Primitive] whose vertices
// follow the fixed 48-byte record of position, uv, normal and colour, with
// uint32 faces and outline. See package primitive for buffer packing and
// glTF export.
//
// # Logging
//
// colourvis is silent by default. [SetLogger] enables debug records for
// conversion paths, conversions and conformance.
package colourvis

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
