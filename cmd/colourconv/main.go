// Command colourconv converts CIE XYZ triplets into a colourspace model.
//
// Usage:
//
//	colourconv -model "CIE Lab" -xyz "0.2065,0.1220,0.0514;0.9505,1,1.089"
//	colourconv -model Oklab -xyz 0.2,0.3,0.1 -gltf points.glb
//	colourconv -list
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/colourvis"
	"github.com/gogpu/colourvis/ndarray"
	"github.com/gogpu/colourvis/primitive"
)

var illuminants = map[string]colourvis.Illuminant{
	"A":   colourvis.IlluminantA,
	"C":   colourvis.IlluminantC,
	"D50": colourvis.IlluminantD50,
	"D65": colourvis.IlluminantD65,
	"E":   colourvis.IlluminantE,
}

func main() {
	var (
		model      = flag.String("model", colourvis.DefaultModel, "target colourspace model")
		xyzFlag    = flag.String("xyz", "0.20654008,0.12197225,0.05136952", "XYZ triplets, components separated by ',' and triplets by ';'")
		illuminant = flag.String("illuminant", "D65", "reference white: A, C, D50, D65 or E")
		normalise  = flag.String("normalise", "auto", "normalise output: auto (from settings), true or false")
		method     = flag.String("method", "", "model variant, e.g. \"ITU-R BT.2100-2 HLG\" for ICtCp")
		settings   = flag.String("settings", "", "YAML settings file")
		gltfOut    = flag.String("gltf", "", "write the converted points as a binary glTF line strip")
		list       = flag.Bool("list", false, "list supported models and exit")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	colourvis.SetLogger(logger)

	if *list {
		for _, name := range colourvis.Models() {
			fmt.Println(name)
		}
		return
	}

	if err := run(*model, *xyzFlag, *illuminant, *normalise, *method, *settings, *gltfOut); err != nil {
		logger.Error("colourconv failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(model, xyzFlag, illuminantName, normalise, method, settingsPath, gltfOut string) error {
	s := colourvis.DefaultSettings()
	if settingsPath != "" {
		f, err := os.Open(settingsPath)
		if err != nil {
			return err
		}
		s, err = colourvis.LoadSettings(f)
		_ = f.Close()
		if err != nil {
			return err
		}
	}
	conv, err := colourvis.NewConverter(s)
	if err != nil {
		return err
	}

	il, ok := illuminants[strings.ToUpper(illuminantName)]
	if !ok {
		return fmt.Errorf("unknown illuminant %q", illuminantName)
	}

	var opts []colourvis.ConvertOption
	switch normalise {
	case "auto":
	case "true", "false":
		opts = append(opts, colourvis.WithNormaliseModel(normalise == "true"))
	default:
		return fmt.Errorf("-normalise must be auto, true or false, got %q", normalise)
	}
	if method != "" {
		opts = append(opts, colourvis.WithMethod(method))
	}

	xyz, err := parseTriplets(xyzFlag)
	if err != nil {
		return err
	}
	out, err := conv.Convert(xyz, il, model, opts...)
	if err != nil {
		return err
	}

	n := out.Len()
	values := out.Values()
	for i := 0; i < len(values); i += n {
		fmt.Println(formatRow(values[i : i+n]))
	}

	if gltfOut != "" {
		return writePoints(gltfOut, model, xyz, out)
	}
	return nil
}

func parseTriplets(s string) (*ndarray.Array[float64], error) {
	var data []float64
	rows := 0
	for _, triplet := range strings.Split(s, ";") {
		triplet = strings.TrimSpace(triplet)
		if triplet == "" {
			continue
		}
		parts := strings.Split(triplet, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("triplet %q: want 3 components, got %d", triplet, len(parts))
		}
		for _, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("triplet %q: %w", triplet, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, fmt.Errorf("no XYZ triplets given")
	}
	return ndarray.FromSlice(data, rows, 3)
}

func formatRow(row []float64) string {
	fields := make([]string, len(row))
	for i, v := range row {
		fields[i] = strconv.FormatFloat(v, 'f', 8, 64)
	}
	return strings.Join(fields, "\t")
}

// writePoints exports the converted values as positions of a line strip
// coloured by the sRGB rendition of each input.
func writePoints(path, model string, xyz, out *ndarray.Array[float64]) error {
	rgb, err := colourvis.XYZToColourspaceModel(xyz, colourvis.IlluminantD65, "sRGB")
	if err != nil {
		return err
	}
	rgba, err := colourvis.AppendChannelOne(rgb)
	if err != nil {
		return err
	}

	rows := out.Shape()[0]
	n := out.Len()
	pos := out.Values()
	col := rgba.Values()
	vertices := make([]float64, 0, rows*primitive.VertexComponents)
	var outline []uint32
	for i := range rows {
		var p [3]float64
		copy(p[:], pos[i*n:(i+1)*n])
		vertices = append(vertices, p[0], p[1], p[2], 0, 0, 0, 0, 1)
		for _, c := range col[i*4 : (i+1)*4] {
			vertices = append(vertices, min(max(c, 0), 1))
		}
		if i > 0 {
			outline = append(outline, uint32(i-1), uint32(i))
		}
	}

	raw := primitive.Raw[float64, uint32]{
		Vertices: ndarray.MustFromSlice(vertices, rows, primitive.VertexComponents),
	}
	if len(outline) > 0 {
		raw.Outline = ndarray.MustFromSlice(outline, len(outline)/2, 2)
	}
	p, err := colourvis.ConformPrimitiveDType(raw)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.WriteGLTF(f, colourvis.Unlatexify(model), true); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
