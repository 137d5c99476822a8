package colour

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/colourvis/internal/cache"
	"github.com/gogpu/colourvis/ndarray"
)

// pixelFunc converts one triplet. Two-component models use the first two
// slots and leave the third at zero.
type pixelFunc func(v [3]float64) [3]float64

// stepBuilder prepares a pixelFunc once per conversion call so parameter
// validation happens before any data is touched.
type stepBuilder func(p *Params, w white) (pixelFunc, error)

// edge is a conversion step between two models.
type edge struct {
	from, to *model
	build    stepBuilder
	// white reports whether the step reads the reference white.
	white bool
}

func fixed(f func([3]float64, white) [3]float64) stepBuilder {
	return func(_ *Params, w white) (pixelFunc, error) {
		return func(v [3]float64) [3]float64 { return f(v, w) }, nil
	}
}

var edges = []*edge{
	{from: m(ModelXYZ), to: m(ModelXYY), build: fixed(xyzToXYY), white: true},
	{from: m(ModelXYY), to: m(ModelXYZ), build: fixed(xyYToXYZ)},
	{from: m(ModelXYY), to: m(ModelXY), build: fixed(xyYToXY)},
	{from: m(ModelXYZ), to: m(ModelLab), build: fixed(xyzToLab), white: true},
	{from: m(ModelLab), to: m(ModelXYZ), build: fixed(labToXYZ), white: true},
	{from: m(ModelLab), to: m(ModelLCHab), build: fixed(toPolar)},
	{from: m(ModelLab), to: m(ModelDIN99), build: newDIN99},
	{from: m(ModelXYZ), to: m(ModelLuv), build: fixed(xyzToLuv), white: true},
	{from: m(ModelLuv), to: m(ModelLCHuv), build: fixed(toPolar)},
	{from: m(ModelXYZ), to: m(ModelUVPrime), build: fixed(xyzToUVPrime), white: true},
	{from: m(ModelXYZ), to: m(ModelUCS), build: fixed(xyzToUCS)},
	{from: m(ModelUCS), to: m(ModelUV1960), build: fixed(ucsToUV1960)},
	{from: m(ModelXYZ), to: m(ModelUVW), build: fixed(xyzToUVW), white: true},
	{from: m(ModelXYZ), to: m(ModelHunterLab), build: newHunterLab, white: true},
	{from: m(ModelXYZ), to: m(ModelHunterRdab), build: newHunterRdab, white: true},
	{from: m(ModelXYZ), to: m(ModelIPT), build: fixed(xyzToIPT)},
	{from: m(ModelXYZ), to: m(ModelOklab), build: fixed(xyzToOklab)},
	{from: m(ModelOklab), to: m(ModelXYZ), build: fixed(oklabToXYZ)},
	{from: m(ModelXYZ), to: m(ModelJzazbz), build: fixed(xyzToJzazbz)},
	{from: m(ModelXYZ), to: m(ModelICtCp), build: newICtCp, white: true},
	{from: m(ModelXYZ), to: m(ModelSRGB), build: newXYZToSRGB, white: true},
	{from: m(ModelSRGB), to: m(ModelXYZ), build: newSRGBToXYZ, white: true},
}

// m looks up a registered model and panics on typos in the edge table.
func m(name string) *model {
	mod, ok := lookup(name)
	if !ok {
		panic("colour: edge references unknown model " + name)
	}
	return mod
}

var adjacency = func() map[*model][]*edge {
	adj := make(map[*model][]*edge)
	for _, e := range edges {
		adj[e.from] = append(adj[e.from], e)
	}
	return adj
}()

// pathCache memoises resolved paths keyed by "from->to".
var pathCache = cache.New[string, []*edge](64)

// shortestPath finds the path with the fewest steps using breadth-first
// search. It returns nil when to is unreachable and an empty slice when
// from == to.
func shortestPath(from, to *model) []*edge {
	if from == to {
		return []*edge{}
	}
	prev := map[*model]*edge{from: nil}
	queue := []*model{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range adjacency[cur] {
			if _, seen := prev[e.to]; seen {
				continue
			}
			prev[e.to] = e
			if e.to == to {
				var path []*edge
				for step := e; step != nil; step = prev[step.from] {
					path = append(path, step)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			queue = append(queue, e.to)
		}
	}
	return nil
}

func resolvePath(from, to *model) []*edge {
	resolved := false
	path := pathCache.GetOrCreate(from.name+"->"+to.name, func() []*edge {
		resolved = true
		return shortestPath(from, to)
	})
	if resolved {
		stats := pathCache.Stats()
		debug("colour: resolved conversion path",
			slog.String("from", from.name),
			slog.String("to", to.name),
			slog.String("path", describePath(path)),
			slog.Int("cached_paths", stats.Len),
			slog.Uint64("cache_hits", stats.Hits),
			slog.Uint64("cache_misses", stats.Misses))
	}
	return path
}

func describePath(path []*edge) string {
	if path == nil {
		return "<none>"
	}
	if len(path) == 0 {
		return "<identity>"
	}
	names := []string{path[0].from.name}
	for _, e := range path {
		names = append(names, e.to.name)
	}
	return strings.Join(names, " -> ")
}

// Path returns the model names visited when converting from source to
// target, including both ends.
func Path(source, target string) ([]string, error) {
	from, to, err := endpoints(source, target)
	if err != nil {
		return nil, err
	}
	path := resolvePath(from, to)
	if path == nil {
		return nil, fmt.Errorf("%w: %q to %q", ErrNoPath, from.name, to.name)
	}
	names := []string{from.name}
	for _, e := range path {
		names = append(names, e.to.name)
	}
	return names, nil
}

func endpoints(source, target string) (from, to *model, err error) {
	from, ok := lookup(source)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, source)
	}
	to, ok = lookup(target)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, target)
	}
	return from, to, nil
}

// Exec controls how a conversion is scheduled.
type Exec struct {
	// Workers caps the goroutines used for large inputs.
	// Zero or negative means GOMAXPROCS.
	Workers int
	// ParallelThreshold is the triplet count from which the input is split
	// into chunks. Zero means DefaultParallelThreshold.
	ParallelThreshold int
}

// DefaultParallelThreshold is the default triplet count for chunked
// conversion.
const DefaultParallelThreshold = 1 << 16

// Convert converts a, whose last axis holds the components of source, into
// target. The result is a new contiguous array whose last axis has the
// target component count. p may be nil.
func Convert(a *ndarray.Array[float64], source, target string, p *Params, exec Exec) (*ndarray.Array[float64], error) {
	if p == nil {
		p = &Params{}
	}
	from, to, err := endpoints(source, target)
	if err != nil {
		return nil, err
	}
	if a.NDim() == 0 || a.Len() != from.components {
		return nil, fmt.Errorf("%w: %q expects last axis %d, got shape %v",
			ErrComponents, from.name, from.components, a.Shape())
	}

	path := resolvePath(from, to)
	if path == nil {
		return nil, fmt.Errorf("%w: %q to %q", ErrNoPath, from.name, to.name)
	}

	var accepted Option
	needWhite := false
	for _, e := range path {
		accepted |= e.to.accepts
		needWhite = needWhite || e.white
	}
	if extra := p.Set() &^ accepted; extra != 0 {
		return nil, fmt.Errorf("%w: %s for %q to %q", ErrUnsupportedOption, extra, from.name, to.name)
	}

	var w white
	if needWhite || len(p.Illuminant) > 0 {
		w, err = resolveWhite(p.Illuminant)
		if err != nil {
			return nil, err
		}
	}

	steps := make([]pixelFunc, len(path))
	for i, e := range path {
		if steps[i], err = e.build(p, w); err != nil {
			return nil, fmt.Errorf("colour: %s to %s: %w", e.from.name, e.to.name, err)
		}
	}

	src := a.Values()
	n := len(src) / from.components
	dst := make([]float64, n*to.components)
	run := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			var v [3]float64
			copy(v[:], src[i*from.components:(i+1)*from.components])
			for _, step := range steps {
				v = step(v)
			}
			copy(dst[i*to.components:(i+1)*to.components], v[:to.components])
		}
	}
	chunked(n, exec, run)

	shape := a.Shape()
	shape[len(shape)-1] = to.components
	out, err := ndarray.FromSlice(dst, shape...)
	if err != nil {
		return nil, err
	}
	debug("colour: converted",
		slog.String("from", from.name),
		slog.String("to", to.name),
		slog.Int("triplets", n))
	return out, nil
}

// chunked runs fn over [0, n) either inline or split across goroutines.
func chunked(n int, exec Exec, fn func(lo, hi int)) {
	threshold := exec.ParallelThreshold
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	workers := exec.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n < threshold || workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail
}

// loggerPtr holds the logger installed by SetLogger. Nothing is logged until
// one is installed.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for conversion diagnostics. colourvis
// forwards its own logger here. A nil logger disables logging.
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// debug emits a debug record when a logger is installed.
func debug(msg string, attrs ...slog.Attr) {
	if l := loggerPtr.Load(); l != nil {
		l.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
	}
}
