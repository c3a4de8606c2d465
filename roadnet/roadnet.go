// Package roadnet loads road networks from files into raw core graphs.
//
// Supported inputs:
//
//   - node-link JSON as exported by networkx/osmnx (FormatJSON)
//   - OpenStreetMap XML (FormatOSMXML) and PBF (FormatOSMPBF) extracts
//
// Every loader yields a directed raw graph (core.NewRoadGraph) whose
// vertices carry coordinates, ready for routing.NewNetwork.
package roadnet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/greedyroute/bfs"
	"github.com/katalvlaran/greedyroute/core"
)

var (
	// ErrUnsupportedFormat: the file extension or format name is unknown.
	ErrUnsupportedFormat = errors.New("roadnet: unsupported format")

	// ErrDecode wraps every parse failure of the input.
	ErrDecode = errors.New("roadnet: decode failed")
)

// Format names an input encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatOSMXML Format = "osmxml"
	FormatOSMPBF Format = "osmpbf"
)

// FormatOf infers the format from a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".osm", ".xml":
		return FormatOSMXML, nil
	case ".pbf":
		return FormatOSMPBF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Projection selects the coordinate space of loaded vertices.
type Projection string

const (
	// ProjectionNone keeps coordinates as given (lon/lat for OSM).
	ProjectionNone Projection = "none"
	// ProjectionMercator maps lon/lat to Web-Mercator meters.
	ProjectionMercator Projection = "mercator"
)

// ParseProjection accepts "", "none" and "mercator".
func ParseProjection(s string) (Projection, error) {
	switch Projection(strings.ToLower(s)) {
	case "", ProjectionNone:
		return ProjectionNone, nil
	case ProjectionMercator:
		return ProjectionMercator, nil
	default:
		return "", fmt.Errorf("roadnet: unknown projection %q", s)
	}
}

type options struct {
	projection       Projection
	largestComponent bool
	logger           *slog.Logger
}

// Option configures a loader.
type Option func(*options)

// WithProjection reprojects vertex coordinates after loading.
func WithProjection(p Projection) Option {
	return func(o *options) { o.projection = p }
}

// WithLargestComponent keeps only the largest weakly connected component.
func WithLargestComponent() Option {
	return func(o *options) { o.largestComponent = true }
}

// WithLogger sets the logger used for load statistics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{projection: ProjectionNone}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// LoadFile opens path and loads it with the loader matching its extension.
func LoadFile(ctx context.Context, path string, opts ...Option) (*core.Graph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == FormatJSON {
		return LoadJSON(f, opts...)
	}

	return LoadOSM(ctx, f, format, opts...)
}

// finish applies the post-load options shared by all loaders.
func finish(g *core.Graph, o options, source string) (*core.Graph, error) {
	switch o.projection {
	case ProjectionNone:
	case ProjectionMercator:
		g = reproject(g, project.WGS84.ToMercator)
	default:
		return nil, fmt.Errorf("roadnet: unknown projection %q", o.projection)
	}

	if o.largestComponent {
		var err error
		if g, err = largestComponent(g); err != nil {
			return nil, err
		}
	}

	s := g.Stats()
	o.logger.Info("road network loaded",
		"source", source,
		"nodes", s.VertexCount,
		"edges", s.EdgeCount,
		"unmeasured", s.UnmeasuredEdgeCount)

	return g, nil
}

// reproject maps every vertex coordinate through proj.
func reproject(g *core.Graph, proj orb.Projection) *core.Graph {
	for _, id := range g.Vertices() {
		x, y, ok := g.Coordinates(id)
		if !ok {
			continue
		}
		p := project.Point(orb.Point{x, y}, proj)
		_ = g.AddVertex(id, core.WithCoordinates(p.X(), p.Y()))
	}

	return g
}

// largestComponent keeps the biggest weakly connected component of g.
// Ties go to the component containing the smallest vertex ID.
func largestComponent(g *core.Graph) (*core.Graph, error) {
	und := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for _, id := range g.Vertices() {
		if err := und.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if _, err := und.AddEdge(e.From, e.To, 0); err != nil {
			return nil, err
		}
	}

	comps, err := bfs.Components(und)
	if err != nil {
		return nil, err
	}
	if len(comps) <= 1 {
		return g, nil
	}
	best := comps[0]
	for _, c := range comps[1:] {
		if len(c) > len(best) {
			best = c
		}
	}
	keep := make(map[string]bool, len(best))
	for _, id := range best {
		keep[id] = true
	}

	return core.InducedSubgraph(g, keep), nil
}
