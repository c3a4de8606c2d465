package roadnet

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"

	"github.com/katalvlaran/greedyroute/core"
)

// drivableHighways lists the highway values a car may use.
var drivableHighways = map[string]bool{
	"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true,
	"tertiary": true, "tertiary_link": true, "residential": true, "living_street": true,
	"service": true, "track": true, "unclassified": true, "road": true,
}

// direction of travel permitted along a way.
type direction int

const (
	bothWays direction = iota
	forwardOnly
	reverseOnly
)

func wayDirection(tags osm.Tags) direction {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return forwardOnly
	case "-1", "reverse":
		return reverseOnly
	case "no", "false", "0":
		return bothWays
	}
	switch tags.Find("highway") {
	case "motorway", "motorway_link", "trunk", "trunk_link":
		return forwardOnly
	}
	if tags.Find("junction") == "roundabout" {
		return forwardOnly
	}

	return bothWays
}

// highwayWay is a drivable way kept from the scan.
type highwayWay struct {
	id    osm.WayID
	nodes []osm.NodeID
	dir   direction
}

// LoadOSM reads an OpenStreetMap extract in the given format (FormatOSMXML
// or FormatOSMPBF) and builds the drivable road network.
//
// Vertices are the way nodes that are shared by several ways or end a way;
// intermediate shape points are folded into edge lengths. Edge length is
// the geodesic length of the shape in meters. Vertex coordinates are
// (lon, lat) unless a projection is requested.
//
// Errors: ErrUnsupportedFormat, ErrDecode, or the context error.
func LoadOSM(ctx context.Context, r io.Reader, format Format, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)

	var scanner osm.Scanner
	switch format {
	case FormatOSMXML:
		scanner = osmxml.New(ctx, r)
	case FormatOSMPBF:
		scanner = osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	defer scanner.Close()

	points := make(map[osm.NodeID]orb.Point)
	var ways []highwayWay
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			points[obj.ID] = orb.Point{obj.Lon, obj.Lat}
		case *osm.Way:
			if !drivableHighways[obj.Tags.Find("highway")] || len(obj.Nodes) < 2 {
				continue
			}
			ways = append(ways, highwayWay{id: obj.ID, nodes: obj.Nodes.NodeIDs(), dir: wayDirection(obj.Tags)})
		}
	}
	if err := scanner.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	g, err := buildOSMGraph(points, ways)
	if err != nil {
		return nil, err
	}

	return finish(g, o, string(format))
}

// buildOSMGraph splits ways at intersections and adds one edge (or arc pair)
// per segment. References to nodes absent from the extract break the way.
func buildOSMGraph(points map[osm.NodeID]orb.Point, ways []highwayWay) (*core.Graph, error) {
	uses := make(map[osm.NodeID]int)
	for _, w := range ways {
		for _, id := range w.nodes {
			uses[id]++
		}
		uses[w.nodes[0]]++
		uses[w.nodes[len(w.nodes)-1]]++
	}

	g := core.NewRoadGraph()
	addVertex := func(id osm.NodeID) error {
		p := points[id]
		return g.AddVertex(nodeKey(id),
			core.WithCoordinates(p.X(), p.Y()),
			core.WithMetadata("osmid", int64(id)),
			core.WithMetadata("street_count", uses[id]))
	}

	for _, w := range ways {
		var (
			start  osm.NodeID
			open   bool
			length float64
			prev   orb.Point
		)
		for _, id := range w.nodes {
			p, known := points[id]
			if !known {
				open = false
				continue
			}
			if !open {
				start, prev, length, open = id, p, 0, true
				continue
			}
			length += geo.Distance(prev, p)
			prev = p
			if uses[id] < 2 {
				continue
			}
			if err := addVertex(start); err != nil {
				return nil, err
			}
			if err := addVertex(id); err != nil {
				return nil, err
			}
			if err := addSegment(g, start, id, length, w.dir); err != nil {
				return nil, fmt.Errorf("%w: way %d: %v", ErrDecode, w.id, err)
			}
			start, length = id, 0
		}
	}

	return g, nil
}

func addSegment(g *core.Graph, a, b osm.NodeID, length float64, dir direction) error {
	from, to := nodeKey(a), nodeKey(b)
	if dir != reverseOnly {
		if _, err := g.AddEdge(from, to, length); err != nil {
			return err
		}
	}
	if dir != forwardOnly {
		if _, err := g.AddEdge(to, from, length); err != nil {
			return err
		}
	}

	return nil
}

func nodeKey(id osm.NodeID) string {
	return strconv.FormatInt(int64(id), 10)
}
