package roadnet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/greedyroute/core"
)

// nodeLink is the networkx node-link document. Newer networkx versions
// name the edge list "edges", older ones "links".
type nodeLink struct {
	Directed   *bool           `json:"directed"`
	Multigraph bool            `json:"multigraph"`
	Graph      json.RawMessage `json:"graph"`
	Nodes      []nodeLinkNode  `json:"nodes"`
	Links      []nodeLinkEdge  `json:"links"`
	Edges      []nodeLinkEdge  `json:"edges"`
}

type nodeLinkNode struct {
	ID interface{} `json:"id"`
	X  *float64    `json:"x"`
	Y  *float64    `json:"y"`
}

type nodeLinkEdge struct {
	Source interface{} `json:"source"`
	Target interface{} `json:"target"`
	Length *float64    `json:"length"`
}

// LoadJSON reads a node-link road network.
//
// Node "id" may be a number or a string; "x" and "y" become coordinates.
// Each link becomes one edge with its "length", or an unmeasured edge when
// the length is absent. An undirected document yields both arcs per link.
// A document whose nodes sit inside a top-level "graph" object is accepted.
//
// Errors: ErrDecode.
func LoadJSON(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)

	doc, err := decodeNodeLink(r)
	if err != nil {
		return nil, err
	}

	g := core.NewRoadGraph()
	for i, n := range doc.Nodes {
		id, err := idString(n.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrDecode, i, err)
		}
		var vopts []core.VertexOption
		if n.X != nil && n.Y != nil {
			vopts = append(vopts, core.WithCoordinates(*n.X, *n.Y))
		}
		if err := g.AddVertex(id, vopts...); err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrDecode, i, err)
		}
	}

	links := doc.Links
	if len(links) == 0 {
		links = doc.Edges
	}
	directed := doc.Directed == nil || *doc.Directed
	for i, l := range links {
		if err := addLink(g, l, directed); err != nil {
			return nil, fmt.Errorf("%w: link %d: %v", ErrDecode, i, err)
		}
	}

	return finish(g, o, "json")
}

func decodeNodeLink(r io.Reader) (*nodeLink, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc nodeLink
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(doc.Nodes) == 0 && len(doc.Graph) > 0 && doc.Graph[0] == '{' {
		var inner nodeLink
		dec := json.NewDecoder(bytes.NewReader(doc.Graph))
		dec.UseNumber()
		if err := dec.Decode(&inner); err == nil && len(inner.Nodes) > 0 {
			if inner.Directed == nil {
				inner.Directed = doc.Directed
			}
			return &inner, nil
		}
	}

	return &doc, nil
}

func addLink(g *core.Graph, l nodeLinkEdge, directed bool) error {
	from, err := idString(l.Source)
	if err != nil {
		return err
	}
	to, err := idString(l.Target)
	if err != nil {
		return err
	}

	var w float64
	var eopts []core.EdgeOption
	if l.Length != nil {
		w = *l.Length
	} else {
		eopts = append(eopts, core.WithUnmeasured())
	}
	if _, err := g.AddEdge(from, to, w, eopts...); err != nil {
		return err
	}
	if !directed && from != to {
		if _, err := g.AddEdge(to, from, w, eopts...); err != nil {
			return err
		}
	}

	return nil
}

// idString normalizes a node-link identifier.
func idString(v interface{}) (string, error) {
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", core.ErrEmptyVertexID
		}
		return id, nil
	case json.Number:
		return id.String(), nil
	case nil:
		return "", core.ErrEmptyVertexID
	default:
		return "", fmt.Errorf("unsupported id type %T", v)
	}
}
