package server

import (
	"fmt"
	"time"

	"github.com/katalvlaran/greedyroute/greedy"
	"github.com/katalvlaran/greedyroute/routing"
)

type sessionView struct {
	ID        string        `json:"id"`
	Area      string        `json:"area"`
	CreatedAt time.Time     `json:"created_at"`
	Nodes     int           `json:"nodes"`
	Edges     int           `json:"edges"`
	Center    routing.Point `json:"center"`
	Selected  int           `json:"selected"`
	Result    *resultView   `json:"result,omitempty"`
}

type resultView struct {
	Start       string                   `json:"start"`
	End         string                   `json:"end"`
	StartLabel  string                   `json:"start_label"`
	EndLabel    string                   `json:"end_label"`
	Degenerate  bool                     `json:"degenerate"`
	Message     string                   `json:"message,omitempty"`
	Routes      []routeView              `json:"routes"`
	Greedy      greedyView               `json:"greedy"`
	Trace       []greedy.Step            `json:"trace"`
	Attempts    []attemptView            `json:"attempts"`
	Coordinates map[string]routing.Point `json:"coordinates"`
	ElapsedMS   float64                  `json:"elapsed_ms"`
}

type routeView struct {
	Index       int       `json:"index"`
	Path        []string  `json:"path"`
	Labels      []string  `json:"labels"`
	Length      float64   `json:"length"`
	LengthKM    float64   `json:"length_km"`
	Steps       int       `json:"steps"`
	AverageStep float64   `json:"average_step"`
	Legs        []float64 `json:"legs,omitempty"`
	Source      string    `json:"source"`
	Greedy      bool      `json:"greedy"`
	Selected    bool      `json:"selected"`
}

type greedyView struct {
	Path    []string `json:"path,omitempty"`
	Found   bool     `json:"found"`
	Outcome string   `json:"outcome"`
	Index   int      `json:"index"`
	Match   int      `json:"match"`
	Error   string   `json:"error,omitempty"`
}

type attemptView struct {
	Strategy string   `json:"strategy"`
	Outcome  string   `json:"outcome"`
	Path     []string `json:"path,omitempty"`
	Removed  string   `json:"removed,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type areaView struct {
	Name string `json:"name"`
}

func newSessionView(s *routing.Session) (sessionView, error) {
	st := s.Network.Raw.Stats()
	v := sessionView{
		ID:        s.ID.String(),
		Area:      s.Area,
		CreatedAt: s.CreatedAt,
		Nodes:     st.VertexCount,
		Edges:     st.EdgeCount,
		Center:    routing.Point{X: st.CenterX, Y: st.CenterY},
		Selected:  s.Selected,
	}
	if s.Result != nil {
		rv, err := newResultView(s.Network, s.Result, s.Selected)
		if err != nil {
			return sessionView{}, err
		}
		v.Result = &rv
	}

	return v, nil
}

func newResultView(net *routing.Network, res *routing.Result, selected int) (resultView, error) {
	v := resultView{
		Start:       res.Start,
		End:         res.End,
		StartLabel:  net.Label(res.Start),
		EndLabel:    net.Label(res.End),
		Degenerate:  res.Degenerate,
		Routes:      make([]routeView, 0, len(res.Routes)),
		Trace:       res.Trace,
		Attempts:    make([]attemptView, 0, len(res.Attempts)),
		Coordinates: res.Coordinates,
		ElapsedMS:   float64(res.Elapsed.Microseconds()) / 1000,
		Greedy: greedyView{
			Path:    res.Greedy.Path,
			Found:   res.Greedy.Found,
			Outcome: string(res.Greedy.Outcome),
			Index:   res.Greedy.Index,
			Match:   res.Greedy.Match,
		},
	}
	if v.Trace == nil {
		v.Trace = []greedy.Step{}
	}
	if res.Greedy.Err != nil {
		v.Greedy.Error = res.Greedy.Err.Error()
	}
	if res.Empty() {
		v.Message = "no route found"
	}

	for i, r := range res.Routes {
		labels := make([]string, len(r.Path))
		for j, id := range r.Path {
			labels[j] = net.Label(id)
		}
		legs, err := r.Legs(net.Simplified)
		if err != nil {
			return resultView{}, fmt.Errorf("server: route #%d: %w", i+1, err)
		}
		v.Routes = append(v.Routes, routeView{
			Index:       i,
			Path:        r.Path,
			Labels:      labels,
			Length:      r.Length,
			LengthKM:    r.Length / 1000,
			Steps:       r.Steps(),
			AverageStep: r.AverageStep(),
			Legs:        legs,
			Source:      string(r.Source),
			Greedy:      r.Greedy,
			Selected:    i == selected,
		})
	}
	for _, a := range res.Attempts {
		av := attemptView{
			Strategy: string(a.Strategy),
			Outcome:  string(a.Outcome),
			Path:     a.Path,
			Removed:  a.Removed,
		}
		if a.Err != nil {
			av.Error = a.Err.Error()
		}
		v.Attempts = append(v.Attempts, av)
	}

	return v, nil
}
