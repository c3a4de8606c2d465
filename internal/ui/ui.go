// Package ui renders routing results as colored terminal tables.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/greedyroute/routing"
)

// Palette.
var (
	Brand  = color.New(color.FgHiGreen, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
	Marked = color.New(color.FgHiMagenta, color.Bold)
)

// Banner prints the program banner.
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s %s\n\n", Brand.Sprint("greedyroute"), Subtle.Sprint("— "+subtitle))
}

// Table prints an aligned table. Widths are measured on the plain cell
// text, so cells must not carry color codes.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Fprintln(w, strings.TrimRight(headerLine, " "))
	Subtle.Fprintln(w, strings.TrimRight(sepLine, " "))

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// StatusIcon returns a check mark or a cross.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}

// Routes prints the route list of res, labelling vertices through net.
// Lengths are shown in network units and, assuming meters, in km.
func Routes(w io.Writer, net *routing.Network, res *routing.Result) {
	fmt.Fprintf(w, "%s %s %s %s\n\n",
		Info.Sprint("from"), net.Label(res.Start), Info.Sprint("to"), net.Label(res.End))

	if res.Degenerate {
		Warn.Fprintln(w, "  start and end are the same node")
	}
	if res.Empty() {
		Bad.Fprintln(w, "  no route found")
		return
	}

	rows := make([][]string, 0, len(res.Routes))
	for i, r := range res.Routes {
		kind := string(r.Source)
		if r.Greedy {
			kind = "greedy"
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", i+1),
			kind,
			fmt.Sprintf("%.1f", r.Length),
			fmt.Sprintf("%.2f", r.Length/1000),
			fmt.Sprintf("%d", r.Steps()),
			fmt.Sprintf("%.1f", r.AverageStep()),
			labelPath(net, r.Path),
		})
	}
	Table(w, []string{"ROUTE", "SOURCE", "LENGTH", "KM", "STEPS", "AVG STEP", "PATH"}, rows)
	fmt.Fprintln(w)
}

// Greedy prints what happened to the greedy route.
func Greedy(w io.Writer, res *routing.Result) {
	g := res.Greedy
	fmt.Fprintf(w, "  %s greedy search: %s, %d edges explored",
		StatusIcon(g.Found), g.Outcome, len(res.Trace))
	if g.Index >= 0 {
		fmt.Fprintf(w, ", shown as %s", Marked.Sprintf("#%d", g.Index+1))
	}
	if g.Match >= 0 {
		fmt.Fprintf(w, ", same as %s", Marked.Sprintf("#%d", g.Match+1))
	}
	if g.Err != nil {
		fmt.Fprintf(w, " (%v)", g.Err)
	}
	fmt.Fprintln(w)
}

// Attempts prints the alternative strategies in execution order.
func Attempts(w io.Writer, net *routing.Network, res *routing.Result) {
	if len(res.Attempts) == 0 {
		return
	}
	rows := make([][]string, 0, len(res.Attempts))
	for _, a := range res.Attempts {
		removed := ""
		if a.Removed != "" {
			removed = net.Label(a.Removed)
		}
		rows = append(rows, []string{string(a.Strategy), string(a.Outcome), removed, labelPath(net, a.Path)})
	}
	fmt.Fprintln(w)
	Table(w, []string{"STRATEGY", "OUTCOME", "REMOVED", "PATH"}, rows)
}

// labelPath joins the display labels of path, eliding the middle of long
// paths.
func labelPath(net *routing.Network, path []string) string {
	const keep = 4
	labels := make([]string, 0, len(path))
	for i, id := range path {
		if len(path) > 2*keep+1 && i == keep {
			labels = append(labels, fmt.Sprintf("…(%d)…", len(path)-2*keep))
		}
		if len(path) > 2*keep+1 && i >= keep && i < len(path)-keep {
			continue
		}
		labels = append(labels, net.Label(id))
	}

	return strings.Join(labels, " → ")
}
