package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/render"
	"github.com/matzehuels/tilestitch/pkg/solver"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Grid, when set, pins every grid row to one rank and adds the tile
	// orientation to detailed labels.
	Grid *solver.Grid
	// Detailed includes the tile class and neighbour count in node labels.
	// When false, only the tile id is shown.
	Detailed bool
}

var classColors = map[adjacency.Class]string{
	adjacency.Corner:   "#f2c14e",
	adjacency.EdgeTile: "#4f9dde",
	adjacency.Interior: "white",
}

// ToDOT converts the adjacency of idx to Graphviz DOT format. Every pair of
// tiles sharing a border becomes one undirected edge. Node colour follows
// the tile class.
//
// Tiles whose class cannot be determined are drawn with a dashed outline.
func ToDOT(idx *adjacency.Index, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	orient := orientations(opts.Grid)
	for _, id := range idx.IDs() {
		neighbors, _ := idx.NeighborsOf(id)
		class, err := idx.Classify(id)
		label := fmtLabel(id, len(neighbors), class, err, orient, opts.Detailed)
		attrs := fmtAttrs(label, class, err)
		fmt.Fprintf(&buf, "  %q [%s];\n", strconv.Itoa(id), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, id := range idx.IDs() {
		neighbors, _ := idx.NeighborsOf(id)
		for _, n := range neighbors {
			if id < n {
				fmt.Fprintf(&buf, "  %q -- %q;\n", strconv.Itoa(id), strconv.Itoa(n))
			}
		}
	}

	if opts.Grid != nil {
		buf.WriteString("\n")
		for _, row := range opts.Grid.IDs() {
			ids := make([]string, len(row))
			for i, id := range row {
				ids[i] = strconv.Quote(strconv.Itoa(id))
			}
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func orientations(g *solver.Grid) map[int]string {
	if g == nil {
		return nil
	}
	out := make(map[int]string, g.Size*g.Size)
	for _, row := range g.Cells {
		for _, t := range row {
			out[t.ID] = t.Orientation.String()
		}
	}
	return out
}

func fmtLabel(id, neighbors int, class adjacency.Class, classErr error, orient map[int]string, detailed bool) string {
	label := strconv.Itoa(id)
	if !detailed {
		return label
	}

	parts := []string{fmt.Sprintf("neighbors: %d", neighbors)}
	if classErr == nil {
		parts = append(parts, "class: "+class.String())
	}
	if o, ok := orient[id]; ok {
		parts = append(parts, "orientation: "+o)
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(label string, class adjacency.Class, classErr error) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if classErr != nil {
		return append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	if c := classColors[class]; c != "white" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}
