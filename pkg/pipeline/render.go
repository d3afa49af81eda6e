package pipeline

import (
	"context"
	"fmt"

	pkgio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/render"
	"github.com/matzehuels/tilestitch/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s *Solved, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var dot string
	graph := func() string {
		if dot == "" {
			dot = nodelink.ToDOT(s.Index, nodelink.Options{Grid: s.Grid, Detailed: opts.Detailed})
		}
		return dot
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, classify(err, "render")
		}

		var data []byte
		var err error

		switch format {
		case FormatTXT:
			data = render.Text(s.Image, s.Covered(), opts.MarkRune())
		case FormatPNG:
			data, err = render.PNG(s.Image, s.Covered(), opts.Scale)
		case FormatJSON:
			data, err = pkgio.MarshalSolution(s.Document())
		case FormatDOT:
			data = []byte(graph())
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, graph())
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, graph())
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, classify(err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
