// Package pipeline provides the solve pipeline shared by the CLI and the
// HTTP server.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Parse: read tile blocks and index their borders
//  2. Solve: place every tile in the grid and stitch the interiors
//  3. Search: orient the image until the motif appears and measure roughness
//  4. Render: produce the requested output formats
//
// Solve and search results are cached together as a solution document;
// rendered artifacts are cached per format.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, input, pipeline.Options{
//	    Formats: []string{pipeline.FormatTXT, pipeline.FormatPNG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Solved.Match.Roughness)
//
// Run individual stages:
//
//	tiles, idx, err := pipeline.Parse(input)
//	solved, err := pipeline.Solve(tiles, idx, motif.SeaMonster)
//	artifacts, err := pipeline.Render(ctx, solved, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tilestitch/pkg/cache"
	"github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultMark replaces motif cells in text output.
	DefaultMark = string(render.DefaultMark)

	// DefaultScale is the PNG size of one image cell in pixels.
	DefaultScale = render.DefaultScale
)

// Format constants for output formats.
const (
	FormatTXT  = "txt"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
)

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatTXT, FormatPNG, FormatJSON, FormatDOT, FormatSVG, FormatPDF}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatTXT:  "text/plain; charset=utf-8",
	FormatPNG:  "image/png",
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz",
	FormatSVG:  "image/svg+xml",
	FormatPDF:  "application/pdf",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Render options
	Formats  []string `json:"formats,omitempty"`
	Mark     string   `json:"mark,omitempty"`
	Scale    int      `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Detailed adjacency graph labels

	// Refresh bypasses cached solutions and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Motif *motif.Motif `json:"-"`
	// Logger receives stage logs. A Runner substitutes its own when nil.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Solved is the solved puzzle.
	Solved *Solved

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TileCount  int
	GridSize   int
	ParseTime  time.Duration
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // Whether the solution came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateMark(o.Mark); err != nil {
		return err
	}
	if err := errors.ValidateScale(o.Scale); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset fields with defaults.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatTXT}
	}
	if o.Mark == "" {
		o.Mark = DefaultMark
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Motif == nil {
		o.Motif = motif.SeaMonster
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// MarkRune returns the mark as a rune. Options must be validated.
func (o *Options) MarkRune() rune {
	return []rune(o.Mark)[0]
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatTXT:
		opts.Mark = o.Mark
	case FormatPNG:
		opts.Scale = o.Scale
	case FormatDOT, FormatSVG, FormatPDF:
		opts.Detailed = o.Detailed
	}
	return opts
}
