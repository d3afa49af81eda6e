package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/cache"
	pkgio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/observability"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default lifetime of cache entries when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → solve → search → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Parse
	hooks.OnStageStart(ctx, "parse")
	parseStart := time.Now()
	tiles, idx, err := Parse(input)
	result.Stats.ParseTime = time.Since(parseStart)
	hooks.OnStageComplete(ctx, "parse", result.Stats.ParseTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.TileCount = len(tiles)

	opts.Logger.Info("parsed tiles",
		"tiles", len(tiles),
		"width", tiles[0].Codec().Width(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Solve and search
	hooks.OnStageStart(ctx, "solve")
	solveStart := time.Now()
	solved, solveHit, err := r.solve(ctx, input, tiles, idx, opts)
	result.Stats.SolveTime = time.Since(solveStart)
	hooks.OnStageComplete(ctx, "solve", result.Stats.SolveTime, err)
	if err != nil {
		return nil, err
	}
	result.Solved = solved
	result.Stats.GridSize = solved.Grid.Size
	result.CacheInfo.SolveHit = solveHit
	hooks.OnSolved(ctx, len(tiles), solved.Grid.Size, solved.Roughness())

	opts.Logger.Info("solved puzzle",
		"grid", solved.Grid.Size,
		"matches", solved.Matches(),
		"roughness", solved.Roughness(),
		"cached", solveHit,
		"duration", result.Stats.SolveTime)

	// Stage 3: Render
	hooks.OnStageStart(ctx, "render")
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, solved, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnStageComplete(ctx, "render", result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// SolveWithCacheInfo parses input and solves it with caching, returning
// cache hit info.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, input []byte, opts Options) (*Solved, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	tiles, idx, err := Parse(input)
	if err != nil {
		return nil, false, err
	}
	return r.solve(ctx, input, tiles, idx, opts)
}

// solve looks up the solution of input in the cache before solving the
// parsed tiles.
func (r *Runner) solve(ctx context.Context, input []byte, tiles []*tile.Tile, idx *adjacency.Index, opts Options) (*Solved, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, classify(err, "solve")
	}

	tilesHash := cache.Hash(input)
	cacheKey := r.Keyer.SolutionKey(tilesHash, cache.Hash([]byte(opts.Motif.String())))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			doc, err := pkgio.ReadSolution(bytes.NewReader(data))
			if err == nil {
				if s, err := FromSolution(tiles, idx, doc, opts.Motif); err == nil {
					observability.Cache().OnCacheHit(ctx, "solution")
					return s, true, nil // Cache hit
				}
			}
			// A stale or corrupt entry falls through to a fresh solve
			opts.Logger.Debug("discarding cached solution", "key", cacheKey)
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "solution")
	}

	s, err := Solve(tiles, idx, opts.Motif)
	if err != nil {
		return nil, false, err
	}
	s.TilesHash = tilesHash

	if data, err := pkgio.MarshalSolution(s.Document()); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLSolution)); err != nil {
			opts.Logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "solution", len(data))
		}
	}

	return s, false, nil // Cache miss
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, input []byte, opts Options) (*Solved, error) {
	s, _, err := r.SolveWithCacheInfo(ctx, input, opts)
	return s, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *Solved, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	// Compute cache key from the solution document
	docData, err := pkgio.MarshalSolution(s.Document())
	if err != nil {
		return nil, false, classify(err, "serialize solution for cache key")
	}
	cacheKeyHash := cache.Hash(docData)

	// Try to get all formats from cache
	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Render all formats
	rendered, err := Render(ctx, s, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLArtifact)); err != nil {
			opts.Logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
