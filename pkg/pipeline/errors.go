package pipeline

import (
	"context"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/assemble"
	"github.com/matzehuels/tilestitch/pkg/edge"
	"github.com/matzehuels/tilestitch/pkg/errors"
	pkgio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/raster"
	"github.com/matzehuels/tilestitch/pkg/solver"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// errorRules maps domain sentinels to error codes. Order matters: the first
// matching rule wins.
var errorRules = []errors.Rule{
	{Code: errors.ErrCodeCanceled, Targets: []error{context.Canceled, context.DeadlineExceeded}},
	{Code: errors.ErrCodeInvalidInput, Targets: []error{pkgio.ErrTooLarge, tile.ErrEmptyInput}},
	{Code: errors.ErrCodeInvalidTile, Targets: []error{
		tile.ErrInvalidHeader, tile.ErrNotSquare, tile.ErrTooSmall, tile.ErrWidthMismatch,
		tile.ErrDuplicateID, raster.ErrIllegalPixel, raster.ErrNotRectangular,
		edge.ErrInvalidWidth, edge.ErrWidthMismatch, adjacency.ErrDuplicateTile,
	}},
	{Code: errors.ErrCodeNoOrientation, Targets: []error{tile.ErrNoOrientation}},
	{Code: errors.ErrCodeAdjacency, Targets: []error{
		adjacency.ErrNeighborCount, adjacency.ErrCensus, adjacency.ErrUnknownTile,
		solver.ErrNotSquareGrid, solver.ErrAnchor, solver.ErrMissingNeighbor,
		solver.ErrAmbiguous, solver.ErrReused, solver.ErrOverflow,
		solver.ErrSeamMismatch, solver.ErrInvalidSolution, assemble.ErrInteriorMismatch,
	}},
	{Code: errors.ErrCodeInvalidMotif, Targets: []error{motif.ErrEmptyMotif, motif.ErrInvalidMotif}},
	{Code: errors.ErrCodeMotifNotFound, Targets: []error{motif.ErrNotFound}},
}

func classify(err error, format string, args ...any) error {
	return errors.Classify(err, errorRules, format, args...)
}
