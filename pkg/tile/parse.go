package tile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/tilestitch/pkg/edge"
	"github.com/matzehuels/tilestitch/pkg/raster"
)

var (
	// ErrEmptyInput is returned when no tile blocks are found.
	ErrEmptyInput = errors.New("no tiles in input")

	// ErrInvalidHeader is returned when a block does not start with "Tile <id>:".
	ErrInvalidHeader = errors.New("invalid tile header")

	// ErrNotSquare is returned when a tile's pixel block is not square.
	ErrNotSquare = errors.New("tile is not square")

	// ErrTooSmall is returned for tiles narrower than two pixels, which have
	// no borders distinct from their interior.
	ErrTooSmall = errors.New("tile must be at least 2 pixels wide")

	// ErrWidthMismatch is returned by [ParseAll] when tiles differ in width.
	ErrWidthMismatch = errors.New("tile width differs from first tile")

	// ErrDuplicateID is returned by [ParseAll] when two tiles share an id.
	ErrDuplicateID = errors.New("duplicate tile id")
)

// Parse reads a single tile block: a "Tile <id>:" header followed by a
// square block of '#' and '.' rows.
func Parse(text string) (*Tile, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	id, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	body := lines[1:]
	width := len(body)
	if width < 2 {
		return nil, fmt.Errorf("tile %d: %w", id, ErrTooSmall)
	}
	rows := make([][]raster.Pixel, width)
	for i, line := range body {
		row, err := raster.ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("tile %d: row %d: %w", id, i, err)
		}
		if len(row) != width {
			return nil, fmt.Errorf("tile %d: row %d has %d pixels for %d rows: %w", id, i, len(row), width, ErrNotSquare)
		}
		rows[i] = row
	}

	codec, err := edge.NewCodec(width)
	if err != nil {
		return nil, fmt.Errorf("tile %d: %w", id, err)
	}
	return fromRows(id, rows, codec)
}

// ParseAll reads blank-line separated tile blocks. All tiles must share the
// width of the first one and have distinct ids.
func ParseAll(text string) ([]*Tile, error) {
	var tiles []*Tile
	seen := make(map[int]bool)
	for _, block := range splitBlocks(text) {
		t, err := Parse(block)
		if err != nil {
			return nil, err
		}
		if len(tiles) > 0 && t.codec.Width() != tiles[0].codec.Width() {
			return nil, fmt.Errorf("tile %d: width %d, want %d: %w", t.ID, t.codec.Width(), tiles[0].codec.Width(), ErrWidthMismatch)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("tile %d: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = true
		tiles = append(tiles, t)
	}
	if len(tiles) == 0 {
		return nil, ErrEmptyInput
	}
	return tiles, nil
}

// fromRows extracts the four clockwise borders and the trimmed interior.
func fromRows(id int, rows [][]raster.Pixel, codec edge.Codec) (*Tile, error) {
	n := len(rows)
	top := rows[0]
	right := make([]raster.Pixel, n)
	bottom := make([]raster.Pixel, n)
	left := make([]raster.Pixel, n)
	for i := 0; i < n; i++ {
		right[i] = rows[i][n-1]
		bottom[i] = rows[n-1][n-1-i]
		left[i] = rows[n-1-i][0]
	}

	var sides [4]edge.Pattern
	for i, border := range [][]raster.Pixel{top, right, bottom, left} {
		p, err := codec.Encode(border)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %s: %w", id, Side(i), err)
		}
		sides[i] = p
	}

	inner := make([][]raster.Pixel, 0, n-2)
	for _, row := range rows[1 : n-1] {
		inner = append(inner, row[1:n-1])
	}
	interior, err := raster.NewBlock(inner)
	if err != nil {
		return nil, fmt.Errorf("tile %d: %w", id, err)
	}
	return New(id, sides, interior, codec), nil
}

func parseHeader(line string) (int, error) {
	rest, ok := strings.CutPrefix(line, "Tile ")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeader, line)
	}
	rest, ok = strings.CutSuffix(rest, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeader, line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidHeader, line, err)
	}
	return id, nil
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func splitBlocks(text string) []string {
	var (
		blocks  []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}
