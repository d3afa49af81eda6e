package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// DefaultLimit is the default maximum size of tile input in bytes.
const DefaultLimit = 8 << 20

// ErrTooLarge is returned when input exceeds the read limit.
var ErrTooLarge = errors.New("input exceeds size limit")

// ReadAll reads at most limit bytes from r. A non-positive limit means
// [DefaultLimit].
func ReadAll(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
	}
	return data, nil
}

// ReadTiles parses every tile block in r. It does not close r.
func ReadTiles(r io.Reader, limit int64) ([]*tile.Tile, error) {
	data, err := ReadAll(r, limit)
	if err != nil {
		return nil, err
	}
	return tile.ParseAll(string(data))
}

// ImportTiles reads a tile file at path.
func ImportTiles(path string, limit int64) ([]*tile.Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTiles(f, limit)
}

// ReadMotif parses a motif template from r.
func ReadMotif(r io.Reader, name string) (*motif.Motif, error) {
	data, err := ReadAll(r, 64<<10)
	if err != nil {
		return nil, err
	}
	return motif.Parse(name, string(data))
}

// ImportMotif reads a motif template file. The motif is named after path.
func ImportMotif(path string) (*motif.Motif, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadMotif(f, path)
}

// ReadSolution decodes a solution document from r.
func ReadSolution(r io.Reader) (*Solution, error) {
	var s Solution
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if s.Size != len(s.Grid) || s.Size != len(s.Orientations) {
		return nil, fmt.Errorf("decode: size %d does not match %d grid rows and %d orientation rows",
			s.Size, len(s.Grid), len(s.Orientations))
	}
	return &s, nil
}

// ImportSolution reads a solution document at path.
func ImportSolution(path string) (*Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSolution(f)
}
