package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/pipeline"
	"github.com/matzehuels/tilestitch/pkg/render"
)

// defaultBase names output files when tiles come from stdin.
const defaultBase = "solution"

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout wrapped in nopCloser
// when path is empty.
func (c *CLI) openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{c.out}, nil
	}
	return os.Create(path)
}

// basePath derives the base output path from the output and input paths.
// Known format extensions are stripped from output.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == stdinPath {
			return defaultBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes every rendered format. A lone txt artifact without
// an output path goes to the terminal with styling.
//
// Derived paths never replace input.
func (c *CLI) writeArtifacts(s *pipeline.Solved, artifacts map[string][]byte, opts pipeline.Options, input, output string) ([]string, error) {
	if len(opts.Formats) == 1 {
		format := opts.Formats[0]
		if format == pipeline.FormatTXT && output == "" {
			fmt.Fprintln(c.out, render.Styled(s.Image, s.Covered(), opts.MarkRune()))
			return nil, nil
		}
		path := output
		if path == "" {
			path = basePath("", input) + "." + format
			if err := checkNotInput(path, input); err != nil {
				return nil, err
			}
		}
		if err := c.writeFile(path, artifacts[format]); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	base := basePath(output, input)
	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := checkNotInput(path, input); err != nil {
			return paths, err
		}
		if err := c.writeFile(path, artifacts[format]); err != nil {
			return paths, fmt.Errorf("%s: %w", format, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func checkNotInput(path, input string) error {
	if filepath.Clean(path) == filepath.Clean(input) {
		return errors.New(errors.ErrCodeInvalidInput, "output %s would overwrite the input; pass --output", path)
	}
	return nil
}

func (c *CLI) writeFile(path string, data []byte) error {
	out, err := c.openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
