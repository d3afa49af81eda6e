// Package render turns an assembled image into output bytes.
//
// # Sinks
//
//   - [Text]: '#' and '.' rows with motif cells replaced by a mark character
//   - [Styled]: the same rows coloured for a terminal with lipgloss
//   - [PNG]: one square of scale×scale pixels per cell
//
// All sinks take the image in the orientation the motif was found in,
// together with the covered cells of the match. A nil cover renders the
// plain image.
//
// # Format Conversion
//
// [ToPDF] converts SVG (for example the adjacency graph from the
// [nodelink] subpackage) to PDF using the external rsvg-convert tool.
package render
