// Package nodelink renders the tile adjacency as a node-link diagram.
//
// # Overview
//
// Every tile becomes a box and every shared border an undirected edge.
// Corners, edge tiles and interior tiles are filled in different colours,
// which makes a broken tile set easy to spot: a valid n×n puzzle shows
// exactly four corner boxes.
//
// # Usage
//
//	dot := nodelink.ToDOT(idx, nodelink.Options{Grid: grid, Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//
// When a solved grid is passed in [Options], each grid row is placed on one
// rank so the diagram follows the layout of the assembled image.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF conversion requires librsvg (rsvg-convert).
package nodelink
