// Package export renders a generated level to formats outside the engine's
// core: indented JSON, a Tiled-compatible TMJ tilemap, and an SVG
// visualization.
package export
