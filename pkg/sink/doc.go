// Package sink provides output format renderers for packed grids.
//
// # Overview
//
// A "sink" transforms a [Scene] (the render surface, its boundary and a
// classified [grid.Result]) into a final output format:
//
//   - SVG: vector drawing of the outline and every cell
//   - JSON: cell data and packing statistics for external tools
//   - PNG: raster image drawn with fogleman/gg
//
// # SVG Output
//
//	svg := sink.RenderSVG(scene,
//	    sink.WithPalette(sink.DefaultPalette()),
//	    sink.WithHideOutside(),
//	)
//
// Cells carry their category as a CSS class, so a stylesheet can restyle
// inside, boundary, and outside cells independently.
//
// # JSON Output
//
//	data, err := sink.RenderJSON(scene, sink.WithJSONRunID(id))
//
// # PNG Output
//
//	png, err := sink.RenderPNG(scene, sink.WithScale(2))
//
// PNG rendering is pure Go and needs no external tools.
package sink
