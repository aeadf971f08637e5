package sink

import (
	"image/color"

	"github.com/matzehuels/cellgrid/pkg/boundary"
	"github.com/matzehuels/cellgrid/pkg/grid"
)

// Format names accepted by the pipeline.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
)

// Scene is everything a renderer draws.
type Scene struct {
	Width, Height float64
	Boundary      boundary.Boundary
	Result        grid.Result
}

// Palette assigns colors to the parts of a scene.
type Palette struct {
	Background color.RGBA
	Outline    color.RGBA
	Inside     color.RGBA
	Boundary   color.RGBA
	Outside    color.RGBA
	Unknown    color.RGBA
}

// DefaultPalette is a dark background with green inside cells and amber cut
// cells.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{18, 18, 28, 255},
		Outline:    color.RGBA{200, 200, 215, 255},
		Inside:     color.RGBA{72, 190, 120, 255},
		Boundary:   color.RGBA{236, 170, 60, 255},
		Outside:    color.RGBA{190, 70, 70, 255},
		Unknown:    color.RGBA{120, 120, 140, 255},
	}
}

// Fill returns the fill color for a category.
func (p Palette) Fill(c boundary.Category) color.RGBA {
	switch c {
	case boundary.Inside:
		return p.Inside
	case boundary.Edge:
		return p.Boundary
	case boundary.Outside:
		return p.Outside
	}
	return p.Unknown
}

// visibleCells returns the cells to draw.
func visibleCells(cells []grid.Cell, hideOutside bool) []grid.Cell {
	if !hideOutside {
		return cells
	}
	out := make([]grid.Cell, 0, len(cells))
	for _, c := range cells {
		if c.Category != boundary.Outside {
			out = append(out, c)
		}
	}
	return out
}

// outline is the drawable shape of a boundary after scaling.
type outline struct {
	circle bool
	cx, cy float64
	radius float64
	hw, hh float64
}

func outlineOf(b boundary.Boundary) (outline, bool) {
	switch s := b.(type) {
	case *boundary.Circular:
		c := s.Center()
		return outline{circle: true, cx: c.X, cy: c.Y, radius: s.EnclosingRadius()}, true
	case *boundary.Rectangular:
		c := s.Center()
		hw, hh := s.HalfExtents()
		return outline{cx: c.X, cy: c.Y, hw: hw, hh: hh}, true
	}
	return outline{}, false
}

func shapeName(b boundary.Boundary) string {
	switch b.(type) {
	case *boundary.Circular:
		return "circular"
	case *boundary.Rectangular:
		return "rectangular"
	}
	return ""
}
