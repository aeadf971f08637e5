package grid

import "github.com/matzehuels/cellgrid/pkg/boundary"

// Cell is one admitted lattice position.
//
// The embedded Rect is the render-space rectangle with its origin rounded to
// whole pixels. CenterX and CenterY keep the exact lattice center, both
// including the grid offset.
type Cell struct {
	boundary.Rect

	PhysicalWidth  float64
	PhysicalHeight float64

	CenterX, CenterY float64
	Col, Row         int // lattice indices relative to the grid center

	// CornersOutside is the corner count recorded at admission. It is zero
	// for cells admitted by the center test.
	CornersOutside int

	// Category is Unknown until Classify runs.
	Category boundary.Category
}

// Stats describes the chosen cell size and the search that found it.
type Stats struct {
	Cols, Rows int // lattice window size, including cells that were rejected

	CellWidth          float64 // visual
	CellHeight         float64
	PhysicalCellWidth  float64
	PhysicalCellHeight float64
	StepX, StepY       float64

	SweepHeight int // candidate visual height that produced the result
	Iterations  int // candidate heights evaluated

	Mode      Mode
	Target    int
	TargetMet bool
}

// Result is the output of Pack.
type Result struct {
	Cells []Cell
	Stats Stats
}

// Counts tallies cells per category.
type Counts struct {
	Inside   int
	Boundary int
	Outside  int
	Unknown  int
}

// Total returns the number of cells counted.
func (c Counts) Total() int {
	return c.Inside + c.Boundary + c.Outside + c.Unknown
}

// Counts tallies r.Cells by category.
func (r Result) Counts() Counts {
	var c Counts
	for _, cell := range r.Cells {
		switch cell.Category {
		case boundary.Inside:
			c.Inside++
		case boundary.Edge:
			c.Boundary++
		case boundary.Outside:
			c.Outside++
		default:
			c.Unknown++
		}
	}
	return c
}
