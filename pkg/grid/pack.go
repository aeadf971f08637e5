package grid

import (
	"math"

	"github.com/matzehuels/cellgrid/pkg/boundary"
	"github.com/matzehuels/cellgrid/pkg/errors"
)

const (
	// referenceCellHeight is the starting physical cell height for a
	// reference-size screen.
	referenceCellHeight = 60.0
	// referenceScreen is the short side of the reference screen.
	referenceScreen = 240.0
	// minStartHeight bounds the starting physical height from below.
	minStartHeight = 20.0
)

// Pack finds the largest cell size whose lattice admits p.Target cells into
// b and returns those cells in column-major lattice order. When no size
// reaches the target, the size with the most admitted cells is returned and
// Stats.TargetMet is false.
//
// Cells come back with Category Unknown; run Classify to label them.
func Pack(b boundary.Boundary, p Params) (Result, error) {
	if b == nil {
		return Result{}, errors.New(errors.ErrCodeInvalidConfig, "boundary is required")
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := validateBoundary(b); err != nil {
		return Result{}, err
	}
	if p.Target <= 0 {
		return Result{Stats: Stats{Mode: p.Mode(), Target: p.Target}}, nil
	}
	return newSweep(b, p).run(), nil
}

// validateBoundary rejects a boundary whose scale or reach on either axis is
// not a positive finite number.
func validateBoundary(b boundary.Boundary) error {
	ex, ey := b.PackingExtent()
	checks := []error{
		errors.ValidatePositive("boundary scale", b.Scale()),
		errors.ValidatePositive("boundary radius", b.EnclosingRadius()),
		errors.ValidatePositive("boundary horizontal extent", ex),
		errors.ValidatePositive("boundary vertical extent", ey),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// StartHeight returns the first candidate visual height the sweep evaluates.
func StartHeight(p Params) int {
	start := math.Max(minStartHeight, roundHalfUp(referenceCellHeight*math.Min(p.PhysicalWidth, p.PhysicalHeight)/referenceScreen))
	return int(atLeastOne(roundHalfUp(start * p.RenderScale)))
}

// candidate is the lattice geometry for one sweep height.
type candidate struct {
	height int

	visualW, visualH float64
	physW, physH     float64
	stepX, stepY     float64

	maxCols, maxRows int
}

type sweep struct {
	b    boundary.Boundary
	p    Params
	mode Mode

	originX, originY float64
	shiftX, shiftY   float64
	extentX, extentY float64
}

func newSweep(b boundary.Boundary, p Params) *sweep {
	ex, ey := b.PackingExtent()
	return &sweep{
		b:       b,
		p:       p,
		mode:    p.Mode(),
		originX: p.CenterX,
		originY: p.CenterY,
		shiftX:  p.OffsetX,
		shiftY:  p.OffsetY,
		extentX: ex,
		extentY: ey,
	}
}

func (s *sweep) run() Result {
	var (
		best       Result
		iterations int
	)
	best.Stats = Stats{Mode: s.mode, Target: s.p.Target}

	for h := StartHeight(s.p); h >= 1; h-- {
		iterations++
		c := s.candidate(h)
		cells := s.fill(c, s.p.Target)

		if len(cells) >= s.p.Target {
			res := s.result(c, cells)
			res.Stats.Iterations = iterations
			res.Stats.TargetMet = true
			return res
		}
		if len(cells) > len(best.Cells) {
			best = s.result(c, cells)
		}
	}

	best.Stats.Iterations = iterations
	return best
}

// candidate derives cell and step sizes for sweep height h. The physical
// height is rounded before SizeScale and again before returning to render
// space, so visual sizes are always whole pixels.
func (s *sweep) candidate(h int) candidate {
	rs := s.p.RenderScale
	rel := atLeastOne(roundHalfUp(float64(h) / rs))
	physH := atLeastOne(roundHalfUp(rel * s.p.SizeScale))
	physW := atLeastOne(roundHalfUp(s.p.AspectRatio * physH))

	c := candidate{
		height:  h,
		physW:   physW,
		physH:   physH,
		visualW: atLeastOne(roundHalfUp(physW * rs)),
		visualH: atLeastOne(roundHalfUp(physH * rs)),
	}
	c.stepX = c.visualW + s.p.Gap
	c.stepY = c.visualH + s.p.Gap
	c.maxCols = latticeReach(s.extentX, c.stepX)
	c.maxRows = latticeReach(s.extentY, c.stepY)
	if s.mode == ModePartial {
		c.maxCols++
		c.maxRows++
	}
	return c
}

// fill enumerates the lattice window column by column and stops once limit
// cells are admitted.
func (s *sweep) fill(c candidate, limit int) []Cell {
	if c.maxCols < 0 || c.maxRows < 0 {
		return nil
	}
	cells := make([]Cell, 0, windowCap(c, limit))
	for col := -c.maxCols; col <= c.maxCols; col++ {
		for row := -c.maxRows; row <= c.maxRows; row++ {
			cell, ok := s.admit(c, col, row)
			if !ok {
				continue
			}
			cells = append(cells, cell)
			if len(cells) >= limit {
				return cells
			}
		}
	}
	return cells
}

// windowCap returns the lattice window size bounded by limit. The product is
// taken in float64 so a very wide window cannot overflow int.
func windowCap(c candidate, limit int) int {
	window := (2*float64(c.maxCols) + 1) * (2*float64(c.maxRows) + 1)
	if window < float64(limit) {
		return int(window)
	}
	return limit
}

// admit tests the lattice position (col, row). Tests run on the lattice
// before the grid offset is applied and use the unrounded rectangle; the
// stored cell is shifted by the offset and its origin rounded.
func (s *sweep) admit(c candidate, col, row int) (Cell, bool) {
	cx := s.originX + float64(col)*c.stepX
	cy := s.originY + float64(row)*c.stepY
	raw := boundary.RectAround(cx, cy, c.visualW, c.visualH)

	cornersOut := 0
	if !s.b.IsPointInside(cx, cy) {
		if s.mode == ModeCenter {
			return Cell{}, false
		}
		cornersOut = s.b.CornersOutside(raw)
		ok := cornersOut <= s.p.AllowCut && cornersOut < 4
		if !ok && cornersOut == 4 {
			ok = boundary.EdgeIntersects(s.b, raw)
		}
		if !ok {
			return Cell{}, false
		}
	}

	return Cell{
		Rect: boundary.Rect{
			X:      roundHalfUp(raw.X + s.shiftX),
			Y:      roundHalfUp(raw.Y + s.shiftY),
			Width:  c.visualW,
			Height: c.visualH,
		},
		PhysicalWidth:  c.physW,
		PhysicalHeight: c.physH,
		CenterX:        cx + s.shiftX,
		CenterY:        cy + s.shiftY,
		Col:            col,
		Row:            row,
		CornersOutside: cornersOut,
	}, true
}

func (s *sweep) result(c candidate, cells []Cell) Result {
	return Result{
		Cells: cells,
		Stats: Stats{
			Cols:               2*c.maxCols + 1,
			Rows:               2*c.maxRows + 1,
			CellWidth:          c.visualW,
			CellHeight:         c.visualH,
			PhysicalCellWidth:  c.physW,
			PhysicalCellHeight: c.physH,
			StepX:              c.stepX,
			StepY:              c.stepY,
			SweepHeight:        c.height,
			Mode:               s.mode,
			Target:             s.p.Target,
		},
	}
}

// latticeReach is the number of steps from the center that still lands
// within half a step of extent.
func latticeReach(extent, step float64) int {
	return int(math.Floor((extent + step/2) / step))
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func atLeastOne(v float64) float64 {
	return math.Max(1, v)
}
