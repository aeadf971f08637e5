package boundary

import "math"

// Boundary is the containment contract shared by every screen shape.
// The set of implementations is closed: only [Circular] and [Rectangular]
// satisfy it.
type Boundary interface {
	// IsPointInside reports whether (x, y) lies inside or on the shape.
	IsPointInside(x, y float64) bool

	// EnclosingRadius returns the maximum reach from the center.
	EnclosingRadius() float64

	// PackingExtent returns the horizontal and vertical reach used to size
	// a symmetric lattice around the center.
	PackingExtent() (x, y float64)

	// CornersOutside counts the corners of r that fail IsPointInside.
	CornersOutside(r Rect) int

	// SegmentIntersects reports whether the segment (x1,y1)-(x2,y2) touches
	// the shape.
	SegmentIntersects(x1, y1, x2, y2 float64) bool

	// Classify tags r as Inside, Boundary or Outside under the allowCut
	// tolerance. It has no side effects.
	Classify(r Rect, allowCut int) Category

	// Center returns the shape's center in render space.
	Center() Point

	// Scale returns the uniform scale applied to the shape's extent.
	Scale() float64

	sealed()
}

var (
	_ Boundary = (*Circular)(nil)
	_ Boundary = (*Rectangular)(nil)
)

// Point is a render-space coordinate.
type Point struct {
	X, Y float64
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y) }

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Corners returns the corners in the order top-left, top-right,
// bottom-left, bottom-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// Edges returns the edges in the order top, bottom, left, right, built from
// [Rect.Corners].
func (r Rect) Edges() [4]Segment {
	c := r.Corners()
	return [4]Segment{
		{A: c[0], B: c[1]},
		{A: c[2], B: c[3]},
		{A: c[0], B: c[2]},
		{A: c[1], B: c[3]},
	}
}

// RectAround returns the rectangle of the given size centered on (cx, cy).
func RectAround(cx, cy, width, height float64) Rect {
	return Rect{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}

// countOutside counts corners of r rejected by inside.
func countOutside(r Rect, inside func(x, y float64) bool) int {
	n := 0
	for _, c := range r.Corners() {
		if !inside(c.X, c.Y) {
			n++
		}
	}
	return n
}

// EdgeIntersects reports whether any of the four edges of r satisfies
// b.SegmentIntersects.
func EdgeIntersects(b Boundary, r Rect) bool {
	for _, e := range r.Edges() {
		if b.SegmentIntersects(e.A.X, e.A.Y, e.B.X, e.B.Y) {
			return true
		}
	}
	return false
}

// classify is the tie-break policy shared by both shapes. centerInside is the
// shape-specific center test.
func classify(b Boundary, r Rect, allowCut int, centerInside bool) Category {
	cornersOut := b.CornersOutside(r)
	if cornersOut == 0 {
		return Inside
	}
	cornersIn := 4 - cornersOut
	switch {
	case centerInside:
		return Edge
	case allowCut > 0 && cornersOut <= allowCut:
		return Edge
	case allowCut > 0 && cornersIn == 0 && EdgeIntersects(b, r):
		return Edge
	}
	return Outside
}
