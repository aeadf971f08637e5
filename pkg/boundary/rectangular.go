package boundary

import "math"

// Rectangular is a rectangular screen described by its center and size.
type Rectangular struct {
	centerX, centerY float64
	width, height    float64
	scale            float64
}

// NewRectangular returns a rectangle centered on (cx, cy). The effective size
// is width × scale by height × scale. Values are not checked here;
// grid.Pack rejects a rectangle whose scale or either half-extent is not a
// positive finite number.
func NewRectangular(cx, cy, width, height, scale float64) *Rectangular {
	return &Rectangular{centerX: cx, centerY: cy, width: width, height: height, scale: scale}
}

// Size returns the unscaled width and height.
func (r *Rectangular) Size() (width, height float64) { return r.width, r.height }

// SetSize replaces the unscaled width and height.
func (r *Rectangular) SetSize(width, height float64) { r.width, r.height = width, height }

// SetCenter moves the rectangle.
func (r *Rectangular) SetCenter(x, y float64) { r.centerX, r.centerY = x, y }

// SetScale replaces the uniform scale factor.
func (r *Rectangular) SetScale(s float64) { r.scale = s }

func (r *Rectangular) Center() Point  { return Point{X: r.centerX, Y: r.centerY} }
func (r *Rectangular) Scale() float64 { return r.scale }

// HalfExtents returns the scaled half-width and half-height.
func (r *Rectangular) HalfExtents() (hw, hh float64) {
	return r.width / 2 * r.scale, r.height / 2 * r.scale
}

// EnclosingRadius returns max(width, height) × scale / 2.
func (r *Rectangular) EnclosingRadius() float64 {
	return math.Max(r.width, r.height) * r.scale / 2
}

// PackingExtent returns the half-extents, one per axis.
func (r *Rectangular) PackingExtent() (x, y float64) { return r.HalfExtents() }

func (r *Rectangular) IsPointInside(x, y float64) bool {
	hw, hh := r.HalfExtents()
	return math.Abs(x-r.centerX) <= hw && math.Abs(y-r.centerY) <= hh
}

func (r *Rectangular) CornersOutside(cell Rect) int {
	return countOutside(cell, r.IsPointInside)
}

// SegmentIntersects is true when either endpoint is inside, or when the
// segment crosses one of the four sides.
func (r *Rectangular) SegmentIntersects(x1, y1, x2, y2 float64) bool {
	if r.IsPointInside(x1, y1) || r.IsPointInside(x2, y2) {
		return true
	}
	seg := Segment{A: Point{X: x1, Y: y1}, B: Point{X: x2, Y: y2}}
	for _, side := range r.sides() {
		if SegmentsIntersect(seg, side) {
			return true
		}
	}
	return false
}

func (r *Rectangular) Classify(cell Rect, allowCut int) Category {
	ctr := cell.Center()
	return classify(r, cell, allowCut, r.IsPointInside(ctr.X, ctr.Y))
}

// sides returns the rectangle outline clockwise from the top-left corner.
func (r *Rectangular) sides() [4]Segment {
	hw, hh := r.HalfExtents()
	tl := Point{X: r.centerX - hw, Y: r.centerY - hh}
	tr := Point{X: r.centerX + hw, Y: r.centerY - hh}
	br := Point{X: r.centerX + hw, Y: r.centerY + hh}
	bl := Point{X: r.centerX - hw, Y: r.centerY + hh}
	return [4]Segment{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
}

func (*Rectangular) sealed() {}
