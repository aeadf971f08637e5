package boundary

import "math"

// Circular is a round screen described by its center and radius.
type Circular struct {
	centerX, centerY float64
	radius           float64
	scale            float64
}

// NewCircular returns a circle centered on (cx, cy) with the given radius.
// The effective radius is radius × scale. Values are not checked here;
// grid.Pack rejects a circle whose scale or effective radius is not a
// positive finite number.
func NewCircular(cx, cy, radius, scale float64) *Circular {
	return &Circular{centerX: cx, centerY: cy, radius: radius, scale: scale}
}

// Radius returns the unscaled radius.
func (c *Circular) Radius() float64 { return c.radius }

// SetRadius replaces the unscaled radius.
func (c *Circular) SetRadius(r float64) { c.radius = r }

// SetCenter moves the circle.
func (c *Circular) SetCenter(x, y float64) { c.centerX, c.centerY = x, y }

// SetScale replaces the uniform scale factor.
func (c *Circular) SetScale(s float64) { c.scale = s }

func (c *Circular) Center() Point  { return Point{X: c.centerX, Y: c.centerY} }
func (c *Circular) Scale() float64 { return c.scale }

// EnclosingRadius returns radius × scale.
func (c *Circular) EnclosingRadius() float64 { return c.radius * c.scale }

// PackingExtent returns the enclosing radius on both axes.
func (c *Circular) PackingExtent() (x, y float64) {
	r := c.EnclosingRadius()
	return r, r
}

func (c *Circular) IsPointInside(x, y float64) bool {
	return c.dist(x, y) <= c.EnclosingRadius()
}

func (c *Circular) CornersOutside(r Rect) int {
	return countOutside(r, c.IsPointInside)
}

// SegmentIntersects projects the center onto the segment. A projection that
// falls beyond either endpoint never intersects; otherwise the segment hits
// the circle when the projected point is within the enclosing radius.
// A zero-length segment is tested as a point.
func (c *Circular) SegmentIntersects(x1, y1, x2, y2 float64) bool {
	dx, dy := x2-x1, y2-y1
	length := Segment{A: Point{X: x1, Y: y1}, B: Point{X: x2, Y: y2}}.Length()
	if length == 0 {
		return c.IsPointInside(x1, y1)
	}
	nx, ny := dx/length, dy/length
	t := nx*(c.centerX-x1) + ny*(c.centerY-y1)
	if t < 0 || t > length {
		return false
	}
	return c.dist(x1+nx*t, y1+ny*t) <= c.EnclosingRadius()
}

func (c *Circular) Classify(r Rect, allowCut int) Category {
	ctr := r.Center()
	return classify(c, r, allowCut, c.dist(ctr.X, ctr.Y) <= c.EnclosingRadius())
}

func (c *Circular) dist(x, y float64) float64 {
	return math.Hypot(x-c.centerX, y-c.centerY)
}

func (*Circular) sealed() {}
