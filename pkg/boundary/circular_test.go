package boundary

import "testing"

func TestCircularIsPointInside(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		x, y  float64
		want  bool
	}{
		{"center", 1, 0, 0, true},
		{"on edge", 1, 10, 0, true},
		{"inside diagonal", 1, 7, 7, true},
		{"outside diagonal", 1, 7.08, 7.08, false},
		{"beyond edge", 1, 10.001, 0, false},
		{"scaled down", 0.5, 6, 0, false},
		{"scaled up", 2, 19, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCircular(0, 0, 10, tt.scale)
			if got := c.IsPointInside(tt.x, tt.y); got != tt.want {
				t.Errorf("IsPointInside(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCircularEnclosingRadius(t *testing.T) {
	c := NewCircular(5, 5, 10, 0.5)
	if got := c.EnclosingRadius(); got != 5 {
		t.Errorf("EnclosingRadius() = %v, want 5", got)
	}
	if x, y := c.PackingExtent(); x != 5 || y != 5 {
		t.Errorf("PackingExtent() = (%v, %v), want (5, 5)", x, y)
	}

	c.SetScale(2)
	c.SetRadius(30)
	if got := c.EnclosingRadius(); got != 60 {
		t.Errorf("EnclosingRadius() after reconfigure = %v, want 60", got)
	}

	c.SetCenter(100, -20)
	if got := c.Center(); got != (Point{X: 100, Y: -20}) {
		t.Errorf("Center() after SetCenter = %v, want (100, -20)", got)
	}
	if !c.IsPointInside(100, 39) || c.IsPointInside(5, 5) {
		t.Error("IsPointInside() does not follow the moved center")
	}
}

func TestCircularCornersOutside(t *testing.T) {
	c := NewCircular(0, 0, 10, 1)
	tests := []struct {
		name string
		r    Rect
		want int
	}{
		{"fully inside", Rect{X: -2, Y: -2, Width: 4, Height: 4}, 0},
		{"straddling right edge", Rect{X: 8, Y: -1, Width: 4, Height: 2}, 2},
		{"one corner out", Rect{X: 0, Y: 0, Width: 7.5, Height: 7.5}, 1},
		{"far away", Rect{X: 20, Y: 20, Width: 5, Height: 5}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CornersOutside(tt.r); got != tt.want {
				t.Errorf("CornersOutside(%+v) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestCircularSegmentIntersects(t *testing.T) {
	c := NewCircular(0, 0, 10, 1)
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           bool
	}{
		{"through center", -20, 0, 20, 0, true},
		{"chord", -20, 9, 20, 9, true},
		{"tangent", -20, 10, 20, 10, true},
		{"miss", -20, 15, 20, 15, false},
		{"projection before start", 20, 0, 30, 0, false},
		{"starts inside, projection before start", 5, 0, 30, 0, false},
		{"vertical chord", 9, -20, 9, 20, true},
		{"zero length inside", 3, 3, 3, 3, true},
		{"zero length outside", 30, 3, 30, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SegmentIntersects(tt.x1, tt.y1, tt.x2, tt.y2); got != tt.want {
				t.Errorf("SegmentIntersects(%v,%v,%v,%v) = %v, want %v", tt.x1, tt.y1, tt.x2, tt.y2, got, tt.want)
			}
		})
	}
}

func TestCircularClassify(t *testing.T) {
	c := NewCircular(0, 0, 10, 1)
	tests := []struct {
		name     string
		r        Rect
		allowCut int
		want     Category
	}{
		{"fully inside", Rect{X: -2, Y: -2, Width: 4, Height: 4}, 0, Inside},
		{"fully inside any cut", Rect{X: -2, Y: -2, Width: 4, Height: 4}, 3, Inside},
		{"center inside, strict", Rect{X: 6, Y: -3, Width: 6, Height: 6}, 0, Edge},
		{"center inside, cut", Rect{X: 6, Y: -3, Width: 6, Height: 6}, 1, Edge},
		{"center outside, two out, cut 2", Rect{X: 9.5, Y: -1, Width: 4, Height: 2}, 2, Edge},
		{"center outside, two out, cut 1", Rect{X: 9.5, Y: -1, Width: 4, Height: 2}, 1, Outside},
		{"center outside, two out, strict", Rect{X: 9.5, Y: -1, Width: 4, Height: 2}, 0, Outside},
		{"edge crosses, cut", Rect{X: -20, Y: 9, Width: 40, Height: 5}, 1, Edge},
		{"edge crosses, strict", Rect{X: -20, Y: 9, Width: 40, Height: 5}, 0, Outside},
		{"far away", Rect{X: 50, Y: 50, Width: 5, Height: 5}, 3, Outside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.r, tt.allowCut); got != tt.want {
				t.Errorf("Classify(%+v, %d) = %v, want %v", tt.r, tt.allowCut, got, tt.want)
			}
		})
	}
}

func TestCircularClassifyIdempotent(t *testing.T) {
	c := NewCircular(120, 120, 100, 0.986)
	r := Rect{X: 200, Y: 100, Width: 30, Height: 30}
	radius := c.EnclosingRadius()

	first := c.Classify(r, 2)
	second := c.Classify(r, 2)
	if first != second {
		t.Errorf("Classify() not idempotent: %v then %v", first, second)
	}
	if got := c.EnclosingRadius(); got != radius {
		t.Errorf("EnclosingRadius() changed from %v to %v", radius, got)
	}
}
