package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/cellgrid/pkg/boundary"
)

// Tiny cells on a small circle: rounding the origin of the right and bottom
// neighbours pushes their centers past the radius even though the lattice
// centers are exactly on it.
func TestClassifyRoundedCellsCanFallOutside(t *testing.T) {
	b := boundary.NewCircular(0, 0, 10, 1)
	p := Params{
		Target:         5,
		AspectRatio:    1,
		Gap:            7,
		SizeScale:      1,
		PhysicalWidth:  240,
		PhysicalHeight: 240,
		RenderScale:    1,
	}

	res, err := Pack(b, p)
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	if res.Stats.SweepHeight != 3 || res.Stats.StepX != 10 {
		t.Fatalf("chose height %d step %v, want 3 and 10", res.Stats.SweepHeight, res.Stats.StepX)
	}
	for _, c := range res.Cells {
		if !b.IsPointInside(c.CenterX, c.CenterY) {
			t.Errorf("cell (%d, %d) admitted with center outside", c.Col, c.Row)
		}
	}

	Classify(b, res.Cells, p.AllowCut)

	type labeled struct {
		Col, Row int
		Category boundary.Category
	}
	var got []labeled
	for _, c := range res.Cells {
		got = append(got, labeled{c.Col, c.Row, c.Category})
	}
	want := []labeled{
		{-1, 0, boundary.Edge},
		{0, -1, boundary.Edge},
		{0, 0, boundary.Inside},
		{0, 1, boundary.Outside},
		{1, 0, boundary.Outside},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if c := res.Counts(); c != (Counts{Inside: 1, Boundary: 2, Outside: 2}) {
		t.Errorf("Counts() = %+v", c)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	b := boundary.NewCircular(120, 120, 100, 0.9)
	p := baseParams()
	p.Target = 120
	p.AllowCut = 2
	p.Gap = 1

	res, err := Pack(b, p)
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	radius := b.EnclosingRadius()

	Classify(b, res.Cells, p.AllowCut)
	first := make([]Cell, len(res.Cells))
	copy(first, res.Cells)
	Classify(b, res.Cells, p.AllowCut)

	if diff := cmp.Diff(first, res.Cells); diff != "" {
		t.Errorf("second Classify changed cells (-first +second):\n%s", diff)
	}
	if got := b.EnclosingRadius(); got != radius {
		t.Errorf("EnclosingRadius() = %v after Classify, want %v", got, radius)
	}
}

func TestClassifyAllowCutMonotonic(t *testing.T) {
	shapes := map[string]boundary.Boundary{
		"circle":    boundary.NewCircular(0, 0, 100, 1),
		"rectangle": boundary.NewRectangular(0, 0, 190, 130, 1),
	}
	var cells []Cell
	for x := -120.0; x <= 120; x += 8 {
		for y := -120.0; y <= 120; y += 8 {
			cells = append(cells, Cell{Rect: boundary.Rect{X: x, Y: y, Width: 7, Height: 7}})
		}
	}

	for name, b := range shapes {
		t.Run(name, func(t *testing.T) {
			prev := -1
			for cut := 0; cut <= MaxAllowCut; cut++ {
				kept := 0
				for _, c := range cells {
					if ClassifyCell(b, c, cut) != boundary.Outside {
						kept++
					}
				}
				if kept < prev {
					t.Errorf("allowCut %d kept %d cells, fewer than %d at allowCut %d", cut, kept, prev, cut-1)
				}
				prev = kept
			}
		})
	}
}

func TestClassifyLargePackMixesCategories(t *testing.T) {
	b := boundary.NewCircular(120, 120, 100, 1)
	p := baseParams()
	p.Target = 341
	p.SizeScale = 0.986
	p.Gap = 1
	p.AllowCut = 3

	res, err := Pack(b, p)
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	Classify(b, res.Cells, p.AllowCut)
	c := res.Counts()
	if c.Unknown != 0 {
		t.Errorf("Counts().Unknown = %d after Classify", c.Unknown)
	}
	if c.Inside == 0 || c.Boundary == 0 {
		t.Errorf("Counts() = %+v, want both inside and boundary cells", c)
	}
	if c.Total() != len(res.Cells) {
		t.Errorf("Total() = %d, want %d", c.Total(), len(res.Cells))
	}
}

func TestCountsUnclassified(t *testing.T) {
	r := Result{Cells: make([]Cell, 3)}
	if got := r.Counts(); got != (Counts{Unknown: 3}) {
		t.Errorf("Counts() = %+v, want 3 unknown", got)
	}
}
