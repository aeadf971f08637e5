package grid

import "github.com/matzehuels/cellgrid/pkg/boundary"

// Classify sets Category on every cell using the boundary's own rule.
// It mutates cells in place and is idempotent.
func Classify(b boundary.Boundary, cells []Cell, allowCut int) {
	for i := range cells {
		cells[i].Category = ClassifyCell(b, cells[i], allowCut)
	}
}

// ClassifyCell returns the category of a single cell without modifying it.
func ClassifyCell(b boundary.Boundary, c Cell, allowCut int) boundary.Category {
	return b.Classify(c.Rect, allowCut)
}
