package screen

import (
	"strings"

	"github.com/matzehuels/cellgrid/pkg/errors"
)

// Shape is the outline of the physical screen.
type Shape string

const (
	ShapeCircular    Shape = "circular"
	ShapeRectangular Shape = "rectangular"
)

// Shapes lists the supported shapes.
var Shapes = []Shape{ShapeCircular, ShapeRectangular}

// ParseShape converts a case-insensitive name to a Shape. Unknown names
// return an UNSUPPORTED error.
func ParseShape(s string) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(s))) {
	case ShapeCircular:
		return ShapeCircular, nil
	case ShapeRectangular:
		return ShapeRectangular, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported shape %q (want circular or rectangular)", s)
}

func (s Shape) String() string { return string(s) }

// Next returns the other shape. It is used to toggle between outlines.
func (s Shape) Next() Shape {
	if s == ShapeCircular {
		return ShapeRectangular
	}
	return ShapeCircular
}
