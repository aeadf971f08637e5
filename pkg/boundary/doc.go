// Package boundary provides the screen shapes cells are packed into.
//
// # Overview
//
// A [Boundary] is the physical outline of a display expressed in render-space
// pixels. Two shapes exist, [Circular] and [Rectangular], and the interface is
// sealed so no other implementation can satisfy it. Every shape answers the
// same five questions:
//
//   - [Boundary.IsPointInside]: point containment (edges count as inside)
//   - [Boundary.EnclosingRadius]: maximum reach from the center
//   - [Boundary.CornersOutside]: how many of a cell's corners lie outside
//   - [Boundary.SegmentIntersects]: whether a line segment touches the shape
//   - [Boundary.Classify]: the final [Category] of a cell
//
// # Cell Geometry
//
// Cells are axis-aligned [Rect] values with Y growing downward. Corners are
// always enumerated top-left, top-right, bottom-left, bottom-right, and edges
// top, bottom, left, right, so corner counts and edge tests agree across
// shapes.
//
// # Classification
//
// [Boundary.Classify] tags a cell inside when no corner is outside. A cell
// with at least one corner outside is a boundary cell when its center is
// inside the shape, when the number of outside corners does not exceed the
// allowCut tolerance, or (with allowCut > 0 and every corner outside) when one
// of its edges crosses the shape. Anything else is outside:
//
//	b := boundary.NewCircular(120, 120, 100, 1)
//	cat := b.Classify(boundary.Rect{X: 110, Y: 110, Width: 20, Height: 20}, 1)
//	// cat == boundary.Inside
//
// # Mutation
//
// Shapes are plain values configured through setters. Callers must not
// reconfigure a shape while a packing run that uses it is in flight.
package boundary
