// Package grid packs a rectangular lattice of cells into a screen boundary.
//
// The packer sweeps the visual cell height downward from a starting size
// derived from the physical screen and, for each candidate size, enumerates a
// center-anchored lattice and admits cells against the boundary. The first
// size that admits the target number of cells wins; if none does, the size
// that admitted the most cells is returned.
//
// # Admission Modes
//
// With AllowCut == 0 the packer runs in center mode: a cell is admitted only
// when its lattice center lies inside the boundary. With AllowCut in 1..3 it
// runs in partial mode: the lattice reaches one step further in each
// direction and a cell whose center is outside is admitted when at most
// AllowCut of its corners fall outside, or when all four do but one of its
// edges still crosses the boundary.
//
// # Classification
//
// Packing and classification are separate steps. [Classify] labels each cell
// inside, boundary, or outside using the shape's own rule on the cell's
// rounded rectangle:
//
//	res, err := grid.Pack(b, params)
//	if err != nil {
//	    return err
//	}
//	grid.Classify(b, res.Cells, params.AllowCut)
//	counts := res.Counts()
//
// The two steps use slightly different geometry. Admission works with the
// unrounded lattice center while classification sees the rectangle after its
// origin has been rounded to whole pixels, so a cell admitted in center mode
// can occasionally classify as outside. Callers that need a hard guarantee
// should filter on [Cell.Category].
package grid
