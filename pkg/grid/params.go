package grid

import (
	"fmt"

	"github.com/matzehuels/cellgrid/pkg/errors"
)

// MaxAllowCut is the largest permitted AllowCut value.
const MaxAllowCut = 3

// Mode is the admission mode derived from AllowCut.
type Mode uint8

const (
	// ModeCenter admits a cell only when its lattice center is inside.
	ModeCenter Mode = iota
	// ModePartial also admits cells that straddle the boundary.
	ModePartial
)

func (m Mode) String() string {
	switch m {
	case ModeCenter:
		return "center"
	case ModePartial:
		return "partial"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Params controls a single packing run.
//
// Physical sizes are in device pixels; everything else, including Gap and
// the grid center, is in render space. RenderScale converts physical to
// render space.
type Params struct {
	Target      int     // desired number of cells
	AspectRatio float64 // cell width / height
	Gap         float64 // spacing between adjacent cells
	SizeScale   float64 // shrink applied to each candidate physical height, in (0, 1]
	AllowCut    int     // 0 = center mode, 1..3 = partial mode

	PhysicalWidth  float64
	PhysicalHeight float64
	RenderScale    float64

	CenterX, CenterY float64 // grid center
	OffsetX, OffsetY float64 // shifts admitted cells; admission ignores it
}

// Mode returns the admission mode selected by AllowCut.
func (p Params) Mode() Mode {
	if p.AllowCut > 0 {
		return ModePartial
	}
	return ModeCenter
}

// Validate checks the numeric parameters. Target is not checked: a
// non-positive target produces an empty result rather than an error.
func (p Params) Validate() error {
	checks := []error{
		errors.ValidatePositive("physical width", p.PhysicalWidth),
		errors.ValidatePositive("physical height", p.PhysicalHeight),
		errors.ValidatePositive("render scale", p.RenderScale),
		errors.ValidatePositive("aspect ratio", p.AspectRatio),
		errors.ValidateUnitInterval("size scale", p.SizeScale),
		errors.ValidateNonNegative("gap", p.Gap),
		errors.ValidateIntRange("allow cut", p.AllowCut, 0, MaxAllowCut),
		errors.ValidateFinite("center x", p.CenterX),
		errors.ValidateFinite("center y", p.CenterY),
		errors.ValidateFinite("offset x", p.OffsetX),
		errors.ValidateFinite("offset y", p.OffsetY),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
