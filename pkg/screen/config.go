package screen

import (
	"github.com/matzehuels/cellgrid/pkg/boundary"
	"github.com/matzehuels/cellgrid/pkg/errors"
	"github.com/matzehuels/cellgrid/pkg/grid"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	DefaultName            = "Custom"
	DefaultPhysicalWidth   = 240.0
	DefaultPhysicalHeight  = 240.0
	DefaultShape           = ShapeCircular
	DefaultTargetCells     = 341
	DefaultSizeScale       = 0.986
	DefaultGap             = 1.0
	DefaultAspectRatio     = 1.0
	DefaultAllowCut        = 1
	DefaultMaxRenderWidth  = 960.0
	DefaultMaxRenderHeight = 960.0
	DefaultBoundaryScale   = 1.0
)

// Config describes a physical screen and the packing parameters tuned for it.
type Config struct {
	Name           string  `toml:"name"`
	PhysicalWidth  float64 `toml:"physical_width"`
	PhysicalHeight float64 `toml:"physical_height"`
	Shape          Shape   `toml:"shape"`

	TargetCells int     `toml:"target_cells"`
	SizeScale   float64 `toml:"size_scale"`
	Gap         float64 `toml:"gap"`
	AspectRatio float64 `toml:"aspect_ratio"`
	AllowCut    int     `toml:"allow_cut"`

	MaxRenderWidth  float64 `toml:"max_render_width"`
	MaxRenderHeight float64 `toml:"max_render_height"`

	OffsetX       float64 `toml:"offset_x"`
	OffsetY       float64 `toml:"offset_y"`
	BoundaryScale float64 `toml:"boundary_scale"`
}

// DefaultConfig returns the configuration of a 240×240 round screen.
func DefaultConfig() Config {
	return Config{
		Name:            DefaultName,
		PhysicalWidth:   DefaultPhysicalWidth,
		PhysicalHeight:  DefaultPhysicalHeight,
		Shape:           DefaultShape,
		TargetCells:     DefaultTargetCells,
		SizeScale:       DefaultSizeScale,
		Gap:             DefaultGap,
		AspectRatio:     DefaultAspectRatio,
		AllowCut:        DefaultAllowCut,
		MaxRenderWidth:  DefaultMaxRenderWidth,
		MaxRenderHeight: DefaultMaxRenderHeight,
		BoundaryScale:   DefaultBoundaryScale,
	}
}

// Clone returns a copy of c named as a copy.
func (c Config) Clone() Config {
	c.Name += " (copy)"
	return c
}

// Validate checks the fields that do not depend on the render surface.
func (c Config) Validate() error {
	if _, err := ParseShape(string(c.Shape)); err != nil {
		return err
	}
	checks := []error{
		errors.ValidatePositive("physical width", c.PhysicalWidth),
		errors.ValidatePositive("physical height", c.PhysicalHeight),
		errors.ValidatePositive("max render width", c.MaxRenderWidth),
		errors.ValidatePositive("max render height", c.MaxRenderHeight),
		errors.ValidatePositive("aspect ratio", c.AspectRatio),
		errors.ValidateUnitInterval("size scale", c.SizeScale),
		errors.ValidateNonNegative("gap", c.Gap),
		errors.ValidateIntRange("allow cut", c.AllowCut, 0, grid.MaxAllowCut),
		errors.ValidatePositive("boundary scale", c.BoundaryScale),
		errors.ValidateFinite("offset x", c.OffsetX),
		errors.ValidateFinite("offset y", c.OffsetY),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// Dimensions computes the render surface for c.
func (c Config) Dimensions() (Dimensions, error) {
	return ComputeDimensions(c.PhysicalWidth, c.PhysicalHeight, c.MaxRenderWidth, c.MaxRenderHeight)
}

// Boundary builds the render-space outline centered on the render surface.
// A circular screen gets the largest circle that fits; a rectangular screen
// covers the whole surface.
func (c Config) Boundary(d Dimensions) (boundary.Boundary, error) {
	shape, err := ParseShape(string(c.Shape))
	if err != nil {
		return nil, err
	}
	switch shape {
	case ShapeRectangular:
		return boundary.NewRectangular(d.RenderCenterX, d.RenderCenterY, d.RenderWidth, d.RenderHeight, c.BoundaryScale), nil
	default:
		radius := min(d.RenderWidth, d.RenderHeight) / 2
		return boundary.NewCircular(d.RenderCenterX, d.RenderCenterY, radius, c.BoundaryScale), nil
	}
}

// GridParams returns packing parameters for c on the render surface d.
func (c Config) GridParams(d Dimensions) grid.Params {
	return grid.Params{
		Target:         c.TargetCells,
		AspectRatio:    c.AspectRatio,
		Gap:            c.Gap,
		SizeScale:      c.SizeScale,
		AllowCut:       c.AllowCut,
		PhysicalWidth:  c.PhysicalWidth,
		PhysicalHeight: c.PhysicalHeight,
		RenderScale:    d.RenderScale,
		CenterX:        d.RenderCenterX,
		CenterY:        d.RenderCenterY,
		OffsetX:        c.OffsetX,
		OffsetY:        c.OffsetY,
	}
}
