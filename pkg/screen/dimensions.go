package screen

import (
	"fmt"
	"math"

	"github.com/matzehuels/cellgrid/pkg/errors"
)

const (
	// MinRenderDimension keeps the render surface from collapsing.
	MinRenderDimension = 100.0
	// MinPhysicalDimension is the smallest physical side that packs well.
	// Smaller screens are accepted with a warning.
	MinPhysicalDimension = 170.0
)

// Dimensions maps a physical screen onto a render surface.
type Dimensions struct {
	PhysicalWidth   float64
	PhysicalHeight  float64
	MaxRenderWidth  float64
	MaxRenderHeight float64

	RenderWidth   float64
	RenderHeight  float64
	RenderCenterX float64
	RenderCenterY float64

	// RenderScale is render pixels per physical pixel along the width.
	RenderScale float64
	// AspectRatio is PhysicalWidth / PhysicalHeight.
	AspectRatio float64

	// Warnings collects non-fatal problems with the inputs.
	Warnings []string
}

// ComputeDimensions fits the physical aspect ratio into the max render box.
// The render size is the largest box within the limits that keeps the
// aspect ratio, clamped to MinRenderDimension on each side and rounded to
// whole pixels.
func ComputeDimensions(physicalWidth, physicalHeight, maxRenderWidth, maxRenderHeight float64) (Dimensions, error) {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"physical width", physicalWidth},
		{"physical height", physicalHeight},
		{"max render width", maxRenderWidth},
		{"max render height", maxRenderHeight},
	} {
		if err := errors.ValidatePositive(v.name, v.val); err != nil {
			return Dimensions{}, err
		}
		if v.val < 1 {
			return Dimensions{}, errors.New(errors.ErrCodeInvalidConfig, "%s must be at least 1, got %v", v.name, v.val)
		}
	}

	d := Dimensions{
		PhysicalWidth:   physicalWidth,
		PhysicalHeight:  physicalHeight,
		MaxRenderWidth:  maxRenderWidth,
		MaxRenderHeight: maxRenderHeight,
		AspectRatio:     physicalWidth / physicalHeight,
	}
	if physicalWidth < MinPhysicalDimension {
		d.Warnings = append(d.Warnings, fmt.Sprintf("physical width %v is below the recommended minimum of %v", physicalWidth, MinPhysicalDimension))
	}
	if physicalHeight < MinPhysicalDimension {
		d.Warnings = append(d.Warnings, fmt.Sprintf("physical height %v is below the recommended minimum of %v", physicalHeight, MinPhysicalDimension))
	}

	w := maxRenderWidth
	h := maxRenderWidth / d.AspectRatio
	if h > maxRenderHeight {
		h = maxRenderHeight
		w = maxRenderHeight * d.AspectRatio
	}

	rw := math.Max(w, MinRenderDimension)
	rh := math.Max(h, MinRenderDimension)
	switch {
	case w < MinRenderDimension:
		rh = math.Max(MinRenderDimension/d.AspectRatio, MinRenderDimension)
	case h < MinRenderDimension:
		rw = math.Max(MinRenderDimension*d.AspectRatio, MinRenderDimension)
	}

	d.RenderWidth = roundHalfUp(rw)
	d.RenderHeight = roundHalfUp(rh)
	d.RenderCenterX = roundHalfUp(d.RenderWidth / 2)
	d.RenderCenterY = roundHalfUp(d.RenderHeight / 2)
	d.RenderScale = d.RenderWidth / physicalWidth
	return d, nil
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
