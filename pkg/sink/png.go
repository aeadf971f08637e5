package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/cellgrid/pkg/errors"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	palette     Palette
	scale       float64
	hideOutside bool
}

// WithScale sets the PNG scale factor (default 1).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGPalette sets the colors used for the image.
func WithPNGPalette(p Palette) PNGOption {
	return func(r *pngRenderer) { r.palette = p }
}

// WithPNGHideOutside skips cells classified as outside.
func WithPNGHideOutside() PNGOption {
	return func(r *pngRenderer) { r.hideOutside = true }
}

// RenderPNG rasterizes the scene.
func RenderPNG(s Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{palette: DefaultPalette(), scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if err := errors.ValidatePositive("png scale", r.scale); err != nil {
		return nil, err
	}

	w := int(math.Ceil(s.Width * r.scale))
	h := int(math.Ceil(s.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "scene size %vx%v cannot be rasterized", s.Width, s.Height)
	}

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)

	dc.SetColor(r.palette.Background)
	dc.DrawRectangle(0, 0, s.Width, s.Height)
	dc.Fill()

	for _, c := range visibleCells(s.Result.Cells, r.hideOutside) {
		dc.SetColor(r.palette.Fill(c.Category))
		dc.DrawRectangle(c.X, c.Y, c.Width, c.Height)
		dc.Fill()
	}

	if o, ok := outlineOf(s.Boundary); ok {
		dc.SetColor(r.palette.Outline)
		dc.SetLineWidth(2)
		if o.circle {
			dc.DrawCircle(o.cx, o.cy, o.radius)
		} else {
			dc.DrawRectangle(o.cx-o.hw, o.cy-o.hh, 2*o.hw, 2*o.hh)
		}
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
