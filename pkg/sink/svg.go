package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/matzehuels/cellgrid/pkg/grid"
)

const cellCSS = `
    .cell { stroke: none; }
    .cell.outside { opacity: 0.45; }
    .outline { fill: none; stroke-width: 2; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	palette     Palette
	hideOutside bool
	noOutline   bool
	indices     bool
}

func WithPalette(p Palette) SVGOption { return func(r *svgRenderer) { r.palette = p } }
func WithHideOutside() SVGOption      { return func(r *svgRenderer) { r.hideOutside = true } }
func WithoutOutline() SVGOption       { return func(r *svgRenderer) { r.noOutline = true } }

// WithIndices adds data-col and data-row attributes to every cell.
func WithIndices() SVGOption { return func(r *svgRenderer) { r.indices = true } }

// RenderSVG draws the scene as a standalone SVG document.
func RenderSVG(s Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", cellCSS)
	fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		s.Width, s.Height, hex(r.palette.Background))

	for _, c := range visibleCells(s.Result.Cells, r.hideOutside) {
		r.renderCell(&buf, c)
	}
	if !r.noOutline {
		r.renderOutline(&buf, s)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{palette: DefaultPalette()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) renderCell(buf *bytes.Buffer, c grid.Cell) {
	fmt.Fprintf(buf, `  <rect class="cell %s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"`,
		c.Category, c.X, c.Y, c.Width, c.Height, hex(r.palette.Fill(c.Category)))
	if r.indices {
		fmt.Fprintf(buf, ` data-col="%d" data-row="%d"`, c.Col, c.Row)
	}
	buf.WriteString("/>\n")
}

func (r *svgRenderer) renderOutline(buf *bytes.Buffer, s Scene) {
	o, ok := outlineOf(s.Boundary)
	if !ok {
		return
	}
	stroke := hex(r.palette.Outline)
	if o.circle {
		fmt.Fprintf(buf, `  <circle class="outline" cx="%.1f" cy="%.1f" r="%.1f" stroke="%s"/>`+"\n",
			o.cx, o.cy, o.radius, stroke)
		return
	}
	fmt.Fprintf(buf, `  <rect class="outline" x="%.1f" y="%.1f" width="%.1f" height="%.1f" stroke="%s"/>`+"\n",
		o.cx-o.hw, o.cy-o.hh, 2*o.hw, 2*o.hh, stroke)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
