package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellgrid/pkg/boundary"
	"github.com/matzehuels/cellgrid/pkg/grid"
	"github.com/matzehuels/cellgrid/pkg/pipeline"
	"github.com/matzehuels/cellgrid/pkg/screen"
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags screenFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively tune a grid in the terminal",
		Long: `Preview draws the packed grid in the terminal and repacks it whenever the
target, gap, cut tolerance, or shape changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newPreviewModel(cfg), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(previewModel); ok && m.err == nil {
				printInfo("Last settings: target %d, gap %g, allow-cut %d, shape %s",
					m.cfg.TargetCells, m.cfg.Gap, m.cfg.AllowCut, m.cfg.Shape)
				printNextStep("Write it out", fmt.Sprintf("%s pack --target %d --gap %g --allow-cut %d --shape %s",
					appName, m.cfg.TargetCells, m.cfg.Gap, m.cfg.AllowCut, m.cfg.Shape))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// previewModel - Interactive grid preview
// =============================================================================

const (
	previewDefaultWidth = 60
	previewMinWidth     = 20
	previewMaxWidth     = 100
)

// previewModel is the bubbletea model for the preview command.
type previewModel struct {
	cfg    screen.Config
	dims   screen.Dimensions
	bound  boundary.Boundary
	result grid.Result
	err    error

	width, height int // terminal size, zero until the first WindowSizeMsg
}

func newPreviewModel(cfg screen.Config) previewModel {
	m := previewModel{cfg: cfg}
	m.recompute()
	return m
}

// recompute repacks the grid for the current settings.
func (m *previewModel) recompute() {
	m.err = nil
	dims, err := m.cfg.Dimensions()
	if err != nil {
		m.err = err
		return
	}
	b, err := m.cfg.Boundary(dims)
	if err != nil {
		m.err = err
		return
	}
	res, err := pipeline.Repack(b, m.cfg.GridParams(dims))
	if err != nil {
		m.err = err
		return
	}
	m.dims, m.bound, m.result = dims, b, res
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.cfg.TargetCells++
		case "-", "_":
			if m.cfg.TargetCells > 1 {
				m.cfg.TargetCells--
			}
		case "c":
			m.cfg.AllowCut = (m.cfg.AllowCut + 1) % (grid.MaxAllowCut + 1)
		case "]":
			m.cfg.Gap++
		case "[":
			m.cfg.Gap = max(0, m.cfg.Gap-1)
		case "s":
			m.cfg.Shape = m.cfg.Shape.Next()
		default:
			return m, nil
		}
		m.recompute()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.cfg.Name))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s %gx%g", m.cfg.Shape, m.cfg.PhysicalWidth, m.cfg.PhysicalHeight)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.raster())
		b.WriteString("\n")
		st := m.result.Stats
		b.WriteString(fmt.Sprintf("%s cells (target %d)  cell %gx%g  %s mode\n",
			StyleNumber.Render(fmt.Sprint(len(m.result.Cells))), st.Target, st.CellWidth, st.CellHeight, st.Mode))
		b.WriteString(countsLine(m.result.Counts()))
		b.WriteString("\n\n")
	}

	b.WriteString(StyleDim.Render(fmt.Sprintf("gap %g  allow-cut %d", m.cfg.Gap, m.cfg.AllowCut)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("+/- target  [/] gap  c cut  s shape  q quit"))

	return b.String()
}

// rasterSize returns the character grid used to draw the render surface.
// Terminal cells are about twice as tall as wide.
func (m previewModel) rasterSize() (cols, rows int) {
	cols = previewDefaultWidth
	if m.width > 0 {
		cols = min(max(m.width-4, previewMinWidth), previewMaxWidth)
	}
	rows = max(1, int(math.Round(float64(cols)*m.dims.RenderHeight/m.dims.RenderWidth/2)))
	if m.height > 10 && rows > m.height-8 {
		rows = m.height - 8
		cols = max(1, int(math.Round(float64(rows)*2*m.dims.RenderWidth/m.dims.RenderHeight)))
	}
	return cols, rows
}

// raster draws each cell as a block of characters shaded by category, over
// a dotted screen outline.
func (m previewModel) raster() string {
	if m.dims.RenderWidth <= 0 || m.dims.RenderHeight <= 0 {
		return ""
	}
	cols, rows := m.rasterSize()
	sx := m.dims.RenderWidth / float64(cols)
	sy := m.dims.RenderHeight / float64(rows)

	canvas := make([][]boundary.Category, rows)
	for i := range canvas {
		canvas[i] = make([]boundary.Category, cols)
	}
	filled := make([][]bool, rows)
	for i := range filled {
		filled[i] = make([]bool, cols)
	}

	for _, c := range m.result.Cells {
		if c.Right() <= 0 || c.Bottom() <= 0 || c.X >= m.dims.RenderWidth || c.Y >= m.dims.RenderHeight {
			continue
		}
		c0, c1 := span(c.X, c.Right(), sx, cols)
		r0, r1 := span(c.Y, c.Bottom(), sy, rows)
		for r := r0; r <= r1; r++ {
			for col := c0; col <= c1; col++ {
				canvas[r][col] = c.Category
				filled[r][col] = true
			}
		}
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			if filled[r][col] {
				b.WriteString(cellGlyph(canvas[r][col]))
				continue
			}
			x, y := (float64(col)+0.5)*sx, (float64(r)+0.5)*sy
			if m.bound != nil && m.bound.IsPointInside(x, y) {
				b.WriteString(StyleDim.Render("·"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// span returns the inclusive character range covered by [lo, hi) at scale s,
// clamped to [0, n). A range narrower than one character maps to the
// character holding its midpoint.
func span(lo, hi, s float64, n int) (int, int) {
	a := int(math.Floor(lo / s))
	b := int(math.Ceil(hi/s)) - 1
	if b < a {
		a = int(math.Floor((lo + hi) / 2 / s))
		b = a
	}
	return min(max(a, 0), n-1), min(max(b, 0), n-1)
}

func cellGlyph(c boundary.Category) string {
	switch c {
	case boundary.Inside:
		return styleInside.Render("█")
	case boundary.Edge:
		return styleBoundary.Render("▓")
	case boundary.Outside:
		return styleOutside.Render("░")
	default:
		return StyleDim.Render("?")
	}
}
