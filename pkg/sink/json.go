package sink

import (
	"encoding/json"

	"github.com/matzehuels/cellgrid/pkg/boundary"
	"github.com/matzehuels/cellgrid/pkg/grid"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	runID   string
	profile string
}

// WithJSONRunID records the pipeline run ID for correlation with logs.
func WithJSONRunID(id string) JSONOption { return func(r *jsonRenderer) { r.runID = id } }

// WithJSONProfile records the screen profile name.
func WithJSONProfile(name string) JSONOption { return func(r *jsonRenderer) { r.profile = name } }

type jsonOutput struct {
	RunID    string        `json:"run_id,omitempty"`
	Profile  string        `json:"profile,omitempty"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Boundary *jsonBoundary `json:"boundary,omitempty"`
	Stats    jsonStats     `json:"stats"`
	Counts   jsonCounts    `json:"counts"`
	Cells    []jsonCell    `json:"cells"`
}

type jsonBoundary struct {
	Shape   string  `json:"shape"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Scale   float64 `json:"scale"`
	Radius  float64 `json:"radius,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
}

type jsonStats struct {
	Cols               int       `json:"cols"`
	Rows               int       `json:"rows"`
	CellWidth          float64   `json:"cell_width"`
	CellHeight         float64   `json:"cell_height"`
	PhysicalCellWidth  float64   `json:"physical_cell_width"`
	PhysicalCellHeight float64   `json:"physical_cell_height"`
	StepX              float64   `json:"step_x"`
	StepY              float64   `json:"step_y"`
	SweepHeight        int       `json:"sweep_height"`
	Iterations         int       `json:"iterations"`
	Mode               grid.Mode `json:"mode"`
	Target             int       `json:"target"`
	TargetMet          bool      `json:"target_met"`
}

type jsonCounts struct {
	Inside   int `json:"inside"`
	Boundary int `json:"boundary"`
	Outside  int `json:"outside"`
	Unknown  int `json:"unknown,omitempty"`
}

type jsonCell struct {
	Col            int               `json:"col"`
	Row            int               `json:"row"`
	X              float64           `json:"x"`
	Y              float64           `json:"y"`
	Width          float64           `json:"width"`
	Height         float64           `json:"height"`
	CenterX        float64           `json:"center_x"`
	CenterY        float64           `json:"center_y"`
	PhysicalWidth  float64           `json:"physical_width"`
	PhysicalHeight float64           `json:"physical_height"`
	CornersOutside int               `json:"corners_outside"`
	Category       boundary.Category `json:"category"`
}

// RenderJSON exports the scene as indented JSON.
func RenderJSON(s Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	st := s.Result.Stats
	counts := s.Result.Counts()
	out := jsonOutput{
		RunID:    r.runID,
		Profile:  r.profile,
		Width:    s.Width,
		Height:   s.Height,
		Boundary: buildJSONBoundary(s.Boundary),
		Stats: jsonStats{
			Cols:               st.Cols,
			Rows:               st.Rows,
			CellWidth:          st.CellWidth,
			CellHeight:         st.CellHeight,
			PhysicalCellWidth:  st.PhysicalCellWidth,
			PhysicalCellHeight: st.PhysicalCellHeight,
			StepX:              st.StepX,
			StepY:              st.StepY,
			SweepHeight:        st.SweepHeight,
			Iterations:         st.Iterations,
			Mode:               st.Mode,
			Target:             st.Target,
			TargetMet:          st.TargetMet,
		},
		Counts: jsonCounts{
			Inside:   counts.Inside,
			Boundary: counts.Boundary,
			Outside:  counts.Outside,
			Unknown:  counts.Unknown,
		},
		Cells: make([]jsonCell, 0, len(s.Result.Cells)),
	}

	for _, c := range s.Result.Cells {
		out.Cells = append(out.Cells, jsonCell{
			Col:            c.Col,
			Row:            c.Row,
			X:              c.X,
			Y:              c.Y,
			Width:          c.Width,
			Height:         c.Height,
			CenterX:        c.CenterX,
			CenterY:        c.CenterY,
			PhysicalWidth:  c.PhysicalWidth,
			PhysicalHeight: c.PhysicalHeight,
			CornersOutside: c.CornersOutside,
			Category:       c.Category,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONBoundary(b boundary.Boundary) *jsonBoundary {
	o, ok := outlineOf(b)
	if !ok {
		return nil
	}
	jb := &jsonBoundary{
		Shape:   shapeName(b),
		CenterX: o.cx,
		CenterY: o.cy,
		Scale:   b.Scale(),
	}
	if o.circle {
		jb.Radius = o.radius
	} else {
		jb.Width, jb.Height = 2*o.hw, 2*o.hh
	}
	return jb
}
