package sink

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/cellgrid/pkg/boundary"
	"github.com/matzehuels/cellgrid/pkg/grid"
)

func testScene() Scene {
	cell := func(col, row int, x, y float64, cat boundary.Category) grid.Cell {
		return grid.Cell{
			Rect:     boundary.Rect{X: x, Y: y, Width: 10, Height: 10},
			CenterX:  x + 5,
			CenterY:  y + 5,
			Col:      col,
			Row:      row,
			Category: cat,
		}
	}
	return Scene{
		Width:    100,
		Height:   100,
		Boundary: boundary.NewCircular(50, 50, 40, 1),
		Result: grid.Result{
			Cells: []grid.Cell{
				cell(0, 0, 45, 45, boundary.Inside),
				cell(3, 0, 80, 45, boundary.Edge),
				cell(4, 0, 92, 45, boundary.Outside),
			},
			Stats: grid.Stats{Cols: 9, Rows: 9, CellWidth: 10, CellHeight: 10, Mode: grid.ModePartial, Target: 3, TargetMet: true},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testScene()))

	for _, want := range []string{
		`viewBox="0 0 100.0 100.0"`,
		`<rect class="cell inside" x="45.0" y="45.0" width="10.0" height="10.0"`,
		`class="cell boundary"`,
		`class="cell outside"`,
		`<circle class="outline" cx="50.0" cy="50.0" r="40.0"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("RenderSVG() not terminated with </svg>")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	s := testScene()
	s.Boundary = boundary.NewRectangular(50, 50, 80, 60, 0.5)

	svg := string(RenderSVG(s, WithHideOutside(), WithIndices()))
	if strings.Contains(svg, "cell outside") {
		t.Error("WithHideOutside() still rendered outside cells")
	}
	if !strings.Contains(svg, `data-col="3" data-row="0"`) {
		t.Error("WithIndices() did not add lattice indices")
	}
	if !strings.Contains(svg, `<rect class="outline" x="30.0" y="35.0" width="40.0" height="30.0"`) {
		t.Errorf("rectangular outline not scaled:\n%s", svg)
	}

	svg = string(RenderSVG(s, WithoutOutline()))
	if strings.Contains(svg, `class="outline"`) {
		t.Error("WithoutOutline() still rendered the outline")
	}
}

func TestRenderSVGPalette(t *testing.T) {
	p := DefaultPalette()
	p.Inside.R, p.Inside.G, p.Inside.B = 0x12, 0x34, 0x56
	svg := string(RenderSVG(testScene(), WithPalette(p)))
	if !strings.Contains(svg, `fill="#123456"`) {
		t.Error("WithPalette() color not used for inside cells")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testScene(), WithJSONRunID("run-1"), WithJSONProfile("Round"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out struct {
		RunID    string `json:"run_id"`
		Profile  string `json:"profile"`
		Boundary struct {
			Shape  string  `json:"shape"`
			Radius float64 `json:"radius"`
		} `json:"boundary"`
		Stats struct {
			Mode      string `json:"mode"`
			TargetMet bool   `json:"target_met"`
		} `json:"stats"`
		Counts jsonCounts `json:"counts"`
		Cells  []struct {
			Category string `json:"category"`
		} `json:"cells"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.RunID != "run-1" || out.Profile != "Round" {
		t.Errorf("run_id/profile = %q/%q", out.RunID, out.Profile)
	}
	if out.Boundary.Shape != "circular" || out.Boundary.Radius != 40 {
		t.Errorf("boundary = %+v", out.Boundary)
	}
	if out.Stats.Mode != "partial" || !out.Stats.TargetMet {
		t.Errorf("stats = %+v", out.Stats)
	}
	if out.Counts != (jsonCounts{Inside: 1, Boundary: 1, Outside: 1}) {
		t.Errorf("counts = %+v", out.Counts)
	}
	want := []string{"inside", "boundary", "outside"}
	for i, c := range out.Cells {
		if c.Category != want[i] {
			t.Errorf("cells[%d].category = %q, want %q", i, c.Category, want[i])
		}
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(Scene{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !bytes.Contains(data, []byte(`"cells": []`)) {
		t.Errorf("empty scene should encode an empty cells array:\n%s", data)
	}
	if bytes.Contains(data, []byte(`"shape"`)) {
		t.Error("nil boundary should be omitted")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testScene(), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("image size = %dx%d, want 200x200", b.Dx(), b.Dy())
	}

	// Center of the inside cell, scaled.
	r, g, b, _ := img.At(100, 100).RGBA()
	want := DefaultPalette().Inside
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("pixel at inside cell = (%d, %d, %d), want %v", r>>8, g>>8, b>>8, want)
	}
}

func TestRenderPNGPalette(t *testing.T) {
	p := DefaultPalette()
	p.Inside = color.RGBA{0x12, 0x34, 0x56, 0xff}
	data, err := RenderPNG(testScene(), WithPNGPalette(p))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	r, g, b, _ := img.At(50, 50).RGBA()
	if uint8(r>>8) != 0x12 || uint8(g>>8) != 0x34 || uint8(b>>8) != 0x56 {
		t.Errorf("pixel at inside cell = (%d, %d, %d), want %v", r>>8, g>>8, b>>8, p.Inside)
	}
}

func TestRenderPNGInvalid(t *testing.T) {
	if _, err := RenderPNG(testScene(), WithScale(0)); err == nil {
		t.Error("RenderPNG(scale 0) error = nil")
	}
	if _, err := RenderPNG(Scene{}); err == nil {
		t.Error("RenderPNG(empty scene) error = nil")
	}
}

func TestPaletteFill(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		c    boundary.Category
		want [3]uint8
	}{
		{boundary.Inside, [3]uint8{p.Inside.R, p.Inside.G, p.Inside.B}},
		{boundary.Edge, [3]uint8{p.Boundary.R, p.Boundary.G, p.Boundary.B}},
		{boundary.Outside, [3]uint8{p.Outside.R, p.Outside.G, p.Outside.B}},
		{boundary.Unknown, [3]uint8{p.Unknown.R, p.Unknown.G, p.Unknown.B}},
	}
	for _, tt := range tests {
		got := p.Fill(tt.c)
		if [3]uint8{got.R, got.G, got.B} != tt.want {
			t.Errorf("Fill(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
