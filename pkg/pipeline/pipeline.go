// Package pipeline provides the packing pipeline for cellgrid.
//
// This package implements the complete config → dimensions → pack → classify
// → render pipeline used by the CLI commands. Centralizing it keeps the
// pack, preview, and any future entry points consistent.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Dimensions: fit the physical screen into the max render box
//  2. Pack: search for the largest cell size that reaches the target count
//  3. Classify: label every packed cell inside, boundary, or outside
//  4. Render: generate output in the requested formats (SVG, PNG, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Screen:  screen.Builtin().Default(),
//	    Formats: []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Use [Runner.Compute] to stop before rendering.
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cellgrid/pkg/boundary"
	"github.com/matzehuels/cellgrid/pkg/errors"
	"github.com/matzehuels/cellgrid/pkg/grid"
	"github.com/matzehuels/cellgrid/pkg/screen"
	"github.com/matzehuels/cellgrid/pkg/sink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultPNGScale is the raster scale factor for PNG output.
	DefaultPNGScale = 1.0
)

// Format constants for output formats.
const (
	FormatSVG  = sink.FormatSVG
	FormatPNG  = sink.FormatPNG
	FormatJSON = sink.FormatJSON
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Screen is the screen and packing configuration. The zero value selects
	// the default built-in profile.
	Screen screen.Config

	// Render options
	Formats     []string
	HideOutside bool
	PNGScale    float64
	Palette     *sink.Palette // nil uses sink.DefaultPalette

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and JSON output.
	RunID string

	Screen     screen.Config
	Dimensions screen.Dimensions
	Boundary   boundary.Boundary

	// Grid holds the packed and classified cells.
	Grid   grid.Result
	Counts grid.Counts

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats
}

// Scene returns the drawable view of the result.
func (r *Result) Scene() sink.Scene {
	return sink.Scene{
		Width:    r.Dimensions.RenderWidth,
		Height:   r.Dimensions.RenderHeight,
		Boundary: r.Boundary,
		Result:   r.Grid,
	}
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PackTime     time.Duration
	ClassifyTime time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the screen config and formats and applies
// defaults. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Screen.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidatePositive("png scale", o.PNGScale); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Screen == (screen.Config{}) {
		o.Screen = screen.Builtin().Default()
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Wants reports whether format was requested.
func (o *Options) Wants(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}
