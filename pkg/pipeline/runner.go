package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/cellgrid/pkg/boundary"
	"github.com/matzehuels/cellgrid/pkg/errors"
	"github.com/matzehuels/cellgrid/pkg/grid"
	"github.com/matzehuels/cellgrid/pkg/observability"
)

// Runner executes pipeline runs.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete pipeline including rendering.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result, err := r.Compute(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderStart := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(result, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Render().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	opts.Logger.Debug("rendered outputs",
		"run", result.RunID,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Compute runs the dimension, pack, and classify stages.
func (r *Runner) Compute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	cfg := opts.Screen
	logger := opts.Logger

	result := &Result{
		RunID:     uuid.NewString(),
		Screen:    cfg,
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Dimensions
	dims, err := cfg.Dimensions()
	if err != nil {
		return nil, err
	}
	for _, w := range dims.Warnings {
		logger.Warn(w, "run", result.RunID)
	}
	result.Dimensions = dims

	b, err := cfg.Boundary(dims)
	if err != nil {
		return nil, err
	}
	result.Boundary = b

	logger.Debug("computed dimensions",
		"run", result.RunID,
		"render", formatSize(dims.RenderWidth, dims.RenderHeight),
		"scale", dims.RenderScale,
		"shape", cfg.Shape)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Pack
	params := cfg.GridParams(dims)
	packStart := time.Now()
	observability.Pack().OnPackStart(ctx, string(cfg.Shape), params.Target)
	res, err := grid.Pack(b, params)
	result.Stats.PackTime = time.Since(packStart)
	observability.Pack().OnPackComplete(ctx, string(cfg.Shape), len(res.Cells), res.Stats.Iterations, result.Stats.PackTime, err)
	if err != nil {
		return nil, err
	}

	logger.Debug("packed grid",
		"run", result.RunID,
		"cells", len(res.Cells),
		"target", params.Target,
		"cell", formatSize(res.Stats.CellWidth, res.Stats.CellHeight),
		"iterations", res.Stats.Iterations,
		"duration", result.Stats.PackTime)
	if !res.Stats.TargetMet && params.Target > 0 {
		logger.Warn("target not reached", "run", result.RunID, "cells", len(res.Cells), "target", params.Target)
	}

	// Stage 3: Classify
	classifyStart := time.Now()
	grid.Classify(b, res.Cells, params.AllowCut)
	result.Stats.ClassifyTime = time.Since(classifyStart)
	result.Grid = res
	result.Counts = res.Counts()
	observability.Pack().OnClassify(ctx, result.Counts.Inside, result.Counts.Boundary, result.Counts.Outside)

	logger.Debug("classified cells",
		"run", result.RunID,
		"inside", result.Counts.Inside,
		"boundary", result.Counts.Boundary,
		"outside", result.Counts.Outside)

	return result, nil
}

// Repack reruns packing and classification on an existing boundary. It is
// used by interactive views that reposition the same surface.
func Repack(b boundary.Boundary, p grid.Params) (grid.Result, error) {
	if b == nil {
		return grid.Result{}, errors.New(errors.ErrCodeInvalidConfig, "boundary is required")
	}
	res, err := grid.Pack(b, p)
	if err != nil {
		return grid.Result{}, err
	}
	grid.Classify(b, res.Cells, p.AllowCut)
	return res, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
