package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellgrid/pkg/errors"
	"github.com/matzehuels/cellgrid/pkg/pipeline"
	"github.com/matzehuels/cellgrid/pkg/screen"
)

// packOpts holds the output flags of the pack command.
type packOpts struct {
	output      string
	formats     []string
	hideOutside bool
	pngScale    float64
	quiet       bool
}

// packCommand creates the pack command.
func (c *CLI) packCommand() *cobra.Command {
	var (
		flags      screenFlags
		opts       packOpts
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack a cell grid for a screen profile",
		Long: `Pack finds the largest cell size that places the target number of cells on
the selected screen, labels each cell inside, boundary, or outside, and writes
the result in one or more formats.

Profile values can be overridden with flags; only flags given on the command
line replace the profile's value.`,
		Example: `  cellgrid pack
  cellgrid pack -p 268x448_Rectangular -f svg,json -o out/screen
  cellgrid pack --shape rectangular --width 200 --height 100 --target 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = pipeline.ParseFormats(formatsStr)
			if len(opts.formats) == 0 {
				opts.formats = []string{pipeline.FormatSVG}
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			_, err = runPack(cmd.Context(), cfg, opts)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.hideOutside, "hide-outside", false, "omit cells classified outside the screen")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", pipeline.DefaultPNGScale, "raster scale factor for PNG output")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only list written files")

	return cmd
}

// runPack runs the pipeline for cfg and writes every artifact. It returns the
// written paths in format order.
func runPack(ctx context.Context, cfg screen.Config, opts packOpts) ([]string, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Screen:      cfg,
		Formats:     opts.formats,
		HideOutside: opts.hideOutside,
		PNGScale:    opts.pngScale,
	})
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Packed %d cells", len(result.Grid.Cells)))

	paths := make([]string, 0, len(opts.formats))
	for _, format := range opts.formats {
		path := outputPath(opts.output, format, len(opts.formats) == 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
			}
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		logger.Debugf("Wrote %s: %d bytes", path, len(result.Artifacts[format]))
		paths = append(paths, path)
	}

	if !opts.quiet {
		printSummary(result)
	}
	for _, p := range paths {
		printFile(p)
	}
	return paths, nil
}

// printSummary prints the profile, grid geometry, and cell counts of result.
func printSummary(result *pipeline.Result) {
	st := result.Grid.Stats
	if st.TargetMet {
		printSuccess("Packed %s cells for %s", StyleNumber.Render(fmt.Sprint(len(result.Grid.Cells))), StyleHighlight.Render(result.Screen.Name))
	} else {
		printWarning("Packed %d of %d cells for %s", len(result.Grid.Cells), st.Target, result.Screen.Name)
	}
	printKeyValue("Screen", fmt.Sprintf("%s %gx%g", result.Screen.Shape, result.Screen.PhysicalWidth, result.Screen.PhysicalHeight))
	printKeyValue("Render", fmt.Sprintf("%gx%g (scale %g)", result.Dimensions.RenderWidth, result.Dimensions.RenderHeight, result.Dimensions.RenderScale))
	printKeyValue("Cell", fmt.Sprintf("%gx%g (physical %gx%g)", st.CellWidth, st.CellHeight, st.PhysicalCellWidth, st.PhysicalCellHeight))
	printKeyValue("Lattice", fmt.Sprintf("%d cols x %d rows, %s mode", st.Cols, st.Rows, st.Mode))
	printDetail("%d sweep iterations, run %s", st.Iterations, result.RunID)
	printCounts(result.Counts)
	for _, w := range result.Dimensions.Warnings {
		printWarning("%s", w)
	}
}

// outputPath returns the file for format. A single format written to an
// explicit path keeps that path; otherwise the format becomes the extension
// of the base path.
func outputPath(output, format string, single bool) string {
	if single && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return basePath(output) + "." + format
}

// basePath strips a known format extension from output. An empty output
// yields the application name.
func basePath(output string) string {
	if output == "" {
		return appName
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
