package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellgrid/pkg/screen"
)

// screenFlags holds the flags that select and tune a screen profile. Only
// flags set on the command line override the profile.
type screenFlags struct {
	profile string
	config  string

	shape         string
	width         float64
	height        float64
	target        int
	scale         float64
	gap           float64
	aspect        float64
	allowCut      int
	maxWidth      float64
	maxHeight     float64
	offsetX       float64
	offsetY       float64
	boundaryScale float64
}

// register adds the screen flags to cmd.
func (f *screenFlags) register(cmd *cobra.Command) {
	d := screen.DefaultConfig()
	fs := cmd.Flags()
	fs.StringVarP(&f.profile, "profile", "p", "", "screen profile key (default "+screen.DefaultProfileKey+")")
	fs.StringVar(&f.config, "config", "", "TOML file with additional [profiles.<key>] tables")
	fs.StringVar(&f.shape, "shape", "", "screen shape: circular, rectangular")
	fs.Float64Var(&f.width, "width", d.PhysicalWidth, "physical screen width")
	fs.Float64Var(&f.height, "height", d.PhysicalHeight, "physical screen height")
	fs.IntVarP(&f.target, "target", "n", d.TargetCells, "target cell count")
	fs.Float64Var(&f.scale, "scale", d.SizeScale, "cell size scale in (0, 1]")
	fs.Float64Var(&f.gap, "gap", d.Gap, "gap between cells in render pixels")
	fs.Float64Var(&f.aspect, "aspect", d.AspectRatio, "cell width/height ratio")
	fs.IntVar(&f.allowCut, "allow-cut", d.AllowCut, "corners allowed outside the screen (0 packs by cell center)")
	fs.Float64Var(&f.maxWidth, "max-render-width", d.MaxRenderWidth, "maximum render width")
	fs.Float64Var(&f.maxHeight, "max-render-height", d.MaxRenderHeight, "maximum render height")
	fs.Float64Var(&f.offsetX, "offset-x", 0, "horizontal grid offset in render pixels")
	fs.Float64Var(&f.offsetY, "offset-y", 0, "vertical grid offset in render pixels")
	fs.Float64Var(&f.boundaryScale, "boundary-scale", d.BoundaryScale, "scale applied to the screen outline")

	_ = cmd.RegisterFlagCompletionFunc("shape", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(screen.Shapes))
		for i, s := range screen.Shapes {
			names[i] = s.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("profile", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return screen.Builtin().Keys(), cobra.ShellCompDirectiveNoFileComp
	})
}

// registry returns the built-in profiles merged with the --config file.
func (f *screenFlags) registry() (*screen.Registry, error) {
	reg := screen.Builtin()
	if f.config == "" {
		return reg, nil
	}
	profiles, err := screen.LoadFile(f.config)
	if err != nil {
		return nil, err
	}
	if err := reg.Merge(profiles); err != nil {
		return nil, err
	}
	return reg, nil
}

// resolve returns the selected profile with command-line overrides applied.
func (f *screenFlags) resolve(cmd *cobra.Command) (screen.Config, error) {
	reg, err := f.registry()
	if err != nil {
		return screen.Config{}, err
	}
	key := f.profile
	if key == "" {
		key = reg.DefaultKey()
	}
	cfg, err := reg.Get(key)
	if err != nil {
		return screen.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("shape") {
		shape, err := screen.ParseShape(f.shape)
		if err != nil {
			return screen.Config{}, err
		}
		cfg.Shape = shape
	}
	if changed("width") {
		cfg.PhysicalWidth = f.width
	}
	if changed("height") {
		cfg.PhysicalHeight = f.height
	}
	if changed("target") {
		cfg.TargetCells = f.target
	}
	if changed("scale") {
		cfg.SizeScale = f.scale
	}
	if changed("gap") {
		cfg.Gap = f.gap
	}
	if changed("aspect") {
		cfg.AspectRatio = f.aspect
	}
	if changed("allow-cut") {
		cfg.AllowCut = f.allowCut
	}
	if changed("max-render-width") {
		cfg.MaxRenderWidth = f.maxWidth
	}
	if changed("max-render-height") {
		cfg.MaxRenderHeight = f.maxHeight
	}
	if changed("offset-x") {
		cfg.OffsetX = f.offsetX
	}
	if changed("offset-y") {
		cfg.OffsetY = f.offsetY
	}
	if changed("boundary-scale") {
		cfg.BoundaryScale = f.boundaryScale
	}

	if err := cfg.Validate(); err != nil {
		return screen.Config{}, err
	}
	return cfg, nil
}
