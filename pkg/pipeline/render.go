package pipeline

import (
	"strconv"

	"github.com/matzehuels/cellgrid/pkg/errors"
	"github.com/matzehuels/cellgrid/pkg/sink"
)

// Render generates output artifacts in the requested formats.
func Render(result *Result, opts Options) (map[string][]byte, error) {
	scene := result.Scene()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(scene, buildSVGOptions(opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(scene,
				sink.WithJSONRunID(result.RunID),
				sink.WithJSONProfile(result.Screen.Name))
		case FormatPNG:
			data, err = sink.RenderPNG(scene, buildPNGOptions(opts)...)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithIndices()}
	if opts.Palette != nil {
		svgOpts = append(svgOpts, sink.WithPalette(*opts.Palette))
	}
	if opts.HideOutside {
		svgOpts = append(svgOpts, sink.WithHideOutside())
	}
	return svgOpts
}

func buildPNGOptions(opts Options) []sink.PNGOption {
	pngOpts := []sink.PNGOption{sink.WithScale(opts.PNGScale)}
	if opts.Palette != nil {
		pngOpts = append(pngOpts, sink.WithPNGPalette(*opts.Palette))
	}
	if opts.HideOutside {
		pngOpts = append(pngOpts, sink.WithPNGHideOutside())
	}
	return pngOpts
}

func formatSize(w, h float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64) + "x" + strconv.FormatFloat(h, 'f', -1, 64)
}
