// Package screen describes the physical display a grid is packed for.
//
// A [Config] holds the screen's physical size and shape together with the
// packing parameters tuned for it. [ComputeDimensions] fits the physical
// aspect ratio into a maximum render box and derives the render scale, and
// [Config.Boundary] and [Config.GridParams] turn the pair into inputs for the
// grid package.
//
// # Profiles
//
// A handful of known devices ship as built-in profiles; see [Builtin]. More
// can be loaded from TOML files with one table per profile:
//
//	[profiles.round_small]
//	name = "Round 200"
//	physical_width = 200
//	physical_height = 200
//	shape = "circular"
//	target_cells = 200
//
// Keys missing from a table keep the values of [DefaultConfig]. Unknown keys
// are rejected.
package screen
