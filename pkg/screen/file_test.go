package screen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/cellgrid/pkg/errors"
)

const sampleProfiles = `
[profiles.round_small]
name = "Round 200"
physical_width = 200
physical_height = 200
target_cells = 200
allow_cut = 2

[profiles.bar]
name = "Bar"
physical_width = 320
physical_height = 170
shape = "rectangular"
gap = 2.5
offset_x = -4
`

func TestDecode(t *testing.T) {
	profiles, err := Decode([]byte(sampleProfiles))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("len(profiles) = %d, want 2", len(profiles))
	}

	round := profiles["round_small"]
	if round.PhysicalWidth != 200 || round.TargetCells != 200 || round.AllowCut != 2 {
		t.Errorf("round_small = %+v", round)
	}
	if round.Shape != DefaultShape || round.SizeScale != DefaultSizeScale || round.MaxRenderWidth != DefaultMaxRenderWidth {
		t.Errorf("round_small did not keep defaults: %+v", round)
	}

	bar := profiles["bar"]
	if bar.Shape != ShapeRectangular || bar.Gap != 2.5 || bar.OffsetX != -4 {
		t.Errorf("bar = %+v", bar)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"syntax", "[profiles.x\nname = 1", errors.ErrCodeInvalidFormat},
		{"unknown key", "[profiles.x]\ncolour = \"red\"", errors.ErrCodeInvalidFormat},
		{"unknown top level", "version = 2", errors.ErrCodeInvalidFormat},
		{"wrong type", "[profiles.x]\ntarget_cells = \"many\"", errors.ErrCodeInvalidProfile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Decode() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "screens.toml")
	if err := os.WriteFile(path, []byte(sampleProfiles), 0o644); err != nil {
		t.Fatal(err)
	}

	profiles, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	r := Builtin()
	if err := r.Merge(profiles); err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if len(r.Keys()) != 7 {
		t.Errorf("len(Keys()) = %d after merge, want 7", len(r.Keys()))
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadFile() error = %v, want FILE_NOT_FOUND", err)
	}
}
