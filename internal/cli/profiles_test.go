package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cellgrid/pkg/screen"
)

func TestProfilesTable(t *testing.T) {
	out := profilesTable(screen.Builtin())

	for _, key := range screen.Builtin().Keys() {
		if !strings.Contains(out, key) {
			t.Errorf("profilesTable() missing key %q", key)
		}
	}
	for _, header := range []string{"Key", "Shape", "Target", "Cut"} {
		if !strings.Contains(out, header) {
			t.Errorf("profilesTable() missing header %q", header)
		}
	}
	if !strings.Contains(out, "240x240 (341 cells)") {
		t.Error("profilesTable() missing default profile name")
	}
}

func TestProfilesCommandWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.toml")
	if err := os.WriteFile(path, []byte("[profiles.lab_rig]\nname = \"Lab rig\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"profiles", "--config", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("profiles error: %v", err)
	}

	if !strings.Contains(out.String(), "lab_rig") {
		t.Errorf("profiles output missing loaded profile:\n%s", out.String())
	}
	if !strings.Contains(out.String(), screen.DefaultProfileKey) {
		t.Errorf("profiles output missing built-in profile:\n%s", out.String())
	}
}
