package screen

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/cellgrid/pkg/errors"
)

func TestBuiltinKeys(t *testing.T) {
	want := []string{
		"170x320_Rectangular",
		"240x240_341_Circular",
		"240x280_Rectangular",
		"268x448_Rectangular",
		"480x480_Circular",
	}
	if diff := cmp.Diff(want, Builtin().Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinProfilesValid(t *testing.T) {
	r := Builtin()
	for _, key := range r.Keys() {
		c, err := r.Get(key)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", key, err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("profile %q invalid: %v", key, err)
		}
	}
}

func TestRegistryDefault(t *testing.T) {
	r := Builtin()
	def := r.Default()
	if def.Name != "240x240 (341 cells)" || def.AllowCut != 3 || def.SizeScale != 1 {
		t.Errorf("Default() = %+v", def)
	}
	if r.DefaultKey() != DefaultProfileKey {
		t.Errorf("DefaultKey() = %q", r.DefaultKey())
	}
	if got := r.Lookup("no-such-profile"); got != def {
		t.Errorf("Lookup(missing) = %+v, want default", got)
	}
	if got := r.Lookup("480x480_Circular"); got.Gap != 2 {
		t.Errorf("Lookup(480x480_Circular).Gap = %v, want 2", got.Gap)
	}
}

func TestRegistryGetMissing(t *testing.T) {
	_, err := Builtin().Get("nope")
	if !errors.Is(err, errors.ErrCodeProfileNotFound) {
		t.Errorf("Get(nope) error = %v, want PROFILE_NOT_FOUND", err)
	}
}

func TestRegistrySave(t *testing.T) {
	r := Builtin()

	c := DefaultConfig()
	c.Name = "Mine"
	if err := r.Save("mine", c); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := r.Get("mine")
	if err != nil || got.Name != "Mine" {
		t.Errorf("Get(mine) = %+v, %v", got, err)
	}

	bad := DefaultConfig()
	bad.AspectRatio = -1
	if err := r.Save("bad", bad); !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("Save(bad) error = %v, want INVALID_PROFILE", err)
	}
	if err := r.Save("", c); !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("Save(\"\") error = %v, want INVALID_PROFILE", err)
	}
	if _, err := r.Get("bad"); err == nil {
		t.Error("invalid profile was stored")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := Builtin()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Save("shared", DefaultConfig())
		}()
		go func() {
			defer wg.Done()
			_ = r.Keys()
			_ = r.Lookup("shared")
		}()
	}
	wg.Wait()
}
