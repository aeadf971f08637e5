package screen

import (
	"sort"
	"sync"

	"github.com/matzehuels/cellgrid/pkg/errors"
)

// DefaultProfileKey names the profile used when none is requested.
const DefaultProfileKey = "240x240_341_Circular"

func builtinProfiles() map[string]Config {
	return map[string]Config{
		"240x240_341_Circular": profile("240x240 (341 cells)", 240, 240, ShapeCircular, 341, 1, 1, 3),
		"480x480_Circular":     profile("480x480 Circular", 480, 480, ShapeCircular, 341, 0.986, 2, 1),
		"240x280_Rectangular":  profile("240x280 Rectangular", 240, 280, ShapeRectangular, 300, 0.986, 1, 1),
		"268x448_Rectangular":  profile("268x448 Rectangular", 268, 448, ShapeRectangular, 325, 0.986, 1, 1),
		"170x320_Rectangular":  profile("170x320 Rectangular", 170, 320, ShapeRectangular, 280, 0.986, 1, 1),
	}
}

func profile(name string, w, h float64, shape Shape, target int, scale, gap float64, allowCut int) Config {
	c := DefaultConfig()
	c.Name = name
	c.PhysicalWidth = w
	c.PhysicalHeight = h
	c.Shape = shape
	c.TargetCells = target
	c.SizeScale = scale
	c.Gap = gap
	c.AllowCut = allowCut
	return c
}

// Registry is a set of named screen profiles. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	profiles   map[string]Config
	defaultKey string
}

// Builtin returns a registry holding the built-in profiles.
func Builtin() *Registry {
	return &Registry{profiles: builtinProfiles(), defaultKey: DefaultProfileKey}
}

// Get returns the profile stored under key.
func (r *Registry) Get(key string) (Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.profiles[key]
	if !ok {
		return Config{}, errors.New(errors.ErrCodeProfileNotFound, "profile %q not found", key)
	}
	return c, nil
}

// Lookup returns the profile stored under key, or the default profile.
func (r *Registry) Lookup(key string) Config {
	if c, err := r.Get(key); err == nil {
		return c
	}
	return r.Default()
}

// Default returns the default profile.
func (r *Registry) Default() Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.profiles[r.defaultKey]; ok {
		return c
	}
	return DefaultConfig()
}

// DefaultKey returns the key of the default profile.
func (r *Registry) DefaultKey() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultKey
}

// Keys returns all profile keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.profiles))
	for k := range r.profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save adds or replaces a profile after validating it.
func (r *Registry) Save(key string, c Config) error {
	if key == "" {
		return errors.New(errors.ErrCodeInvalidProfile, "profile key is required")
	}
	if err := c.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidProfile, err, "profile %q", key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[key] = c
	return nil
}

// Merge saves every profile in m. It stops at the first invalid profile.
func (r *Registry) Merge(m map[string]Config) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := r.Save(k, m[k]); err != nil {
			return err
		}
	}
	return nil
}
