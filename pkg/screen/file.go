package screen

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cellgrid/pkg/errors"
)

type profileFile struct {
	Profiles map[string]toml.Primitive `toml:"profiles"`
}

// Decode parses TOML profile tables. Each table starts from DefaultConfig,
// so only the keys that differ need to be present.
func Decode(data []byte) (map[string]Config, error) {
	return decode(data, "profiles")
}

func decode(data []byte, source string) (map[string]Config, error) {
	var f profileFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", source)
	}

	out := make(map[string]Config, len(f.Profiles))
	for key, prim := range f.Profiles {
		c := DefaultConfig()
		if err := md.PrimitiveDecode(prim, &c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "%s: profile %q", source, key)
		}
		out[key] = c
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s: unknown keys: %s", source, strings.Join(keys, ", "))
	}
	return out, nil
}

// LoadFile reads and decodes a TOML profile file.
func LoadFile(path string) (map[string]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "profile file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return decode(data, path)
}

