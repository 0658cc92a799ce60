package parameter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadTuning decodes a TOML file over the defaults
// Keys absent from the file keep their default value; unknown keys are rejected
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	md, err := toml.DecodeFile(path, t)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tuning file %s: %w", path, err)
	}
	return finishLoad(t, md)
}

// ParseTuning decodes TOML text over the defaults
func ParseTuning(data string) (*Tuning, error) {
	t := DefaultTuning()
	md, err := toml.Decode(data, t)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tuning: %w", err)
	}
	return finishLoad(t, md)
}

func finishLoad(t *Tuning, md toml.MetaData) (*Tuning, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidTuning, strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
