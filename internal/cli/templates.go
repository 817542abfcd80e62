package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named formatting template.
type Preset struct {
	Name        string `yaml:"name" json:"name"`
	Template    string `yaml:"template" json:"template"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// presetFile is the on-disk shape of a templates file.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// builtinPresets are always available; a templates file can add more or
// override them by name.
var builtinPresets = []Preset{
	{Name: "iso", Template: "[YYYY]-[MM]-[DD] [HH]:[MN]:[SS3]", Description: "calendar timestamp"},
	{Name: "doy", Template: "[YYYY]-[DDD] [HH]:[MN]:[SS3]", Description: "day-of-year timestamp"},
	{Name: "gps", Template: "[WWWW]:[D] [DSEC3]", Description: "GPS week, day and seconds of day"},
	{Name: "mjd", Template: "[MJD5]", Description: "Modified Julian Day"},
	{Name: "sinex", Template: "[YY]:[DDD]:[DSEC]", Description: "SINEX epoch field"},
}

// LoadPresets returns the builtin presets, overlaid with the presets read
// from path when path is non-empty.
func LoadPresets(path string) (map[string]Preset, error) {
	presets := make(map[string]Preset, len(builtinPresets))
	for _, p := range builtinPresets {
		presets[p.Name] = p
	}
	if path == "" {
		return presets, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading templates file: %w", err)
	}
	var f presetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing templates file %s: %w", path, err)
	}
	for _, p := range f.Presets {
		if p.Name == "" || p.Template == "" {
			return nil, fmt.Errorf("templates file %s: every preset needs a name and a template", path)
		}
		presets[p.Name] = p
	}
	return presets, nil
}
