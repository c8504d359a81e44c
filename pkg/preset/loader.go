// loader.go — Parse preset JSON files and resolve built-in names.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

var knownTop = map[string]bool{"meta": true, "settings": true}

var knownSettings = map[string]bool{
	"textureIntensity": true,
	"patchIntensity":   true,
	"patchSize":        true,
	"patchCount":       true,
	"alpha":            true,
	"baseColor":        true,
	"previewSize":      true,
	"exportSize":       true,
	"blurRadius":       true,
}

// ParsePreset decodes a preset document. Unknown keys are reported as
// warnings, never errors.
func ParsePreset(data []byte) (*Preset, []string, error) {
	var preset Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, nil, fmt.Errorf("parse preset: %w", err)
	}

	var raw struct {
		Top      map[string]json.RawMessage
		Settings map[string]json.RawMessage
	}
	if err := json.Unmarshal(data, &raw.Top); err != nil {
		return nil, nil, fmt.Errorf("parse preset: %w", err)
	}
	if s, ok := raw.Top["settings"]; ok {
		if err := json.Unmarshal(s, &raw.Settings); err != nil {
			return nil, nil, fmt.Errorf("parse preset settings: %w", err)
		}
	}

	var warnings []string
	for _, k := range sortedKeys(raw.Top) {
		if !knownTop[k] {
			warnings = append(warnings, fmt.Sprintf("unknown key %q ignored", k))
		}
	}
	for _, k := range sortedKeys(raw.Settings) {
		if !knownSettings[k] {
			warnings = append(warnings, fmt.Sprintf("unknown setting %q ignored", k))
		}
	}

	return &preset, warnings, nil
}

// ParsePresetFile reads and parses a preset JSON file.
func ParsePresetFile(path string) (*Preset, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	p, warnings, err := ParsePreset(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, warnings, nil
}

// Load resolves a built-in preset name first, then falls back to reading
// ref as a file path.
func Load(ref string) (*Preset, []string, error) {
	if p, ok := Lookup(ref); ok {
		return p, nil, nil
	}
	return ParsePresetFile(ref)
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
