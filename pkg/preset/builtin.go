// builtin.go — Presets shipped with the binary and the init sample.
package preset

import "sort"

func ptr[T any](v T) *T { return &v }

// Builtin maps preset names to presets.
var Builtin = map[string]Preset{
	"classic": {
		Meta: Meta{Name: "classic", Description: "Neutral gray board with default controls"},
	},
	"slate": {
		Meta: Meta{Name: "slate", Description: "Dark slate, fine dust, few smudges"},
		Settings: Overrides{
			TextureIntensity: ptr(20),
			PatchIntensity:   ptr(40),
			PatchCount:       ptr(4),
			Alpha:            ptr(90),
			BaseColor:        ptr("#2B2F33"),
		},
	},
	"greenboard": {
		Meta: Meta{Name: "greenboard", Description: "School greenboard with heavy eraser marks"},
		Settings: Overrides{
			TextureIntensity: ptr(40),
			PatchIntensity:   ptr(90),
			PatchSize:        ptr(80),
			PatchCount:       ptr(30),
			Alpha:            ptr(110),
			BaseColor:        ptr("#2F4F3A"),
		},
	},
}

// Lookup returns a copy of the named built-in preset.
func Lookup(name string) (*Preset, bool) {
	p, ok := Builtin[name]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Names returns the built-in preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Builtin))
	for n := range Builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GetExampleJSON returns a sample preset for gochalk init.
func GetExampleJSON() string {
	return `{
  "meta": {
    "name": "My Board",
    "version": "1.0",
    "author": "GoChalk",
    "description": "A starter preset; omitted settings keep their defaults"
  },
  "settings": {
    "textureIntensity": 30,
    "patchIntensity": 50,
    "patchSize": 50,
    "patchCount": 10,
    "alpha": 128,
    "baseColor": "#1E2A23",
    "blurRadius": 2
  }
}
`
}
