// Package preset provides named, JSON-described chalkboard settings.
package preset

import "github.com/xob0t/GoChalk/pkg/chalkboard"

// Preset is the top-level structure of a preset JSON file.
type Preset struct {
	Meta     Meta      `json:"meta"`
	Settings Overrides `json:"settings"`
}

// Meta holds preset metadata.
type Meta struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// Overrides holds the settings a preset changes. Nil fields inherit the
// value they are merged onto.
type Overrides struct {
	TextureIntensity *int     `json:"textureIntensity,omitempty"`
	PatchIntensity   *int     `json:"patchIntensity,omitempty"`
	PatchSize        *int     `json:"patchSize,omitempty"`
	PatchCount       *int     `json:"patchCount,omitempty"`
	Alpha            *int     `json:"alpha,omitempty"`
	BaseColor        *string  `json:"baseColor,omitempty"`
	PreviewSize      *int     `json:"previewSize,omitempty"`
	ExportSize       *int     `json:"exportSize,omitempty"`
	BlurRadius       *float64 `json:"blurRadius,omitempty"`
}

// Resolve merges the preset onto the default settings.
func (p *Preset) Resolve() chalkboard.Settings {
	return Merge(chalkboard.DefaultSettings(), p.Settings)
}
