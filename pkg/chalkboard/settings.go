// settings.go — UI-facing settings, slider limits and clamping.
package chalkboard

import "golang.org/x/exp/constraints"

// Settings is the state a preview UI keeps between generations. It is
// passed into the generator on every call instead of living in globals.
type Settings struct {
	TextureIntensity int     `json:"textureIntensity"`
	PatchIntensity   int     `json:"patchIntensity"`
	PatchSize        int     `json:"patchSize"`
	PatchCount       int     `json:"patchCount"`
	Alpha            int     `json:"alpha"`
	BaseColor        string  `json:"baseColor"`
	PreviewSize      int     `json:"previewSize"`
	ExportSize       int     `json:"exportSize"`
	BlurRadius       float64 `json:"blurRadius"`
}

// Range is an inclusive slider range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Limits holds the slider ranges of the preview controls.
type Limits struct {
	TextureIntensity Range `json:"textureIntensity"`
	PatchIntensity   Range `json:"patchIntensity"`
	PatchSize        Range `json:"patchSize"`
	PatchCount       Range `json:"patchCount"`
	Alpha            Range `json:"alpha"`
}

// DefaultLimits are the ranges of the desktop slider panel.
var DefaultLimits = Limits{
	TextureIntensity: Range{10, 100},
	PatchIntensity:   Range{0, 100},
	PatchSize:        Range{10, 100},
	PatchCount:       Range{0, 50},
	Alpha:            Range{0, 255},
}

// DefaultSettings returns the initial control values.
func DefaultSettings() Settings {
	return Settings{
		TextureIntensity: 30,
		PatchIntensity:   50,
		PatchSize:        50,
		PatchCount:       10,
		Alpha:            128,
		BaseColor:        "#7F7F7F",
		PreviewSize:      800,
		ExportSize:       10000,
		BlurRadius:       DefaultBlurRadius,
	}
}

// Params builds square generator input of the given side length.
func (s Settings) Params(size int) Params {
	return Params{
		Width:            size,
		Height:           size,
		TextureIntensity: s.TextureIntensity,
		Patch: PatchParams{
			Intensity: s.PatchIntensity,
			Size:      s.PatchSize,
			Count:     s.PatchCount,
		},
		BaseColor: s.BaseColor,
		Alpha:     s.Alpha,
	}
}

// Clamp pulls every control into its slider range and keeps the patch size
// below the preview size, so an interactive caller never hands the
// generator a RangeError. A patch intensity of zero disables patches.
func (s Settings) Clamp(l Limits) Settings {
	s.TextureIntensity = clamp(s.TextureIntensity, max(l.TextureIntensity.Min, 1), min(l.TextureIntensity.Max, MaxIntensity))
	s.PatchIntensity = clamp(s.PatchIntensity, l.PatchIntensity.Min, min(l.PatchIntensity.Max, MaxIntensity))
	s.PatchSize = clamp(s.PatchSize, l.PatchSize.Min, l.PatchSize.Max)
	s.PatchCount = clamp(s.PatchCount, l.PatchCount.Min, l.PatchCount.Max)
	s.Alpha = clamp(s.Alpha, max(l.Alpha.Min, 0), min(l.Alpha.Max, 255))
	if s.PreviewSize > 0 {
		s.PatchSize = min(s.PatchSize, s.PreviewSize-1)
	}
	if s.PatchIntensity <= 0 {
		s.PatchCount = 0
	}
	if s.BaseColor == "" {
		s.BaseColor = DefaultSettings().BaseColor
	}
	return s
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
