// Package chalkboard generates procedural chalkboard textures: grayscale
// noise with brighter square patches, composited over a solid base color
// and softened with a Gaussian blur.
//
// Every call to Generate produces a fresh image. Output is random unless the
// Generator was built with a seeded Source.
package chalkboard

// MaxIntensity is the largest exclusive upper bound an 8-bit draw accepts.
const MaxIntensity = 256

// PatchParams controls the bright square smudges stamped over the base noise.
type PatchParams struct {
	Intensity int `json:"intensity"` // exclusive upper bound of patch values
	Size      int `json:"size"`      // side length in pixels
	Count     int `json:"count"`     // number of patches
}

// Params is the full input of one generation.
type Params struct {
	Width            int         `json:"width"`
	Height           int         `json:"height"`
	TextureIntensity int         `json:"textureIntensity"` // exclusive upper bound of base noise
	Patch            PatchParams `json:"patch"`
	BaseColor        string      `json:"baseColor"` // "#rrggbb" or "#rrggbbaa"
	Alpha            int         `json:"alpha"`     // opacity of the noise layer, 0–255
}

// Validate checks every numeric parameter. It returns a *RangeError for the
// first violation found; the color string is checked separately by
// ParseColor.
func (p Params) Validate() error {
	if p.Width <= 0 {
		return rangeErr("width", p.Width, "must be positive")
	}
	if p.Height <= 0 {
		return rangeErr("height", p.Height, "must be positive")
	}
	if p.TextureIntensity <= 0 || p.TextureIntensity > MaxIntensity {
		return rangeErr("textureIntensity", p.TextureIntensity, "must be in [1, %d]", MaxIntensity)
	}
	if p.Alpha < 0 || p.Alpha > 255 {
		return rangeErr("alpha", p.Alpha, "must be in [0, 255]")
	}
	return p.Patch.validate(p.Width, p.Height)
}

func (pp PatchParams) validate(w, h int) error {
	if pp.Count < 0 {
		return rangeErr("patchCount", pp.Count, "must not be negative")
	}
	if pp.Size < 0 {
		return rangeErr("patchSize", pp.Size, "must not be negative")
	}
	if pp.Count == 0 {
		return nil
	}
	if pp.Size >= w || pp.Size >= h {
		return rangeErr("patchSize", pp.Size, "must be smaller than %dx%d image", w, h)
	}
	if pp.Intensity <= 0 || pp.Intensity > MaxIntensity {
		return rangeErr("patchIntensity", pp.Intensity, "must be in [1, %d] when patches are drawn", MaxIntensity)
	}
	return nil
}
