// merge.go — Merge preset overrides onto base settings.
package preset

import "github.com/xob0t/GoChalk/pkg/chalkboard"

// Merge overlays every non-nil override onto base.
func Merge(base chalkboard.Settings, over Overrides) chalkboard.Settings {
	setInt(&base.TextureIntensity, over.TextureIntensity)
	setInt(&base.PatchIntensity, over.PatchIntensity)
	setInt(&base.PatchSize, over.PatchSize)
	setInt(&base.PatchCount, over.PatchCount)
	setInt(&base.Alpha, over.Alpha)
	setInt(&base.PreviewSize, over.PreviewSize)
	setInt(&base.ExportSize, over.ExportSize)
	if over.BaseColor != nil {
		base.BaseColor = *over.BaseColor
	}
	if over.BlurRadius != nil {
		base.BlurRadius = *over.BlurRadius
	}
	return base
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
