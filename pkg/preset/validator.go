// validator.go — Check preset values against the slider limits.
package preset

import (
	"fmt"
	"strings"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
)

// Validate checks the resolved settings of p against limits.
// Returns warnings (never fatal errors); callers may Clamp afterwards.
func Validate(p *Preset, limits chalkboard.Limits) []string {
	s := p.Resolve()
	var warnings []string

	check := func(name string, v int, r chalkboard.Range) {
		if v < r.Min || v > r.Max {
			warnings = append(warnings, fmt.Sprintf("%s %d outside [%d, %d]", name, v, r.Min, r.Max))
		}
	}
	check("textureIntensity", s.TextureIntensity, limits.TextureIntensity)
	check("patchIntensity", s.PatchIntensity, limits.PatchIntensity)
	check("patchSize", s.PatchSize, limits.PatchSize)
	check("patchCount", s.PatchCount, limits.PatchCount)
	check("alpha", s.Alpha, limits.Alpha)

	if _, err := chalkboard.ParseColor(s.BaseColor); err != nil {
		warnings = append(warnings, err.Error())
	}
	if s.PatchCount > 0 && s.PatchSize >= s.PreviewSize {
		warnings = append(warnings, fmt.Sprintf("patchSize %d does not fit the %dpx preview", s.PatchSize, s.PreviewSize))
	}
	if s.BlurRadius < 0 {
		warnings = append(warnings, fmt.Sprintf("blurRadius %.1f is negative; blur disabled", s.BlurRadius))
	}
	return warnings
}

// Format returns a human-readable summary of the preset and its resolved
// settings.
func Format(p *Preset) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Preset: %s", p.Meta.Name)
	if p.Meta.Version != "" {
		fmt.Fprintf(&sb, " (v%s)", p.Meta.Version)
	}
	if p.Meta.Author != "" {
		fmt.Fprintf(&sb, " by %s", p.Meta.Author)
	}
	sb.WriteString("\n")
	if p.Meta.Description != "" {
		sb.WriteString(p.Meta.Description + "\n")
	}

	s := p.Resolve()
	fmt.Fprintf(&sb, "  %-18s %d\n", "texture:", s.TextureIntensity)
	fmt.Fprintf(&sb, "  %-18s %d\n", "patch intensity:", s.PatchIntensity)
	fmt.Fprintf(&sb, "  %-18s %d\n", "patch size:", s.PatchSize)
	fmt.Fprintf(&sb, "  %-18s %d\n", "patch count:", s.PatchCount)
	fmt.Fprintf(&sb, "  %-18s %d\n", "alpha:", s.Alpha)
	fmt.Fprintf(&sb, "  %-18s %s\n", "base color:", s.BaseColor)
	fmt.Fprintf(&sb, "  %-18s %g\n", "blur:", s.BlurRadius)
	return sb.String()
}
