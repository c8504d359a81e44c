package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
)

func TestExampleJSONParses(t *testing.T) {
	p, warnings, err := ParsePreset([]byte(GetExampleJSON()))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "My Board", p.Meta.Name)

	s := p.Resolve()
	assert.Equal(t, "#1E2A23", s.BaseColor)
	assert.Equal(t, 10000, s.ExportSize)
	assert.Empty(t, Validate(p, chalkboard.DefaultLimits))
}

func TestParsePresetUnknownKeys(t *testing.T) {
	data := `{"meta":{"name":"x"},"settings":{"alpha":10,"glow":3},"extra":true}`
	p, warnings, err := ParsePreset([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 10, *p.Settings.Alpha)
	assert.Equal(t, []string{
		`unknown key "extra" ignored`,
		`unknown setting "glow" ignored`,
	}, warnings)
}

func TestParsePresetMalformed(t *testing.T) {
	_, _, err := ParsePreset([]byte(`{"settings": {"alpha": "high"}}`))
	assert.Error(t, err)
}

func TestParsePresetSettingsNotObject(t *testing.T) {
	for _, doc := range []string{`{"settings": [1, 2]}`, `{"settings": "slate"}`, `{"settings": 7}`} {
		p, warnings, err := ParsePreset([]byte(doc))
		assert.Error(t, err, doc)
		assert.Nil(t, p)
		assert.Nil(t, warnings)
	}
}

func TestParsePresetNullSettings(t *testing.T) {
	p, warnings, err := ParsePreset([]byte(`{"meta": {"name": "empty"}, "settings": null}`))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, chalkboard.DefaultSettings(), p.Resolve())
}

func TestMergeKeepsUnsetFields(t *testing.T) {
	base := chalkboard.DefaultSettings()
	got := Merge(base, Overrides{PatchCount: ptr(0), BaseColor: ptr("#000000")})

	want := base
	want.PatchCount = 0
	want.BaseColor = "#000000"
	assert.Equal(t, want, got)
}

func TestBuiltinPresetsGenerate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, ok := Lookup(name)
			require.True(t, ok)
			assert.Empty(t, Validate(p, chalkboard.DefaultLimits))

			s := p.Resolve()
			s.PreviewSize = 120
			s = s.Clamp(chalkboard.DefaultLimits)
			img, err := chalkboard.New(chalkboard.WithSeed(1)).Generate(s.Params(s.PreviewSize))
			require.NoError(t, err)
			assert.Equal(t, 120, img.Bounds().Dx())
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	p := &Preset{Settings: Overrides{
		Alpha:       ptr(300),
		BaseColor:   ptr("nope"),
		PatchSize:   ptr(90),
		PreviewSize: ptr(64),
	}}
	warnings := Validate(p, chalkboard.DefaultLimits)
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "alpha 300")
	assert.Contains(t, warnings[1], "invalid color")
	assert.Contains(t, warnings[2], "patchSize 90")
}

func TestLoadFileAndBuiltin(t *testing.T) {
	p, _, err := Load("slate")
	require.NoError(t, err)
	assert.Equal(t, "#2B2F33", p.Resolve().BaseColor)

	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(GetExampleJSON()), 0644))
	p, _, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "My Board", p.Meta.Name)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	p, _ := Lookup("greenboard")
	out := Format(p)
	assert.Contains(t, out, "Preset: greenboard")
	assert.Contains(t, out, "#2F4F3A")
	assert.Contains(t, out, "patch count:")
}
