package generator

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
)

func smallConfig() Config {
	s := chalkboard.DefaultSettings()
	s.PatchSize = 10
	s.ExportSize = 64
	return Config{
		Settings:  s,
		Generator: chalkboard.New(chalkboard.WithSeed(1)),
	}
}

func TestGenerateFormats(t *testing.T) {
	dir := t.TempDir()
	decoders := map[string]func(f *os.File) (image.Image, error){
		"out.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"out.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"out.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
		"out.TIF":  func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Generate(path, smallConfig()))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			img, err := decode(f)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
		})
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.avi")
	err := Generate(path, smallConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.NoFileExists(t, path)
}

func TestGenerateBadDirectory(t *testing.T) {
	err := Generate(filepath.Join(t.TempDir(), "missing", "out.png"), smallConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create")
}

func TestGenerateRangeErrorPropagates(t *testing.T) {
	cfg := smallConfig()
	cfg.Settings.PatchSize = 64
	err := Generate(filepath.Join(t.TempDir(), "out.png"), cfg)
	assert.ErrorIs(t, err, chalkboard.ErrRange)
}

func TestRenderNegativeSizeIsRangeError(t *testing.T) {
	tests := map[string]func(c *Config){
		"width":      func(c *Config) { c.Width = -5 },
		"height":     func(c *Config) { c.Height = -1 },
		"exportSize": func(c *Config) { c.Settings.ExportSize = -3 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := smallConfig()
			mutate(&cfg)
			_, err := Render(cfg)
			assert.ErrorIs(t, err, chalkboard.ErrRange)
		})
	}
}

func TestRenderZeroSizeUsesExportSize(t *testing.T) {
	img, err := Render(smallConfig())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
}

func TestGenerateToWriterExplicitSize(t *testing.T) {
	cfg := smallConfig()
	cfg.Width, cfg.Height = 40, 24

	var buf bytes.Buffer
	require.NoError(t, GenerateToWriter(&buf, ".png", cfg))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())
}

func TestGenerateToWriterUsesImage(t *testing.T) {
	src := chalkboard.BaseLayer(5, 3, color.NRGBA{1, 2, 3, 255})

	var buf bytes.Buffer
	require.NoError(t, GenerateToWriter(&buf, ".png", Config{Image: src}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := img.At(4, 2).RGBA()
	assert.Equal(t, []uint32{1, 2, 3}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestThumbnail(t *testing.T) {
	img := chalkboard.BaseLayer(400, 200, color.NRGBA{10, 20, 30, 255})

	thumb := Thumbnail(img, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 50), thumb.Bounds())

	same := Thumbnail(img, 800)
	assert.Same(t, img, same)
}
