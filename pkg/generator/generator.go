// Package generator renders chalkboard textures and writes them to disk.
//
// All output follows a unified pipeline: create an image.Image first,
// then encode it as PNG, BMP or TIFF depending on the target extension.
package generator

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
)

// Config holds parameters for one export.
type Config struct {
	Settings  chalkboard.Settings   // Control values; BlurRadius applies when Generator is nil
	Width     int                   // Pixel width; 0 means Settings.ExportSize
	Height    int                   // Pixel height; 0 means Settings.ExportSize
	Generator *chalkboard.Generator // Optional; seeded generators make exports reproducible
	Image     image.Image           // Pre-rendered image; overrides everything above
}

// Generate creates an output file. The format is inferred from the file extension:
//   - ".png"          → PNG image
//   - ".bmp"          → 32-bit BMP
//   - ".tif", ".tiff" → Deflate-compressed TIFF
//
// If cfg.Image is nil, a chalkboard texture is rendered from cfg.Settings.
func Generate(output string, cfg Config) error {
	ext := strings.ToLower(filepath.Ext(output))
	if !Supported(ext) {
		return fmt.Errorf("unsupported format %q: use .png, .bmp or .tiff", ext)
	}

	img, err := Render(cfg)
	if err != nil {
		return err
	}
	return writeFile(output, ext, img)
}

// GenerateToWriter writes an image to an io.Writer. The format is given by ext.
// This is useful for in-memory generation (e.g., HTTP responses or WASM).
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	if !Supported(ext) {
		return fmt.Errorf("unsupported format %q: use .png, .bmp or .tiff", ext)
	}

	img, err := Render(cfg)
	if err != nil {
		return err
	}
	return Encode(w, ext, img)
}

// Render returns the configured image, generating a texture if none is
// provided. Only a zero size falls back to a default; negative sizes reach
// the generator and fail with a RangeError.
func Render(cfg Config) (image.Image, error) {
	if cfg.Image != nil {
		return cfg.Image, nil
	}

	size := cfg.Settings.ExportSize
	if size == 0 {
		size = chalkboard.DefaultSettings().ExportSize
	}
	p := cfg.Settings.Params(size)
	if cfg.Width != 0 {
		p.Width = cfg.Width
	}
	if cfg.Height != 0 {
		p.Height = cfg.Height
	}

	gen := cfg.Generator
	if gen == nil {
		gen = chalkboard.New(chalkboard.WithBlurRadius(cfg.Settings.BlurRadius))
	}

	img, err := gen.Generate(p)
	if err != nil {
		return nil, fmt.Errorf("render %dx%d: %w", p.Width, p.Height, err)
	}
	return img, nil
}
