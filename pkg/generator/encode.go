// encode.go — Raster encoders and file writer.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported reports whether ext (with leading dot) has an encoder.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// Encode writes img to w in the format named by ext.
func Encode(w io.Writer, ext string, img image.Image) error {
	var err error
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(w, img)
	case ".bmp":
		err = bmp.Encode(w, img)
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", strings.TrimPrefix(ext, "."), err)
	}
	return nil
}

// writeFile encodes img to a file at the given path.
func writeFile(output, ext string, img image.Image) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := Encode(f, ext, img); err != nil {
		return err
	}
	return f.Sync()
}
