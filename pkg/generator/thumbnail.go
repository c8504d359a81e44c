// thumbnail.go — Downscaled copies for previews.
package generator

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail scales img to fit within size×size, keeping the aspect ratio.
// Images already small enough are returned unchanged.
func Thumbnail(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if size <= 0 || (w <= size && h <= size) {
		return img
	}

	tw, th := size, size
	if w > h {
		th = max(h*size/w, 1)
	} else {
		tw = max(w*size/h, 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
