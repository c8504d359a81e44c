// composite.go — Colorization, alpha compositing and blur.
package chalkboard

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/convolution"
	"golang.org/x/image/draw"
)

// DefaultBlurRadius softens noise pixels into chalk dust.
const DefaultBlurRadius = 2.0

// Colorize expands the field to gray RGB and forces every pixel's alpha to
// the given value.
func Colorize(f *Field, alpha uint8) *image.NRGBA {
	w, h := f.Rect.Dx(), f.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := f.Pix[y*f.Stride : y*f.Stride+w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for x, v := range src {
			dst[x*4+0] = v
			dst[x*4+1] = v
			dst[x*4+2] = v
			dst[x*4+3] = alpha
		}
	}
	return out
}

// Composite draws top over base in place using Porter-Duff "over":
// out = top*a + base*(1-a), with the output alpha following the same rule.
func Composite(base *image.RGBA, top image.Image) *image.RGBA {
	draw.Draw(base, base.Bounds(), top, top.Bounds().Min, draw.Over)
	return base
}

// Blur applies a separable Gaussian blur with standard deviation radius.
// A radius <= 0 returns an unblurred copy.
func Blur(img image.Image, radius float64) *image.RGBA {
	if radius <= 0 {
		return clone.AsRGBA(img)
	}
	k := GaussianKernel(radius)
	opts := &convolution.Options{}
	out := convolution.Convolve(img, k, opts)
	return convolution.Convolve(out, k.Transposed(), opts)
}

// GaussianKernel returns a normalized 1-d kernel with standard deviation
// sigma, truncated at 3 sigma on each side.
func GaussianKernel(sigma float64) convolution.Matrix {
	half := int(math.Ceil(3 * sigma))
	k := convolution.NewKernel(2*half+1, 1)
	for i := range k.Matrix {
		x := float64(i - half)
		k.Matrix[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	return k.Normalized()
}

