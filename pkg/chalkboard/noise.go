// noise.go — Base noise field and patch overlay.
package chalkboard

import (
	"image"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
)

// Source is the random source consumed by the generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the process-wide math/rand/v2 generator, which is
// unseeded and safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Field is the single-channel noise buffer before colorization.
type Field struct {
	*image.Gray
}

// NoiseField fills a w×h field with independent values in [0, intensity).
func NoiseField(src Source, w, h, intensity int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, rangeErr("width", min(w, h), "field dimensions must be positive")
	}
	if intensity <= 0 || intensity > MaxIntensity {
		return nil, rangeErr("textureIntensity", intensity, "must be in [1, %d]", MaxIntensity)
	}

	gray := image.NewGray(image.Rect(0, 0, w, h))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(src.IntN(intensity))
	}
	return &Field{gray}, nil
}

// ApplyPatches stamps pp.Count random squares onto the field. Each square
// is merged with an elementwise max, so patches only ever brighten.
func (f *Field) ApplyPatches(src Source, pp PatchParams) error {
	w, h := f.Rect.Dx(), f.Rect.Dy()
	if err := pp.validate(w, h); err != nil {
		return err
	}

	for range pp.Count {
		x := src.IntN(w - pp.Size)
		y := src.IntN(h - pp.Size)
		for py := 0; py < pp.Size; py++ {
			row := f.Pix[(y+py)*f.Stride+x : (y+py)*f.Stride+x+pp.Size]
			for px := range row {
				if v := uint8(src.IntN(pp.Intensity)); v > row[px] {
					row[px] = v
				}
			}
		}
	}
	return nil
}

// Stats returns the mean and unbiased variance of the field values.
func (f *Field) Stats() (mean, variance float64) {
	w, h := f.Rect.Dx(), f.Rect.Dy()
	vals := make([]float64, 0, w*h)
	for y := 0; y < h; y++ {
		for _, v := range f.Pix[y*f.Stride : y*f.Stride+w] {
			vals = append(vals, float64(v))
		}
	}
	return stat.MeanVariance(vals, nil)
}
