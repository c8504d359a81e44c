// color.go — Base color parsing and solid layer creation.
package chalkboard

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" (the '#' is optional,
// case is ignored). A color without an alpha channel is fully opaque.
// "random" picks a random pleasant color.
func ParseColor(s string) (color.NRGBA, error) {
	if s == "random" {
		r, g, b := colorful.HappyColor().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}

	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint8(255)
	switch len(hex) {
	case 3, 6:
	case 8:
		av, err := strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: alpha channel: %v", ErrColor, s, err)
		}
		alpha = uint8(av)
		hex = hex[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("%w %q: expected #rgb, #rrggbb or #rrggbbaa", ErrColor, s)
	}
	if strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
		return color.NRGBA{}, fmt.Errorf("%w %q: non-hex digits", ErrColor, s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatHex renders c as upper-case "#RRGGBBAA".
func FormatHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// NormalizeHex parses s and returns its canonical "#RRGGBBAA" form, so
// "#336699" and "#336699ff" normalize to the same string.
func NormalizeHex(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return FormatHex(c), nil
}

// HexFromColor converts any color.Color (e.g. from a color picker) to
// "#RRGGBBAA".
func HexFromColor(c color.Color) string {
	return FormatHex(color.NRGBAModel.Convert(c).(color.NRGBA))
}

// DominantColor returns the most prominent color of img as "#RRGGBBFF",
// for picking a base color from a photo of a real board.
func DominantColor(img image.Image) string {
	c := dominantcolor.Find(img)
	return FormatHex(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// BaseLayer creates a uniform w×h image filled with c.
func BaseLayer(w, h int, c color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}
