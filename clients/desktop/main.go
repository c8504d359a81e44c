// GoChalk desktop — live preview window with slider controls.
package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
	"github.com/xob0t/GoChalk/pkg/generator"
)

func main() {
	a := app.New()
	w := a.NewWindow("Chalkboard Generator")

	ui := newBoardUI(w, chalkboard.DefaultSettings(), chalkboard.DefaultLimits)
	w.SetContent(ui.content())
	w.Resize(fyne.NewSize(1300, 800))
	ui.refresh()
	w.ShowAndRun()
}

// boardUI owns the current settings; every control writes into it and
// triggers a fresh preview.
type boardUI struct {
	window   fyne.Window
	settings chalkboard.Settings
	limits   chalkboard.Limits
	preview  *canvas.Image
	log      *log.Entry
}

func newBoardUI(w fyne.Window, s chalkboard.Settings, l chalkboard.Limits) *boardUI {
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(float32(s.PreviewSize), float32(s.PreviewSize)))

	return &boardUI{
		window:   w,
		settings: s,
		limits:   l,
		preview:  img,
		log:      log.WithField("component", "desktop"),
	}
}

func (u *boardUI) content() fyne.CanvasObject {
	patchMax := min(u.limits.PatchSize.Max, u.settings.PreviewSize-1)

	form := container.NewGridWithColumns(2,
		widget.NewLabel("Base Texture Intensity"), u.slider(u.limits.TextureIntensity.Min, u.limits.TextureIntensity.Max, &u.settings.TextureIntensity),
		widget.NewLabel("Patch Intensity"), u.slider(u.limits.PatchIntensity.Min, u.limits.PatchIntensity.Max, &u.settings.PatchIntensity),
		widget.NewLabel("Patch Size"), u.slider(u.limits.PatchSize.Min, patchMax, &u.settings.PatchSize),
		widget.NewLabel("Patch Count"), u.slider(u.limits.PatchCount.Min, u.limits.PatchCount.Max, &u.settings.PatchCount),
		widget.NewLabel("Alpha"), u.slider(u.limits.Alpha.Min, u.limits.Alpha.Max, &u.settings.Alpha),
	)

	controls := container.NewVBox(
		form,
		widget.NewButton("Choose Base Color", u.chooseColor),
		widget.NewButton("Save Image", u.save),
	)

	return container.NewBorder(nil, nil, container.NewPadded(u.preview), nil, container.NewPadded(controls))
}

func (u *boardUI) slider(lo, hi int, target *int) *widget.Slider {
	s := widget.NewSlider(float64(lo), float64(hi))
	s.Step = 1
	s.SetValue(float64(*target))
	s.OnChanged = func(v float64) {
		if int(v) == *target {
			return
		}
		*target = int(v)
		u.refresh()
	}
	return s
}

// refresh regenerates the preview synchronously.
func (u *boardUI) refresh() {
	s := u.settings.Clamp(u.limits)
	gen := chalkboard.New(chalkboard.WithBlurRadius(s.BlurRadius), chalkboard.WithLogger(u.log))

	img, err := gen.Generate(s.Params(s.PreviewSize))
	if err != nil {
		dialog.ShowError(err, u.window)
		return
	}
	u.preview.Image = img
	u.preview.Refresh()
}

func (u *boardUI) chooseColor() {
	d := dialog.NewColorPicker("Choose Base Color", "Chalkboard base color", func(c color.Color) {
		u.settings.BaseColor = chalkboard.HexFromColor(c)
		u.refresh()
	}, u.window)
	d.Advanced = true
	if c, err := chalkboard.ParseColor(u.settings.BaseColor); err == nil {
		d.SetColor(c)
	}
	d.Show()
}

func (u *boardUI) save() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.window)
			return
		}
		if wc == nil {
			return // cancelled
		}
		defer wc.Close()

		ext := strings.ToLower(wc.URI().Extension())
		if !generator.Supported(ext) {
			ext = ".png"
		}

		start := time.Now()
		s := u.settings.Clamp(u.limits)
		cfg := generator.Config{
			Settings:  s,
			Generator: chalkboard.New(chalkboard.WithBlurRadius(s.BlurRadius), chalkboard.WithLogger(u.log)),
		}
		img, err := generator.Render(cfg)
		if err == nil {
			err = generator.Encode(wc, ext, img)
		}
		if err != nil {
			dialog.ShowError(fmt.Errorf("export %s: %w", wc.URI().Name(), err), u.window)
			return
		}
		u.log.WithField("took", time.Since(start).Round(time.Millisecond)).Infof("exported %s", wc.URI().Path())
	}, u.window)
	d.SetFileName("chalkboard.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".bmp", ".tif", ".tiff"}))
	d.Show()
}
