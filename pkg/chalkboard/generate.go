// generate.go — The texture pipeline.
package chalkboard

import (
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	log "github.com/sirupsen/logrus"
)

// Generator runs the texture pipeline with a fixed random source and blur
// radius. A Generator holds no per-call state; concurrent use is only as
// safe as its Source.
type Generator struct {
	src        Source
	blurRadius float64
	log        *log.Entry
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource injects the random source.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithSeed uses a PCG source seeded with seed, for reproducible output.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.src = rand.New(rand.NewPCG(seed, seed)) }
}

// WithBlurRadius overrides DefaultBlurRadius. Zero disables blurring.
func WithBlurRadius(r float64) Option {
	return func(g *Generator) { g.blurRadius = r }
}

// WithLogger sets the entry used for debug timings.
func WithLogger(l *log.Entry) Option {
	return func(g *Generator) { g.log = l }
}

// New returns a Generator drawing from the process-wide random source unless
// an option says otherwise.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:        globalSource{},
		blurRadius: DefaultBlurRadius,
		log:        log.WithField("component", "chalkboard"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate renders a texture with the default Generator.
func Generate(p Params) (*image.RGBA, error) {
	return defaultGenerator.Generate(p)
}

// Generate renders one chalkboard texture. Invalid parameters fail with a
// *RangeError before any random draws are made.
func (g *Generator) Generate(p Params) (*image.RGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	base, err := ParseColor(p.BaseColor)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	field, err := NoiseField(g.src, p.Width, p.Height, p.TextureIntensity)
	if err != nil {
		return nil, err
	}
	if err := field.ApplyPatches(g.src, p.Patch); err != nil {
		return nil, fmt.Errorf("apply patches: %w", err)
	}

	img := Composite(BaseLayer(p.Width, p.Height, base), Colorize(field, uint8(p.Alpha)))
	img = Blur(img, g.blurRadius)

	g.log.WithFields(log.Fields{
		"width":   p.Width,
		"height":  p.Height,
		"patches": p.Patch.Count,
		"took":    time.Since(start),
	}).Debug("generated texture")
	return img, nil
}
