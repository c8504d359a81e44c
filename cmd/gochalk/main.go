// GoChalk — Procedural chalkboard textures.
//
// Usage:
//
//	gochalk -o <file> [--preset <name|path>] [options]
//	gochalk serve [--port 8080]
//	gochalk presets
//	gochalk init
package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
	"github.com/xob0t/GoChalk/pkg/generator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "gochalk -o <file> [options]",
		Short:         "Generate chalkboard textures",
		Long:          "Render a procedural chalkboard texture (noise, patches, base color, blur) to PNG, BMP or TIFF.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(v)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (default: ./gochalk.yaml or ~/.config/gochalk/gochalk.yaml)")
	pf.BoolP("verbose", "v", false, "Debug logging")
	addSettingsFlags(pf)

	f := cmd.Flags()
	f.StringP("output", "o", "", "Output file path (.png, .bmp or .tiff)")
	f.Int("width", 0, "Width in pixels (default: --size)")
	f.Int("height", 0, "Height in pixels (default: --size)")
	f.String("color-from", "", "Pick the base color from the dominant color of an image")
	f.String("thumb", "", "Also write a preview-size PNG thumbnail to this path")
	f.Uint64("seed", 0, "Seed for reproducible output (default: random)")
	f.String("profile", "", "Write a pprof profile: cpu or mem")

	bindFlags(v, pf)
	bindFlags(v, f)

	cmd.AddCommand(newServeCmd(v), newInitCmd(), newPresetsCmd())
	return cmd
}

func runGenerate(v *viper.Viper) error {
	output := v.GetString("output")
	if output == "" {
		return fmt.Errorf("output file is required (-o)")
	}
	if ext := filepath.Ext(output); !generator.Supported(ext) {
		return fmt.Errorf("unsupported format %q: use .png, .bmp or .tiff", ext)
	}

	switch p := v.GetString("profile"); p {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile %q: use cpu or mem", p)
	}

	settings, err := resolveSettings(v)
	if err != nil {
		return err
	}

	if ref := v.GetString("color-from"); ref != "" {
		hex, err := colorFromImage(ref)
		if err != nil {
			return err
		}
		log.Infof("Base color from %s: %s", ref, hex)
		settings.BaseColor = hex
	}

	opts := []chalkboard.Option{chalkboard.WithBlurRadius(settings.BlurRadius)}
	if v.IsSet("seed") {
		opts = append(opts, chalkboard.WithSeed(v.GetUint64("seed")))
	}

	cfg := generator.Config{
		Settings:  settings,
		Width:     v.GetInt("width"),
		Height:    v.GetInt("height"),
		Generator: chalkboard.New(opts...),
	}

	log.Infof("Generating: %s", output)
	start := time.Now()
	img, err := generator.Render(cfg)
	if err != nil {
		return err
	}
	if err := generator.Generate(output, generator.Config{Image: img}); err != nil {
		return err
	}
	log.WithField("took", time.Since(start).Round(time.Millisecond)).Infof("Done: %s", output)

	if thumb := v.GetString("thumb"); thumb != "" {
		if err := generator.Generate(thumb, generator.Config{Image: generator.Thumbnail(img, settings.PreviewSize)}); err != nil {
			return fmt.Errorf("thumbnail: %w", err)
		}
		log.Infof("Thumbnail: %s", thumb)
	}
	return nil
}

func colorFromImage(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return chalkboard.DominantColor(img), nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, chalkboard.ErrRange) {
		fmt.Fprintln(os.Stderr, "Hint: patch size must stay below the image size; intensities must be in [1, 256].")
	}
	os.Exit(1)
}
