package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
	"github.com/xob0t/GoChalk/pkg/preset"
)

// settingKeys maps config keys to the Settings field they override.
var settingKeys = []struct {
	key   string
	apply func(v *viper.Viper, s *chalkboard.Settings)
}{
	{"texture", func(v *viper.Viper, s *chalkboard.Settings) { s.TextureIntensity = v.GetInt("texture") }},
	{"patch-intensity", func(v *viper.Viper, s *chalkboard.Settings) { s.PatchIntensity = v.GetInt("patch-intensity") }},
	{"patch-size", func(v *viper.Viper, s *chalkboard.Settings) { s.PatchSize = v.GetInt("patch-size") }},
	{"patch-count", func(v *viper.Viper, s *chalkboard.Settings) { s.PatchCount = v.GetInt("patch-count") }},
	{"alpha", func(v *viper.Viper, s *chalkboard.Settings) { s.Alpha = v.GetInt("alpha") }},
	{"color", func(v *viper.Viper, s *chalkboard.Settings) { s.BaseColor = v.GetString("color") }},
	{"preview-size", func(v *viper.Viper, s *chalkboard.Settings) { s.PreviewSize = v.GetInt("preview-size") }},
	{"size", func(v *viper.Viper, s *chalkboard.Settings) { s.ExportSize = v.GetInt("size") }},
	{"blur", func(v *viper.Viper, s *chalkboard.Settings) { s.BlurRadius = v.GetFloat64("blur") }},
}

func addSettingsFlags(fs *pflag.FlagSet) {
	d := chalkboard.DefaultSettings()
	fs.String("preset", "", "Built-in preset name or preset JSON path")
	fs.Int("texture", d.TextureIntensity, "Base texture intensity (noise upper bound)")
	fs.Int("patch-intensity", d.PatchIntensity, "Patch intensity (patch noise upper bound)")
	fs.Int("patch-size", d.PatchSize, "Patch side length in pixels")
	fs.Int("patch-count", d.PatchCount, "Number of patches")
	fs.Int("alpha", d.Alpha, "Texture layer opacity (0-255)")
	fs.String("color", d.BaseColor, "Base color: #rrggbb, #rrggbbaa or 'random'")
	fs.Int("preview-size", d.PreviewSize, "Preview side length in pixels")
	fs.Int("size", d.ExportSize, "Export side length in pixels")
	fs.Float64("blur", d.BlurRadius, "Gaussian blur radius (0 disables)")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", f.Name, err))
		}
	})
}

// initConfig wires the config file and GOCHALK_* environment variables,
// then sets the log level.
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("GOCHALK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gochalk")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gochalk"))
		}
	}

	log.SetLevel(log.InfoLevel)
	if v.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}
	log.Debugf("Using config %s", v.ConfigFileUsed())
	return nil
}

// resolveSettings layers defaults, the optional preset, then any value set
// explicitly via config file, environment or flag.
func resolveSettings(v *viper.Viper) (chalkboard.Settings, error) {
	s := chalkboard.DefaultSettings()

	if ref := v.GetString("preset"); ref != "" {
		p, warnings, err := preset.Load(ref)
		if err != nil {
			return s, fmt.Errorf("load preset: %w", err)
		}
		for _, w := range warnings {
			log.Warn(w)
		}
		for _, w := range preset.Validate(p, chalkboard.DefaultLimits) {
			log.Warn(w)
		}
		s = p.Resolve()
	}

	for _, k := range settingKeys {
		if v.IsSet(k.key) {
			k.apply(v, &s)
		}
	}
	return s, nil
}
