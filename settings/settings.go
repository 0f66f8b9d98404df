package settings

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Settings holds the runtime options of a run. Values come from
// .journey.yaml, JOURNEY_* env vars, and CLI flags, in increasing priority.
// The journey content itself lives in the prefab named by Journey.
type Settings struct {
	Journey       string  `mapstructure:"journey"`
	Debug         bool    `mapstructure:"debug"`
	Watch         bool    `mapstructure:"watch"`
	Music         bool    `mapstructure:"music"`
	Volume        float64 `mapstructure:"volume"`
	AssetsDir     string  `mapstructure:"assets_dir"`
	WindowScale   int     `mapstructure:"window_scale"`
	Fullscreen    bool    `mapstructure:"fullscreen"`
	Start         string  `mapstructure:"start"`
	StartFraction float64 `mapstructure:"start_fraction"`
}

// Start scenes accepted in Settings.Start.
const (
	StartMain   = "main"
	StartIsland = "island"
)

// Init points viper at the settings file and environment. A missing file is
// not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".journey")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("JOURNEY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if cfgFile == "" {
			log.Printf("settings: read %s: %v", viper.ConfigFileUsed(), err)
			return nil
		}
		return fmt.Errorf("settings: read %s: %w", cfgFile, err)
	}
	return nil
}

// Load reads settings from viper, applying built-in defaults for any value
// not set by file, environment, or flags.
func Load() (Settings, error) {
	viper.SetDefault("journey", "journey.yaml")
	viper.SetDefault("debug", false)
	viper.SetDefault("watch", false)
	viper.SetDefault("music", true)
	viper.SetDefault("volume", 0.5)
	viper.SetDefault("assets_dir", "assets")
	viper.SetDefault("window_scale", 2)
	viper.SetDefault("fullscreen", false)
	viper.SetDefault("start", StartMain)
	viper.SetDefault("start_fraction", 0.0)

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("settings: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	var errs []error
	if s.Start != StartMain && s.Start != StartIsland {
		errs = append(errs, fmt.Errorf("start must be %q or %q, got %q", StartMain, StartIsland, s.Start))
	}
	if s.StartFraction < 0 || s.StartFraction > 1 {
		errs = append(errs, fmt.Errorf("start_fraction must be in [0, 1], got %v", s.StartFraction))
	}
	if s.Volume < 0 || s.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume must be in [0, 1], got %v", s.Volume))
	}
	if s.WindowScale < 1 {
		errs = append(errs, fmt.Errorf("window_scale must be at least 1, got %d", s.WindowScale))
	}
	if len(errs) > 0 {
		return fmt.Errorf("settings: %w", errors.Join(errs...))
	}
	return nil
}

// HotReload reports whether journey files should be watched.
func (s Settings) HotReload() bool {
	return s.Watch || s.Debug
}
