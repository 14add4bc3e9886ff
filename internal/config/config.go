package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const Name = "config"

var Paths []string = []string{
	"/etc/trafficlight",
	"$HOME/.trafficlight",
	".",
}

var (
	ErrBindEnv         = errors.New("failed to bind env")
	ErrBindFlags       = errors.New("failed to bind flags")
	ErrReadConfig      = errors.New("failed to read config")
	ErrUnmarshalConfig = errors.New("failed to unmarshal config")
	ErrInvalidConfig   = errors.New("invalid config")
)

var LogLevels = []string{"debug", "info", "warn", "error"}

var LogFormats = []string{"console", "json"}

var envs = map[string][]string{
	"log.level":       {"TRAFFICLIGHT_LOG_LEVEL", "LOG_LEVEL"},
	"log.format":      {"TRAFFICLIGHT_LOG_FORMAT"},
	"log.no_color":    {"TRAFFICLIGHT_LOG_NO_COLOR", "NO_COLOR"},
	"light.seed":      {"TRAFFICLIGHT_SEED"},
	"crossings":       {"TRAFFICLIGHT_CROSSINGS"},
	"status_interval": {"TRAFFICLIGHT_STATUS_INTERVAL"},
	"oneshot":         {"TRAFFICLIGHT_ONESHOT"},
}

var defaults = map[string]any{
	"log.level":       "info",
	"log.format":      "console",
	"log.no_color":    false,
	"light.seed":      0,
	"crossings":       2,
	"status_interval": 30 * time.Second,
	"oneshot":         false,
}

// flag name -> config key
var flags = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"crossings":  "crossings",
	"oneshot":    "oneshot",
	"config":     "config_file",
}

type Log struct {
	Level string `mapstructure:"level"`
	// Format is "console" for human readable output or "json" for one object per line.
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

type Light struct {
	// Seed fixes the cycle duration source. Zero reseeds from the clock on every start.
	Seed int64 `mapstructure:"seed"`
}

type Config struct {
	Log            Log           `mapstructure:"log"`
	Light          Light         `mapstructure:"light"`
	Crossings      int           `mapstructure:"crossings"`
	StatusInterval time.Duration `mapstructure:"status_interval"`
	Oneshot        bool          `mapstructure:"oneshot"`
	ConfigFile     string        `mapstructure:"config_file"`
}

// BindFlags registers the command line flags on fs and binds them to the
// matching config keys. It must be called before Load.
func BindFlags(fs *pflag.FlagSet) error {
	fs.String("config", "", "path to config file")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.String("log-format", "", "log format (console, json)")
	fs.Int("crossings", 0, "number of crossings waiting for green")
	fs.Bool("oneshot", false, "exit after the first green phase")

	for flagName, key := range flags {
		if err := viper.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return errors.Join(ErrBindFlags, err)
		}
	}

	return nil
}

func Load() (*Config, error) {
	if file := viper.GetString("config_file"); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName(Name)
		for _, path := range Paths {
			viper.AddConfigPath(path)
		}
	}
	viper.AutomaticEnv()

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	for envName, keys := range envs {
		binding := []string{envName}
		binding = append(binding, keys...)

		if err := viper.BindEnv(binding...); err != nil {
			return nil, errors.Join(ErrBindEnv, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Join(ErrReadConfig, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(&cfg, hook); err != nil {
		return nil, errors.Join(ErrUnmarshalConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}

	if !slices.Contains(LogFormats, c.Log.Format) {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}

	if c.Crossings < 0 {
		return fmt.Errorf("%w: crossings must not be negative, got %d", ErrInvalidConfig, c.Crossings)
	}

	if c.StatusInterval <= 0 {
		return fmt.Errorf("%w: status_interval must be positive, got %s", ErrInvalidConfig, c.StatusInterval)
	}

	return nil
}
