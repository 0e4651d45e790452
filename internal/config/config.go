// Package config loads vattfocus settings from defaults, an optional YAML file,
// VATTFOCUS_ environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/RMcDOttawa/goAzcamVatt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "VATTFOCUS"
	ConfigName     = "vattfocus"
	DefaultSystem  = "vatt4k"
	DefaultHost    = "localhost"
	dataRootFolder = "/data"
)

// Profile holds the per-system settings of one VATT camera console
type Profile struct {
	Port int
}

// Profiles lists the known camera systems
var Profiles = map[string]Profile{
	"vatt4k":   {Port: 2402},
	"vattspec": {Port: 2412},
}

type Config struct {
	System     string      `mapstructure:"system"`
	Host       string      `mapstructure:"host"`
	Port       int         `mapstructure:"port"`
	DataFolder string      `mapstructure:"datafolder"`
	Debug      bool        `mapstructure:"debug"`
	Verbosity  int         `mapstructure:"verbosity"`
	Focus      FocusConfig `mapstructure:"focus"`
}

// FocusConfig seeds the focus sequencer. When Configured is set the sweep values are
// applied with Configure and runs no longer prompt.
type FocusConfig struct {
	Component       string  `mapstructure:"component"`
	Type            string  `mapstructure:"type"`
	MoveDelay       int     `mapstructure:"move_delay"`
	ExposureTime    float64 `mapstructure:"exposure_time"`
	NumberExposures int     `mapstructure:"number_exposures"`
	FocusStep       float64 `mapstructure:"focus_step"`
	DetectorShift   int     `mapstructure:"detector_shift"`
	Configured      bool    `mapstructure:"configured"`
}

// flagKeys maps command-line flag names onto configuration keys
var flagKeys = map[string]string{
	"system":    "system",
	"host":      "host",
	"port":      "port",
	"debug":     "debug",
	"verbosity": "verbosity",
}

// Load reads the configuration. configFile may be empty, in which case vattfocus.yaml is
// looked for in the working directory and ~/.config/vattfocus; a missing file is not an error.
// flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vattfocus")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for flagName, key := range flagKeys {
			if flag := flags.Lookup(flagName); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("config: binding flag %s: %w", flagName, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading %s: %w", describeFile(configFile), err)
		}
	}

	// Port and data folder follow the selected system unless set explicitly
	system := strings.ToLower(v.GetString("system"))
	profile, ok := Profiles[system]
	if !ok {
		return nil, fmt.Errorf("config: unknown system %q (want one of %s)", system, strings.Join(SystemNames(), ", "))
	}
	v.Set("system", system)
	v.SetDefault("port", profile.Port)
	v.SetDefault("datafolder", filepath.Join(dataRootFolder, system))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("system", DefaultSystem)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("debug", false)
	v.SetDefault("verbosity", 1)
	v.SetDefault("focus.component", string(goAzcamVatt.FocusComponentTelescope))
	v.SetDefault("focus.type", string(goAzcamVatt.FocusTypeAbsolute))
	v.SetDefault("focus.move_delay", 3)
	v.SetDefault("focus.exposure_time", 1.0)
	v.SetDefault("focus.number_exposures", 7)
	v.SetDefault("focus.focus_step", 30.0)
	v.SetDefault("focus.detector_shift", 10)
	v.SetDefault("focus.configured", false)
}

// Validate checks the values a sequencer and driver would otherwise reject later
func (cfg *Config) Validate() error {
	if _, ok := Profiles[cfg.System]; !ok {
		return fmt.Errorf("config: unknown system %q", cfg.System)
	}
	if cfg.Host == "" {
		return errors.New("config: host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", cfg.Port)
	}
	if _, err := goAzcamVatt.ParseFocusComponent(cfg.Focus.Component); err != nil {
		return fmt.Errorf("config: focus.component: %w", err)
	}
	if _, err := goAzcamVatt.ParseFocusType(cfg.Focus.Type); err != nil {
		return fmt.Errorf("config: focus.type: %w", err)
	}
	if cfg.Focus.MoveDelay < 0 {
		return fmt.Errorf("config: focus.move_delay must not be negative, got %d", cfg.Focus.MoveDelay)
	}
	if cfg.Focus.Configured {
		if cfg.Focus.ExposureTime <= 0 {
			return fmt.Errorf("config: focus.exposure_time must be positive, got %g", cfg.Focus.ExposureTime)
		}
		if cfg.Focus.NumberExposures < 1 {
			return fmt.Errorf("config: focus.number_exposures must be at least 1, got %d", cfg.Focus.NumberExposures)
		}
		if cfg.Focus.DetectorShift < 0 {
			return fmt.Errorf("config: focus.detector_shift must not be negative, got %d", cfg.Focus.DetectorShift)
		}
	}
	return nil
}

// LogFolder is where console logs are written
func (cfg *Config) LogFolder() string {
	return filepath.Join(cfg.DataFolder, "logs")
}

func SystemNames() []string {
	return []string{"vatt4k", "vattspec"}
}

func describeFile(configFile string) string {
	if configFile == "" {
		return ConfigName + ".yaml"
	}
	return configFile
}
