package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds plantgraph's deployer-overridable defaults. None of these
// fields select a perturbation scenario — that stays a CLI argument.
type Config struct {
	APSP   APSPConfig   `mapstructure:"apsp"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// APSPConfig holds all-pairs-shortest-path engine tuning.
type APSPConfig struct {
	Workers          int     `mapstructure:"workers"`
	DensityThreshold float64 `mapstructure:"density_threshold"`
}

// OutputConfig controls where report CSVs are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig controls the zap logger built from this config.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath (if non-empty) layered over
// defaults, then lets PLANTGRAPH_-prefixed environment variables override
// both. A missing configPath is not an error — defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("plantgraph")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("apsp.workers", 0)
	v.SetDefault("apsp.density_threshold", 0)
	v.SetDefault("output.dir", "./output")
	v.SetDefault("log.level", "info")
}
