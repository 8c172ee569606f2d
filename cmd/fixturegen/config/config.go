package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds CLI configuration
type Config struct {
	OutDir    string `mapstructure:"out_dir"`
	PadWidth  int    `mapstructure:"pad_width"`
	Prefix    string `mapstructure:"prefix"`
	ChunkSize int    `mapstructure:"chunk_size"`
	LogLevel  string `mapstructure:"log_level"`
}

// LoadConfig loads configuration from file, environment, and flags.
// Precedence: flags > environment (FIXTUREGEN_*) > config file > defaults.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{}

	// Get config file path
	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		// Default to $HOME/.fixturegen/config.yaml
		home, err := os.UserHomeDir()
		if err == nil {
			configFile = filepath.Join(home, ".fixturegen", "config.yaml")
		}
	}

	// Set up viper
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("FIXTUREGEN")
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so env-only keys must be
	// bound explicitly (FIXTUREGEN_OUT_DIR and friends)
	for _, key := range []string{"out_dir", "pad_width", "prefix", "chunk_size", "log_level"} {
		v.BindEnv(key)
	}

	// Read config file if it exists
	if configFile != "" {
		if err := v.ReadInConfig(); err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !notFound && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// Unmarshal config
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Override with flags
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.OutDir = out
	}
	if cmd.Flags().Changed("pad") {
		cfg.PadWidth, _ = cmd.Flags().GetInt("pad")
	}
	if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
		cfg.Prefix = prefix
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize, _ = cmd.Flags().GetInt("chunk-size")
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	// Defaults
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
