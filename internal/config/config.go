package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level tracker configuration.
type Config struct {
	User        string   `mapstructure:"user"`
	GoalMinutes int      `mapstructure:"goal_minutes"`
	Categories  []string `mapstructure:"categories"`
	Insight     Insight  `mapstructure:"insight"`
	Output      Output   `mapstructure:"output"`
}

// Insight defines the external insight service settings.
type Insight struct {
	// Model is the Gemini model used for insight generation.
	Model string `mapstructure:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	// The key itself never lives in the config file.
	APIKeyEnv string `mapstructure:"api_key_env"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("user", DefaultUser)
	v.SetDefault("goal_minutes", DefaultGoalMinutes)
	v.SetDefault("categories", DefaultCategories)
	v.SetDefault("insight.model", DefaultInsight.Model)
	v.SetDefault("insight.api_key_env", DefaultInsight.APIKeyEnv)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GoalMinutes <= 0 {
		cfg.GoalMinutes = DefaultGoalMinutes
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
