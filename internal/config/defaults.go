// Package config provides configuration loading and defaults for tracker.
package config

// DefaultConfigDir is the default location for tracker configuration.
const DefaultConfigDir = "~/.config/tracker"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "tracker.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultUser identifies the single local user records are stored under.
const DefaultUser = "local"

// DefaultGoalMinutes is the daily completed-time goal (6 hours).
const DefaultGoalMinutes = 360

// DefaultCategories are the entry-form category choices.
var DefaultCategories = []string{"Work", "Study", "Gym", "Personal"}

// DefaultInsight holds the default insight service settings.
var DefaultInsight = Insight{
	Model:     "gemini-1.5-flash",
	APIKeyEnv: "GEMINI_API_KEY",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
