package config

import "time"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "archfolio.yml"

// DefaultRetention keeps analytics for twelve months.
const DefaultRetention = 365 * 24 * time.Hour

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Mode: ModeRelease,
		},
		Session: SessionConfig{
			IdleTimeout:   30 * time.Minute,
			SweepInterval: time.Minute,
			MaxSessions:   10000,
		},
		Analytics: AnalyticsConfig{
			Enabled:     true,
			DBPath:      "data/analytics.db",
			Retention:   DefaultRetention,
			TopProjects: 5,
		},
		TUI: TUIConfig{
			MenuBreakpoint: 80,
		},
	}
}
