package config

import "time"

// Mode selects gin's run mode.
type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
	ModeTest    Mode = "test"
)

// Config is the top-level archfolio configuration, corresponding to
// archfolio.yml.
type Config struct {
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Session   SessionConfig   `yaml:"session" koanf:"session"`
	Analytics AnalyticsConfig `yaml:"analytics" koanf:"analytics"`
	TUI       TUIConfig       `yaml:"tui" koanf:"tui"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port int  `yaml:"port" koanf:"port"`
	Mode Mode `yaml:"mode" koanf:"mode"`
	// AllowAllOrigins opens the scene API and WebSocket to any origin.
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// SessionConfig bounds the per-visitor controller store.
type SessionConfig struct {
	IdleTimeout   time.Duration `yaml:"idle_timeout" koanf:"idle_timeout"`
	SweepInterval time.Duration `yaml:"sweep_interval" koanf:"sweep_interval"`
	MaxSessions   int           `yaml:"max_sessions" koanf:"max_sessions"`
}

// AnalyticsConfig controls visitor tracking.
type AnalyticsConfig struct {
	Enabled     bool          `yaml:"enabled" koanf:"enabled"`
	DBPath      string        `yaml:"db_path" koanf:"db_path"`
	Retention   time.Duration `yaml:"retention" koanf:"retention"`
	TopProjects int           `yaml:"top_projects" koanf:"top_projects"`
}

// TUIConfig holds terminal front-end settings.
type TUIConfig struct {
	// MenuBreakpoint is the terminal width below which the tab bar
	// collapses into the menu.
	MenuBreakpoint int `yaml:"menu_breakpoint" koanf:"menu_breakpoint"`
}
