package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Database struct {
	Dsn         string `yaml:"dsn" validate:"required"`
	AutoMigrate bool   `yaml:"autoMigrate"`
}

type IdentityConfig struct {
	Mode    string        `yaml:"mode" validate:"required|in:remote,static"`
	BaseURL string        `yaml:"baseUrl"`
	ApiKey  string        `yaml:"apiKey"`
	Timeout time.Duration `yaml:"timeout"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type UndoConfig struct {
	Window time.Duration `yaml:"window"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Database  Database       `yaml:"database"`
	Identity  IdentityConfig `yaml:"identity"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
	Undo      UndoConfig     `yaml:"undo"`
}
