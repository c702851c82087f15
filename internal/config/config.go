package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/slotview/internal/constants"
)

// Viewer holds all configuration for the code viewer.
type Viewer struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Language is the display-language column (e.g. "schi", "eng", "jpja")
	Language string `yaml:"language"`

	Layout Layout `yaml:"layout"`

	// Reference tables
	Sources     Sources       `yaml:"sources"`
	LoadTimeout time.Duration `yaml:"load_timeout"` // per source (default: 8s)

	Assets Assets `yaml:"assets"`

	// Database is only used by postgres sources and cmd/tableimport
	Database DatabaseConfig `yaml:"database"`
}

// Sources names the location of each reference table.
// A location is a file path, an http(s):// URL or "postgres:<table>".
type Sources struct {
	Items      string `yaml:"items"`
	Recipes    string `yaml:"recipes"`
	Flowers    string `yaml:"flowers"`
	Variations string `yaml:"variations"`
}

// Assets configures where item images are probed.
type Assets struct {
	Dir  string `yaml:"dir"`
	Lazy bool   `yaml:"lazy"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultViewer returns Viewer config with sensible defaults.
func DefaultViewer() Viewer {
	return Viewer{
		LogLevel:    "info",
		Language:    constants.LangSimplifiedChinese,
		Layout:      DefaultLayout(),
		LoadTimeout: 8 * time.Second,
		Sources: Sources{
			Items:      "csv/items.csv",
			Recipes:    "csv/recipes.csv",
			Flowers:    "csv/flowers.csv",
			Variations: "csv/variations.csv",
		},
		Assets: Assets{
			Dir:  ".",
			Lazy: true,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "slotview",
			Password: "slotview",
			DBName:   "slotview",
			SSLMode:  "disable",
		},
	}
}

// LoadViewer loads viewer config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadViewer(path string) (Viewer, error) {
	cfg := DefaultViewer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Layout.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
