package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const FileName = "lectrack.yaml"

var DefaultGroups = []string{"Group 1", "Group 2"}

type Config struct {
	Dir        string       `yaml:"-"`
	DBPath     string       `yaml:"db_path" env:"LECTRACK_DB_PATH"`
	ExportPath string       `yaml:"export_path" env:"LECTRACK_EXPORT_PATH"`
	Groups     []string     `yaml:"groups" env:"LECTRACK_GROUPS" envSeparator:","`
	Log        LogConfig    `yaml:"log"`
	Report     ReportConfig `yaml:"report"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LECTRACK_LOG_LEVEL"`
	Path  string `yaml:"path" env:"LECTRACK_LOG_PATH"`
}

type ReportConfig struct {
	// KeepDraft preserves an in-progress draft across a report visit.
	KeepDraft bool `yaml:"keep_draft" env:"LECTRACK_REPORT_KEEP_DRAFT"`
}

// New builds the configuration for a working directory. Values are layered:
// defaults, then lectrack.yaml in dir, then LECTRACK_* environment variables.
func New(dir string) (Config, error) {
	if strings.TrimSpace(dir) == "" {
		return Config{}, fmt.Errorf("working directory is required")
	}
	cfg := Config{
		Dir:        dir,
		DBPath:     "lectures.db",
		ExportPath: "lecture_records.csv",
		Groups:     append([]string(nil), DefaultGroups...),
		Log:        LogConfig{Level: "info", Path: "lectrack.log"},
	}
	if err := cfg.loadFile(filepath.Join(dir, FileName)); err != nil {
		return Config{}, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg.normalize()
}

func (c *Config) loadFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(payload, c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c Config) normalize() (Config, error) {
	groups := make([]string, 0, len(c.Groups))
	for _, g := range c.Groups {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 {
		return Config{}, fmt.Errorf("at least one group is required")
	}
	c.Groups = groups
	c.DBPath = c.resolve(c.DBPath)
	c.ExportPath = c.resolve(c.ExportPath)
	c.Log.Path = c.resolve(c.Log.Path)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return c, nil
}

func (c Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}
