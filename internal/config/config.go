// Package config handles loading tasklist.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/tasklist/internal/paths"
	"github.com/amonks/tasklist/todo"
)

// ProjectFile is the name of the per-directory config file.
const ProjectFile = "tasklist.toml"

// Config represents the tasklist configuration.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Log      Log      `toml:"log"`
}

// Defaults contains the values used by `tl add` when flags are omitted.
type Defaults struct {
	// Priority is the default priority for new todos.
	Priority string `toml:"priority"`
	// Status is the default status for new todos.
	Status string `toml:"status"`
}

// Log contains logging configuration.
type Log struct {
	// Level is a zerolog level name.
	Level string `toml:"level"`
	// File receives JSON log lines. Empty means stderr.
	File string `toml:"file"`
}

// Load loads configuration from projectDir and the global config file.
// Returns an empty config if no config files exist.
func Load(projectDir string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, ProjectFile))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, _, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Defaults.Priority = mergeString(projectMeta.IsDefined("defaults", "priority"), projectCfg.Defaults.Priority, globalCfg.Defaults.Priority)
	merged.Defaults.Status = mergeString(projectMeta.IsDefined("defaults", "status"), projectCfg.Defaults.Status, globalCfg.Defaults.Status)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)
	merged.Log.File = mergeString(projectMeta.IsDefined("log", "file"), projectCfg.Log.File, globalCfg.Log.File)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

// DefaultPriority returns the configured default priority, or MEDIUM.
func (c *Config) DefaultPriority() (todo.Priority, error) {
	if c == nil || c.Defaults.Priority == "" {
		return todo.PriorityMedium, nil
	}
	priority, err := todo.ParsePriority(c.Defaults.Priority)
	if err != nil {
		return "", fmt.Errorf("config defaults.priority: %w", err)
	}
	return priority, nil
}

// DefaultStatus returns the configured default status, or pending.
func (c *Config) DefaultStatus() (todo.Status, error) {
	if c == nil || c.Defaults.Status == "" {
		return todo.StatusPending, nil
	}
	status, err := todo.ParseStatus(c.Defaults.Status)
	if err != nil {
		return "", fmt.Errorf("config defaults.status: %w", err)
	}
	return status, nil
}
