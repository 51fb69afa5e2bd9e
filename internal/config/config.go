package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	UserApplicationsDir   string `json:"user_applications_dir"`   // Writable per-user entries
	SystemApplicationsDir string `json:"system_applications_dir"` // Read-only vendor entries
	BackupPath            string `json:"backup_path"`             // Git snapshot repository
	TemplatesPath         string `json:"templates_path"`          // Custom templates file (optional)
}

// configFileName is the name of the config file
const configFileName = "menuentry.json"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		UserApplicationsDir:   filepath.Join(dataHome(), "applications"),
		SystemApplicationsDir: "/usr/share/applications",
		BackupPath:            filepath.Join(stateHome(), "menuentry", "backups"),
		TemplatesPath:         "", // Empty = built-in templates only
	}
}

// dataHome returns the XDG data directory
func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share")
}

// stateHome returns the XDG state directory
func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "state")
}

// ConfigDir returns the directory containing menuentry config files
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "menuentry")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// Load loads the configuration from file. A missing file yields the
// defaults; fields left empty in the file are filled from defaults.
func Load() (*Config, error) {
	return loadFrom(ConfigPath())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	def := Default()
	if cfg.UserApplicationsDir == "" {
		cfg.UserApplicationsDir = def.UserApplicationsDir
	}
	if cfg.SystemApplicationsDir == "" {
		cfg.SystemApplicationsDir = def.SystemApplicationsDir
	}
	if cfg.BackupPath == "" {
		cfg.BackupPath = def.BackupPath
	}

	return &cfg, nil
}

// Save saves the configuration to file
func (c *Config) Save() error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
