package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"memo/internal/notes"
)

// Config holds the unified application configuration
type Config struct {
	Dir        string
	Extension  string
	Editor     string
	TimeFormat string
	UpKeys     []string
	DownKeys   []string
}

// Settings represents the config file structure
type Settings struct {
	Dir        string   `yaml:"dir,omitempty"`
	Extension  string   `yaml:"extension,omitempty"`
	Editor     string   `yaml:"editor,omitempty"`
	TimeFormat string   `yaml:"time_format,omitempty"`
	UpKeys     []string `yaml:"up_keys,omitempty"`
	DownKeys   []string `yaml:"down_keys,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Dir string
}

const (
	envDir    = "MEMO_PATH"
	envEditor = "MEMO_EDITOR"
	envUp     = "MEMO_UP_KEYS"
	envDown   = "MEMO_DOWN_KEYS"
)

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		Extension:  notes.DefaultExtension,
		TimeFormat: notes.DefaultTitleLayout,
		UpKeys:     []string{"k"},
		DownKeys:   []string{"j"},
	}

	// Try loading config file first for base values
	configPath, err := GetConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.Dir != "" {
				cfg.Dir = expandPath(fileConfig.Dir)
			}
			if fileConfig.Extension != "" {
				cfg.Extension = strings.TrimPrefix(fileConfig.Extension, ".")
			}
			if fileConfig.Editor != "" {
				cfg.Editor = fileConfig.Editor
			}
			if fileConfig.TimeFormat != "" {
				cfg.TimeFormat = fileConfig.TimeFormat
			}
			if len(fileConfig.UpKeys) > 0 {
				cfg.UpKeys = fileConfig.UpKeys
			}
			if len(fileConfig.DownKeys) > 0 {
				cfg.DownKeys = fileConfig.DownKeys
			}
		}
	}

	// Priority 2: Environment variables override config file
	if envPath := os.Getenv(envDir); envPath != "" {
		cfg.Dir = expandPath(envPath)
	}
	if envEd := os.Getenv(envEditor); envEd != "" {
		cfg.Editor = envEd
	}
	if up := ParseCommaSeparated(os.Getenv(envUp)); len(up) > 0 {
		cfg.UpKeys = up
	}
	if down := ParseCommaSeparated(os.Getenv(envDown)); len(down) > 0 {
		cfg.DownKeys = down
	}

	// Priority 1: CLI flags override everything
	if flags.Dir != "" {
		cfg.Dir = expandPath(flags.Dir)
	}

	// Default directory if nothing configured
	if cfg.Dir == "" {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.Dir = defaultDir
	}

	return cfg, nil
}

// GetDefaultDir returns the default notes directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".memos"), nil
}

// GetConfigDir returns the directory holding the config file and debug log
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "memo"), nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	settings := Settings{
		Dir:        "~/.memos",
		Extension:  notes.DefaultExtension,
		TimeFormat: notes.DefaultTitleLayout,
		UpKeys:     []string{"k"},
		DownKeys:   []string{"j"},
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
