package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const DefaultThemeName = "default"

// Theme holds lipgloss colour values (ANSI numbers or hex strings).
type Theme struct {
	Accent  string `json:"accent"`
	Display string `json:"display"`
	Muted   string `json:"muted"`
}

type Config struct {
	Themes      map[string]Theme `json:"themes"`
	ActiveTheme string           `json:"active_theme"`
	ShowKeypad  bool             `json:"show_keypad"`
}

// DefaultTheme is used when the active theme is missing from the file.
var DefaultTheme = Theme{
	Accent:  "62",
	Display: "214",
	Muted:   "241",
}

func defaultConfig() *Config {
	return &Config{
		Themes: map[string]Theme{
			DefaultThemeName: DefaultTheme,
			"mono": {
				Accent:  "250",
				Display: "255",
				Muted:   "244",
			},
			"ocean": {
				Accent:  "39",
				Display: "51",
				Muted:   "67",
			},
		},
		ActiveTheme: DefaultThemeName,
		ShowKeypad:  true,
	}
}

func LoadConfig() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}

// Theme returns the active theme, or DefaultTheme if it is not defined.
func (c *Config) Theme() Theme {
	if t, ok := c.Themes[c.ActiveTheme]; ok {
		return t
	}
	return DefaultTheme
}

// ThemeNames returns the defined theme names in sorted order.
func (c *Config) ThemeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) SetActiveTheme(name string) error {
	if _, ok := c.Themes[name]; !ok {
		return fmt.Errorf("theme '%s' does not exist", name)
	}
	c.ActiveTheme = name
	return nil
}

// Path returns the config file location. RORICALC_HOME overrides the
// user's home directory.
func Path() (string, error) {
	var configDir string

	if home := os.Getenv("RORICALC_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".roricalc", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	config := defaultConfig()
	config.Themes = nil
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if config.Themes == nil {
		config.Themes = map[string]Theme{DefaultThemeName: DefaultTheme}
	}
	return config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}
