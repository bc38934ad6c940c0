package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for armago
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Naming  NamingConfig  `yaml:"naming"`
	Convert ConvertConfig `yaml:"convert"`
	Dev     DevConfig     `yaml:"dev"`
}

// OutputConfig controls literal rendering
type OutputConfig struct {
	Pretty bool   `yaml:"pretty"`
	Indent string `yaml:"indent"`
}

// NamingConfig controls how JSON object keys and struct field names are
// rendered in [key, value] pairs
type NamingConfig struct {
	SnakeCaseKeys bool              `yaml:"snake_case_keys"`
	KeyMappings   map[string]string `yaml:"key_mappings"`
}

// ConvertConfig controls conversion behavior
type ConvertConfig struct {
	SortKeys bool `yaml:"sort_keys"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Pretty: false,
			Indent: "    ",
		},
		Naming: NamingConfig{
			SnakeCaseKeys: true,
			KeyMappings:   make(map[string]string),
		},
		Convert: ConvertConfig{
			SortKeys: true,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".armago.yml", ".armago.yaml", "armago.yml", "armago.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// GetKeyName returns the output key for a JSON key or Go field name,
// applying explicit mappings first and snake_case conversion second
func (c *Config) GetKeyName(key string) string {
	if mapped, exists := c.Naming.KeyMappings[key]; exists {
		return mapped
	}

	if c.Naming.SnakeCaseKeys {
		return strcase.ToSnake(key)
	}

	return key
}

// LoadConfigWithCLI loads config with CLI argument precedence. String
// flags override only when they differ from the built-in default, so a
// config file value survives an unset flag; boolean flags override when
// set to a non-default value.
func LoadConfigWithCLI(configPath, cliIndent string, cliPretty, cliNoSortKeys bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliIndent != "" && cliIndent != cfg.Output.Indent {
		cfg.Output.Indent = cliIndent
	}
	if cliPretty {
		cfg.Output.Pretty = true
	}
	if cliNoSortKeys {
		cfg.Convert.SortKeys = false
	}

	return cfg, nil
}
