package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by LoadFromEnv when no config file exists
var ErrNotFound = errors.New("no config file found")

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"` // optional JSON copy of all log records
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxDepth       int `toml:"max_depth" yaml:"max_depth"`
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
}

// REPLConfig holds read loop settings
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	Mode        string `toml:"mode" yaml:"mode"` // tokens, ast or tree
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	Color       string `toml:"color" yaml:"color"` // auto, always or never
}

// Format is the encoding of a config file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes configuration content, applies defaults and validates it
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the MONKEY_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("MONKEY_CONFIG")
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("%w, set MONKEY_CONFIG or create monkey.toml", ErrNotFound)
	}

	return Load(path)
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	return []string{
		"./monkey.toml",
		"./monkey.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/monkey/config.toml"),
	}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Parser
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 512
	}
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 1 << 20
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.REPL.Mode == "" {
		c.REPL.Mode = "tokens"
	}
	if c.REPL.HistoryFile == "" {
		c.REPL.HistoryFile = "$HOME/.monkey_history"
	}
	if c.REPL.Color == "" {
		c.REPL.Color = "auto"
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
}

// Validate checks enumerated settings and limits
func (c *Config) Validate() error {
	var errs []error

	switch c.General.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("general.log_format: unknown format %q (text, json)", c.General.LogFormat))
	}
	switch c.REPL.Mode {
	case "tokens", "ast", "tree":
	default:
		errs = append(errs, fmt.Errorf("repl.mode: unknown mode %q (tokens, ast, tree)", c.REPL.Mode))
	}
	switch c.REPL.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("repl.color: unknown value %q (auto, always, never)", c.REPL.Color))
	}
	if c.Parser.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("parser.max_depth: must not be negative, got %d", c.Parser.MaxDepth))
	}
	if c.Parser.MaxInputLength < 0 {
		errs = append(errs, fmt.Errorf("parser.max_input_length: must not be negative, got %d", c.Parser.MaxInputLength))
	}

	return errors.Join(errs...)
}
