package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete importer configuration, loaded from environment
// variables (prefix MINELOG) merged over an optional YAML file. CLI flags
// override both at the call site.
type Config struct {
	Import  ImportConfig  `yaml:"import" envconfig:"IMPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// ImportConfig controls a single import run.
type ImportConfig struct {
	InputFile  string `yaml:"input_file" envconfig:"INPUT_FILE"`
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE"`
	ReportFile string `yaml:"report_file" envconfig:"REPORT_FILE"`
	Sheet      string `yaml:"sheet" envconfig:"SHEET"`
	Verbose    bool   `yaml:"verbose" envconfig:"VERBOSE"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load reads configuration from an optional YAML file and the environment,
// environment winning, then validates the result.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process("MINELOG", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills fields neither the YAML file nor the environment set.
// Defaults live here instead of envconfig tags so an env default cannot
// clobber a value the file already provided.
func applyDefaults(cfg *Config) {
	if cfg.Import.InputFile == "" {
		cfg.Import.InputFile = "PARA IMPORTAR.xlsx"
	}
	if cfg.Import.OutputFile == "" {
		cfg.Import.OutputFile = "import_entries.json"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "console"
	}
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = "logs/importer.log"
	}
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}
	if c.Import.InputFile == "" {
		return fmt.Errorf("input file must not be empty")
	}
	if c.Import.OutputFile == "" {
		return fmt.Errorf("output file must not be empty")
	}
	return nil
}
