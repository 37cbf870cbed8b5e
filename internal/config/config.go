package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// BaseURLEnv is read on every request so the endpoint can change without a restart.
const BaseURLEnv = "PUBLIC_API_URL"

type Config struct {
	API         APIConfig         `yaml:"api"`
	Upload      UploadConfig      `yaml:"upload"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Clipboard   ClipboardConfig   `yaml:"clipboard"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"PUBLIC_API_URL"`
	Timeout time.Duration `yaml:"timeout" env:"SUMMARIFY_API_TIMEOUT"`
}

type UploadConfig struct {
	Accept []string `yaml:"accept" env:"SUMMARIFY_UPLOAD_ACCEPT" envSeparator:","`
}

type PathsConfig struct {
	Inbox    string `yaml:"inbox" env:"SUMMARIFY_INBOX"`
	Output   string `yaml:"output" env:"SUMMARIFY_OUTPUT"`
	Archived string `yaml:"archived"`
	Rejected string `yaml:"rejected"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"SUMMARIFY_LOG_LEVEL"`
	Format string `yaml:"format" env:"SUMMARIFY_LOG_FORMAT"`
	File   string `yaml:"file" env:"SUMMARIFY_LOG_FILE"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ClipboardConfig struct {
	// Command overrides the platform copy command, e.g. ["xsel", "--clipboard", "--input"].
	Command []string `yaml:"command"`
}

// ResolveBaseURL prefers the environment value at call time and falls back to the file value.
func (c APIConfig) ResolveBaseURL() string {
	if v := strings.TrimSpace(os.Getenv(BaseURLEnv)); v != "" {
		return v
	}
	return c.BaseURL
}

func (c *Config) Validate() error {
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "":
		c.Logging.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	if c.API.Timeout == 0 {
		c.API.Timeout = 45 * time.Second
	}
	if len(c.Upload.Accept) == 0 {
		c.Upload.Accept = []string{".wav", ".mp3", ".mp4"}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Rejected == "" {
		c.Paths.Rejected = "data/rejected"
	}

	return nil
}
