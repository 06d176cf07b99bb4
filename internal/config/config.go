package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/soochol/awsblogs/internal/logger"
)

// Transport names accepted by the serve command.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// DefaultUserAgent is a desktop browser agent; the blog site serves reduced
// markup to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// Config holds the top-level application configuration.
type Config struct {
	Transport string       `yaml:"transport"` // stdio or http
	Server    ServerConfig `yaml:"server"`
	Log       LogConfig    `yaml:"log"`
	Fetch     FetchConfig  `yaml:"fetch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // DEBUG, INFO, WARNING, ERROR, CRITICAL
	Format string `yaml:"format"` // json or console
}

// FetchConfig holds settings for upstream feed and page requests.
type FetchConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	Concurrency  int           `yaml:"concurrency"` // parallel feed fetches for all-category calls
	SitePrefix   string        `yaml:"site_prefix"` // read_blog_post only accepts URLs under this prefix
}

// defaults returns a Config populated with sensible default values.
func defaults() *Config {
	return &Config{
		Transport: TransportStdio,
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "WARNING",
			Format: "json",
		},
		Fetch: FetchConfig{
			Timeout:      30 * time.Second,
			UserAgent:    DefaultUserAgent,
			MaxBodyBytes: 5 << 20,
			Concurrency:  4,
			SitePrefix:   "https://aws.amazon.com/blogs/",
		},
	}
}

// Default returns the built-in configuration with environment overrides
// applied.
func Default() (*Config, error) {
	cfg := defaults()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Load reads a YAML configuration file at path, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads ".env" (if present) into the environment, then tries
// "config.yaml" from the current directory. If the file does not exist, it
// returns defaults with environment overrides.
// Any other error (e.g. permission denied, malformed YAML) is returned.
func LoadDefault() (*Config, error) {
	return LoadFile("")
}

// LoadFile is LoadDefault with an explicit config path; an empty path means
// "config.yaml", which may be absent. An explicit path must exist.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if path != "" {
		return Load(path)
	}
	cfg, err := Load("config.yaml")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default()
		}
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
// FASTMCP_LOG_LEVEL is honored for compatibility with existing MCP client
// configurations and wins over AWS_BLOGS_LOG_LEVEL.
func (c *Config) applyEnv(getenv func(string) string) error {
	if v := firstNonEmpty(getenv("FASTMCP_LOG_LEVEL"), getenv("AWS_BLOGS_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := getenv("AWS_BLOGS_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := getenv("AWS_BLOGS_TRANSPORT"); v != "" {
		c.Transport = v
	}
	if v := getenv("AWS_BLOGS_HTTP_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := getenv("AWS_BLOGS_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AWS_BLOGS_HTTP_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := getenv("AWS_BLOGS_USER_AGENT"); v != "" {
		c.Fetch.UserAgent = v
	}
	if v := getenv("AWS_BLOGS_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("AWS_BLOGS_FETCH_TIMEOUT: %w", err)
		}
		c.Fetch.Timeout = d
	}
	if v := getenv("AWS_BLOGS_FETCH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AWS_BLOGS_FETCH_CONCURRENCY: %w", err)
		}
		c.Fetch.Concurrency = n
	}
	return nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport %q (valid: stdio, http)", c.Transport)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("unknown log format %q (valid: json, console)", c.Log.Format)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.Fetch.Timeout)
	}
	if c.Fetch.Concurrency <= 0 {
		return fmt.Errorf("fetch concurrency must be positive, got %d", c.Fetch.Concurrency)
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return fmt.Errorf("fetch max_body_bytes must be positive, got %d", c.Fetch.MaxBodyBytes)
	}
	if !strings.HasPrefix(c.Fetch.SitePrefix, "http://") && !strings.HasPrefix(c.Fetch.SitePrefix, "https://") {
		return fmt.Errorf("fetch site_prefix %q must be an http(s) URL", c.Fetch.SitePrefix)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
