// Package config provides YAML configuration loading and validation for the
// application. Secrets such as the database URL and the LLM API key come
// from the environment, not the file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ethanmills/resumatch/internal/queue"
	"github.com/ethanmills/resumatch/internal/scheduler"
)

// Queue driver names accepted in the config file
const (
	QueueDriverMemory = "memory"
	QueueDriverRabbit = "rabbit"
)

// Environment variable names for secrets
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvOracleKey   = "GEMINI_API_KEY"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Queue     QueueConfig     `yaml:"queue"`
	Oracle    OracleConfig    `yaml:"oracle"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "30m"
type Duration time.Duration

// UnmarshalYAML parses either a duration string or a nanosecond integer
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", text, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := value.Decode(&nanos); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	*d = Duration(nanos)
	return nil
}

// SchedulerConfig holds delivery timing configuration
type SchedulerConfig struct {
	MinDelay      Duration `yaml:"min_delay"`
	MaxDelay      Duration `yaml:"max_delay"`
	SweepInterval Duration `yaml:"sweep_interval"`
}

// Scheduler converts the parsed values into the scheduler's own config type
func (c SchedulerConfig) Scheduler() scheduler.Config {
	return scheduler.Config{
		MinDelay:      time.Duration(c.MinDelay),
		MaxDelay:      time.Duration(c.MaxDelay),
		SweepInterval: time.Duration(c.SweepInterval),
	}
}

// DatabaseConfig holds PostgreSQL connection configuration. URL is read
// from the environment when empty.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// QueueConfig selects and configures the delivery queue backend
type QueueConfig struct {
	Driver string             `yaml:"driver"`
	Rabbit queue.RabbitConfig `yaml:"rabbit"`
}

// OracleConfig configures the optional LLM used for optimization. APIKey is
// read from the environment when empty; an empty key disables the oracle
// and optimization runs on the deterministic fallback.
type OracleConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// CatalogConfig points at the opportunity catalog source
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses the configuration file, then fills secrets from the
// environment. A missing path yields the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if config.Database.URL == "" {
		config.Database.URL = os.Getenv(EnvDatabaseURL)
	}
	if config.Oracle.APIKey == "" {
		config.Oracle.APIKey = os.Getenv(EnvOracleKey)
	}

	return config, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Queue: QueueConfig{
			Driver: QueueDriverMemory,
			Rabbit: queue.RabbitConfig{
				WorkQueue:     "match.delivery",
				DelayQueue:    "match.delivery.delayed",
				PrefetchCount: 8,
			},
		},
		Oracle: OracleConfig{
			Model: "gemini-2.5-flash",
		},
		Scheduler: SchedulerConfig{
			MinDelay:      Duration(scheduler.DefaultMinDelay),
			MaxDelay:      Duration(scheduler.DefaultMaxDelay),
			SweepInterval: Duration(scheduler.DefaultSweepInterval),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Queue.Driver {
	case QueueDriverMemory:
	case QueueDriverRabbit:
		if c.Queue.Rabbit.URL == "" {
			return fmt.Errorf("queue driver %q requires rabbit.url", c.Queue.Driver)
		}
		if c.Queue.Rabbit.WorkQueue == "" || c.Queue.Rabbit.DelayQueue == "" {
			return fmt.Errorf("queue driver %q requires rabbit work and delay queue names", c.Queue.Driver)
		}
	default:
		return fmt.Errorf("unknown queue driver: %q", c.Queue.Driver)
	}

	sched := c.Scheduler.Scheduler()
	if sched.MinDelay < 0 || sched.MaxDelay < 0 {
		return fmt.Errorf("scheduler delays must be non-negative")
	}
	if sched.MaxDelay > 0 && sched.MaxDelay <= sched.MinDelay {
		return fmt.Errorf("scheduler max_delay must be greater than min_delay")
	}
	if sched.SweepInterval != 0 && sched.SweepInterval < time.Minute {
		return fmt.Errorf("scheduler sweep_interval must be at least one minute")
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level: %q", c.Logging.Level)
	}

	return nil
}
