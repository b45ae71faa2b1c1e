package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/subtlepseudonym/sunrise"
)

const (
	DefaultPath       = "secrets/sunrise.cfg"
	DefaultListenAddr = ":9000"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Job defines when to run and which command to execute.
//
// Schedule is either a solar schedule such as "@sunset -30m" or a
// standard five field cron expression. Timeout is a duration string
// and defaults to one minute.
type Job struct {
	Name     string   `json:"name"`
	Schedule string   `json:"schedule"`
	Command  []string `json:"command"`
	Timeout  string   `json:"timeout,omitempty"`
}

type Config struct {
	Location   sunrise.Location `json:"location"`
	ListenAddr string           `json:"listen_addr,omitempty"`
	LogLevel   string           `json:"log_level,omitempty"`
	LogFormat  string           `json:"log_format,omitempty"`
	Jobs       []Job            `json:"jobs"`

	// MQTT, if set, receives the result of every job run
	MQTT *sunrise.MQTTConfig `json:"mqtt,omitempty"`
}

// Path returns the config file location from SUNRISE_CONFIG, or the
// default path if it is unset
func Path() string {
	return envOrDefault("SUNRISE_CONFIG", DefaultPath)
}

// Open reads a config file, then applies environment overrides and
// defaults. The result is not validated.
func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	var config Config
	err = json.NewDecoder(f).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	config.ListenAddr = envOrDefault("SUNRISE_LISTEN_ADDR", orDefault(config.ListenAddr, DefaultListenAddr))
	config.LogLevel = envOrDefault("SUNRISE_LOG_LEVEL", orDefault(config.LogLevel, DefaultLogLevel))
	config.LogFormat = envOrDefault("SUNRISE_LOG_FORMAT", orDefault(config.LogFormat, DefaultLogFormat))

	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := c.Location.Coordinates(); err != nil {
		return err
	}
	if _, err := sunrise.NewLogger(os.Stderr, c.LogLevel, c.LogFormat); err != nil {
		return err
	}

	if c.MQTT != nil && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt broker not set")
	}

	parser := sunrise.ScheduleParser{Location: c.Location}
	names := make(map[string]bool, len(c.Jobs))
	for _, job := range c.Jobs {
		if job.Name == "" {
			return fmt.Errorf("job with schedule %q has no name", job.Schedule)
		}
		if names[job.Name] {
			return fmt.Errorf("duplicate job name %q", job.Name)
		}
		names[job.Name] = true

		if len(job.Command) == 0 {
			return fmt.Errorf("job %q: %w", job.Name, sunrise.ErrEmptyCommand)
		}
		if _, err := parser.Parse(job.Schedule); err != nil {
			return fmt.Errorf("job %q: parse schedule: %w", job.Name, err)
		}
		if _, err := job.ParseTimeout(); err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
	}

	return nil
}

// ParseTimeout returns the job's timeout, or the default if none
// is set
func (j Job) ParseTimeout() (time.Duration, error) {
	if j.Timeout == "" {
		return sunrise.DefaultJobTimeout, nil
	}
	timeout, err := time.ParseDuration(j.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse timeout: %w", err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("timeout must be positive: %s", j.Timeout)
	}
	return timeout, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
