// Package config provides configuration for the forecast client.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the client configuration.
type Config struct {
	// Remote service
	ServiceURL     string        `yaml:"service_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Local console server
	ListenPort int `yaml:"listen_port"`

	// Credential store
	CredentialsPath string `yaml:"credentials_path"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		ServiceURL:      "http://localhost:8000",
		RequestTimeout:  30 * time.Second,
		ListenPort:      8090,
		CredentialsPath: "nycast.db",
	}
}

// LoadFile reads configuration from a YAML file, starting from the
// defaults. Environment variables override the file.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// Load builds configuration from defaults plus environment variables.
func Load() *Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	c.ServiceURL = getEnv("NYCAST_SERVICE_URL", c.ServiceURL)
	c.CredentialsPath = getEnv("NYCAST_CREDENTIALS_PATH", c.CredentialsPath)
	c.ListenPort = getEnvInt("NYCAST_LISTEN_PORT", c.ListenPort)
	if ms := getEnvInt("NYCAST_REQUEST_TIMEOUT_MS", 0); ms > 0 {
		c.RequestTimeout = time.Duration(ms) * time.Millisecond
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
