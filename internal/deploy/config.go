// Package deploy builds and runs Cloud Run deployments from per-environment
// JSON configuration files.
package deploy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Scalar is a configuration value written as a JSON string, number or bool.
// It keeps the literal text, so 0.5 stays "0.5" and true stays "true".
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) > 0 && b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Scalar(str)
	case bytes.Equal(b, []byte("null")):
		*s = ""
	case bytes.Equal(b, []byte("true")), bytes.Equal(b, []byte("false")):
		*s = Scalar(b)
	default:
		if _, err := strconv.ParseFloat(string(b), 64); err != nil {
			return fmt.Errorf("expected string, number or bool, got %s", b)
		}
		*s = Scalar(b)
	}
	return nil
}

// CloudRunConfig describes one Cloud Run service.
type CloudRunConfig struct {
	ServiceName          Scalar `json:"serviceName"`
	Source               Scalar `json:"source"`
	TargetProject        Scalar `json:"targetProject"`
	Region               Scalar `json:"region"`
	Memory               Scalar `json:"memory"`
	CPU                  Scalar `json:"cpu"`
	Concurrency          Scalar `json:"concurrency"`
	Timeout              Scalar `json:"timeout"`
	MinInstances         Scalar `json:"minInstances"`
	MaxInstances         Scalar `json:"maxInstances"`
	ServiceAccount       Scalar `json:"serviceAccount"`
	VPCConnector         Scalar `json:"vpcConnector"`
	AllowUnauthenticated bool   `json:"allowUnauthenticated"`
}

// Config is the content of an environment file.
type Config struct {
	CloudRun CloudRunConfig    `json:"cloudRunConfig"`
	EnvVars  map[string]Scalar `json:"envVars"`
}

// LoadConfig reads and validates the configuration at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w at: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.CloudRun.ServiceName == "" {
		return nil, fmt.Errorf("%s: cloudRunConfig.serviceName is required", path)
	}
	return &cfg, nil
}

// SortedEnv returns the env vars as KEY=VALUE pairs ordered by key.
func (c *Config) SortedEnv() []string {
	keys := make([]string, 0, len(c.EnvVars))
	for k := range c.EnvVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+string(c.EnvVars[k]))
	}
	return out
}

// EnvMap returns the env vars as plain strings.
func (c *Config) EnvMap() map[string]string {
	out := make(map[string]string, len(c.EnvVars))
	for k, v := range c.EnvVars {
		out[k] = string(v)
	}
	return out
}
