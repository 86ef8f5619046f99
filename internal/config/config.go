// Package config loads the optional dom.json project configuration used by
// the dom CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// FileName is the name of the configuration file.
	FileName = "dom.json"

	// DefaultAddress is the default live server listen address.
	DefaultAddress = ":3000"

	// DefaultOutput is the default static export directory.
	DefaultOutput = "dist"
)

// Config is the complete dom.json schema.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Serve configures the live development server.
	Serve ServeConfig `json:"serve,omitempty"`

	// Export configures static export.
	Export ExportConfig `json:"export,omitempty"`
}

// ServeConfig configures the live server.
type ServeConfig struct {
	// Address is the listen address.
	Address string `json:"address,omitempty"`
}

// ExportConfig configures static export.
type ExportConfig struct {
	// Output is the export directory.
	Output string `json:"output,omitempty"`

	// Bucket is an optional S3 bucket to upload to.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the S3 key prefix.
	Prefix string `json:"prefix,omitempty"`

	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty"`
}

// Default returns the configuration used when no dom.json exists.
func Default() *Config {
	return &Config{
		Serve:  ServeConfig{Address: DefaultAddress},
		Export: ExportConfig{Output: DefaultOutput},
	}
}

// Load reads path and fills unset fields with defaults. A missing file is
// not an error: it yields Default(). Malformed JSON is.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.fillDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults fills unset fields, then applies environment overrides:
// DOM_ADDR wins over the configured serve address.
func (c *Config) fillDefaults() {
	if c.Serve.Address == "" {
		c.Serve.Address = DefaultAddress
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
	if addr := os.Getenv("DOM_ADDR"); addr != "" {
		c.Serve.Address = addr
	}
}
