package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of a Root:
//
//	hive: HKCU
//	prefix: Software\MyApp
//	view32: false
//	read_only: false
//	ignore_elevation_check: false
type Config struct {
	Hive                 string `yaml:"hive"`
	Prefix               string `yaml:"prefix,omitempty"`
	View32               bool   `yaml:"view32,omitempty"`
	ReadOnly             bool   `yaml:"read_only,omitempty"`
	IgnoreElevationCheck bool   `yaml:"ignore_elevation_check,omitempty"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("registry: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("registry: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML config. Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Options converts the config to Root options using the host registry.
func (c Config) Options() *Options {
	return &Options{
		Prefix:               c.Prefix,
		View32:               c.View32,
		ReadOnly:             c.ReadOnly,
		IgnoreElevationCheck: c.IgnoreElevationCheck,
	}
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// NewRootFromConfig builds a Root from a config.
func NewRootFromConfig(cfg Config) (*Root, error) {
	if cfg.Hive == "" {
		return nil, fmt.Errorf("%w: config has no hive", ErrUnknownHive)
	}
	return OpenRoot(cfg.Hive, cfg.Options())
}
