package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RobertoRoos/custom-containers/errors"
)

// Kind identifies a container type in a manifest.
type Kind string

const (
	// KindFifo declares a circular FIFO queue
	KindFifo Kind = "fifo"
	// KindBounded declares a bounded buffer
	KindBounded Kind = "bounded"
)

// Container describes one container instance in a manifest.
type Container struct {
	Name     string `yaml:"name" json:"name"`
	Kind     Kind   `yaml:"kind" json:"kind"`
	Capacity int    `yaml:"capacity" json:"capacity"`
	Metrics  bool   `yaml:"metrics,omitempty" json:"metrics,omitempty"`
}

// Config is a parsed container manifest.
type Config struct {
	Containers []Container `yaml:"containers" json:"containers"`
}

// Load reads, schema-validates, and parses a YAML manifest file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapInvalid(errors.ErrConfigNotFound, "Config", "Load", path)
		}
		return nil, errors.WrapFatal(err, "Config", "Load", "read manifest file")
	}

	return Parse(data)
}

// Parse schema-validates and decodes a YAML manifest.
// Schema validation runs first so structural mistakes surface with field
// paths instead of decoder errors.
func Parse(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Parse", "empty manifest")
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Parse", "decode YAML manifest")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate applies the semantic rules the schema cannot express:
// container names must be unique and every definition must be buildable.
func (c *Config) Validate() error {
	if len(c.Containers) == 0 {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"manifest declares no containers")
	}

	seen := make(map[string]bool, len(c.Containers))
	for i, def := range c.Containers {
		if def.Name == "" {
			return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
				fmt.Sprintf("container %d has no name", i))
		}
		if seen[def.Name] {
			return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
				fmt.Sprintf("duplicate container name %q", def.Name))
		}
		seen[def.Name] = true

		switch def.Kind {
		case KindFifo, KindBounded:
		default:
			return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
				fmt.Sprintf("container %q has unknown kind %q", def.Name, def.Kind))
		}

		if def.Capacity < 1 {
			return errors.WrapInvalid(errors.ErrInvalidCapacity, "Config", "Validate",
				fmt.Sprintf("container %q has capacity %d", def.Name, def.Capacity))
		}
	}

	return nil
}

// Lookup returns the definition with the given name.
func (c *Config) Lookup(name string) (Container, bool) {
	for _, def := range c.Containers {
		if def.Name == name {
			return def, true
		}
	}
	return Container{}, false
}
