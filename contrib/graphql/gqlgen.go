package graphql

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config is the subset of gqlgen.yml that enum bindings touch. Unknown
// keys in an existing file are not preserved, so BindModels is meant for
// configs this package manages.
type Config struct {
	// SchemaFilename is the path(s) to the GraphQL schema file(s).
	SchemaFilename StringList `yaml:"schema,omitempty"`

	// Autobind is a list of packages to autobind types from.
	Autobind []string `yaml:"autobind,omitempty"`

	// Models maps GraphQL type names to Go model bindings.
	Models map[string]TypeMapEntry `yaml:"models,omitempty"`
}

// TypeMapEntry is the binding of a single GraphQL type.
type TypeMapEntry struct {
	// Model is the Go model(s) bound to this GraphQL type.
	Model StringList `yaml:"model,omitempty"`
}

// StringList is a YAML value that is either a string or a list of
// strings, matching gqlgen's config format.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("scribe: expected string or list, got yaml kind %v", node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (s StringList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// LoadConfig loads a gqlgen.yml file. A missing file yields an empty
// config, so bindings can be written into a fresh project.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Models: make(map[string]TypeMapEntry)}, nil
		}
		return nil, fmt.Errorf("scribe: read gqlgen config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scribe: parse gqlgen config: %w", err)
	}
	if cfg.Models == nil {
		cfg.Models = make(map[string]TypeMapEntry)
	}
	return &cfg, nil
}

// SaveConfig writes a gqlgen.yml file, creating the directory if needed.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("scribe: marshal gqlgen config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("scribe: create gqlgen config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// AddSchemaPath adds a schema path, once.
func (c *Config) AddSchemaPath(path string) {
	if !slices.Contains(c.SchemaFilename, path) {
		c.SchemaFilename = append(c.SchemaFilename, path)
	}
}

// SetModel binds a GraphQL type to a Go model path, once.
func (c *Config) SetModel(typeName, modelPath string) {
	if c.Models == nil {
		c.Models = make(map[string]TypeMapEntry)
	}
	entry := c.Models[typeName]
	if !slices.Contains(entry.Model, modelPath) {
		entry.Model = append(entry.Model, modelPath)
	}
	c.Models[typeName] = entry
}

// BindModels records Go bindings for the named enums in a gqlgen.yml
// file. Each enum binds to pkg.<Name>, which is the type the generator
// emits the MarshalGQL/UnmarshalGQL method set on.
func BindModels(cfgPath, pkg string, enums ...string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	for _, name := range enums {
		cfg.SetModel(name, pkg+"."+name)
	}
	return SaveConfig(cfgPath, cfg)
}
