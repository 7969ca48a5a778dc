package gen

import (
	"errors"
	"runtime"
	"strings"
)

// Header is the default header comment of generated files.
const Header = "// Code generated by scribegen. DO NOT EDIT."

// DefaultSuffix is appended to the snake-cased enum name to form the
// output file name.
const DefaultSuffix = "_scribe"

// Config configures code generation.
type Config struct {
	// Target is the output directory for schema-mode enums. Scan-mode
	// enums are written next to their declaration.
	Target string

	// Package is the output package name for schema-mode enums.
	Package string

	// Suffix is the output file suffix, without the .go extension.
	Suffix string

	// Workers bounds the number of files rendered in parallel.
	Workers int

	// Header is the comment at the top of each generated file.
	Header string

	// Features are the enabled feature-flags.
	Features []Feature
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory for schema-mode enums.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the output package name for schema-mode enums.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithSuffix sets the output file suffix (default "_scribe").
func WithSuffix(s string) Option {
	return func(c *Config) error {
		if s == "" {
			return NewConfigError("Suffix", nil, "suffix cannot be empty")
		}
		c.Suffix = s
		return nil
	}
}

// WithWorkers bounds the number of files rendered in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "worker count must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithFeatures enables the named features. Unknown names are rejected
// with the list of known ones.
func WithFeatures(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := featureByName(name)
			if !ok {
				return NewConfigError("Features", name,
					"unknown feature; known features: "+strings.Join(FeatureNames(), ", "))
			}
			if !c.hasFeature(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options. Without a
// WithFeatures option the default feature set is enabled.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Suffix:  DefaultSuffix,
		Workers: runtime.GOMAXPROCS(0),
		Header:  Header,
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if c.Features == nil {
		c.Features = defaultFeatures()
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
