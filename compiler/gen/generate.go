package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Metrics reports what a generation run produced.
type Metrics struct {
	// Files is the number of files written.
	Files int

	// Bytes is the total size of the written files.
	Bytes int

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Generator renders conversion method sets for validated enums and writes
// one formatted file per enum. Rendering runs in parallel, bounded by the
// configured worker count.
type Generator struct {
	cfg *Config

	mu      sync.Mutex
	metrics Metrics
}

// NewGenerator creates a Generator for the config.
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	return &Generator{cfg: cfg}, nil
}

// Generate renders and writes one file per enum. It fails before writing
// anything when two enums share a name, and reports the first render or
// write failure as a GenerationError.
func (g *Generator) Generate(enums ...*Enum) error {
	start := time.Now()
	g.mu.Lock()
	g.metrics = Metrics{}
	g.mu.Unlock()
	seen := make(map[string]struct{}, len(enums))
	for _, e := range enums {
		if _, ok := seen[e.Name()]; ok {
			return NewGenerationError(e.Name(), "", "duplicate enum name", nil)
		}
		seen[e.Name()] = struct{}{}
	}
	var eg errgroup.Group
	eg.SetLimit(g.cfg.Workers)
	for _, e := range enums {
		eg.Go(func() error {
			return g.write(e)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	g.mu.Lock()
	g.metrics.Duration = time.Since(start)
	g.mu.Unlock()
	return nil
}

// Metrics returns the metrics of the last Generate call.
func (g *Generator) Metrics() Metrics {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.metrics
}

func (g *Generator) write(e *Enum) error {
	dir := e.Dir
	if dir == "" {
		dir = g.cfg.Target
	}
	if dir == "" {
		return NewConfigError("Target", nil, "no output directory for enum "+e.Name())
	}
	if e.Package == "" && g.cfg.Package == "" {
		return NewConfigError("Package", nil, "no output package for enum "+e.Name())
	}
	path := filepath.Join(dir, e.FileName(g.cfg.Suffix))

	var buf bytes.Buffer
	if err := render(g.cfg, e).Render(&buf); err != nil {
		return NewGenerationError(e.Name(), path, "render", err)
	}
	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return NewGenerationError(e.Name(), path, "format", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return NewGenerationError(e.Name(), path, "create output directory", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return NewGenerationError(e.Name(), path, "write", err)
	}
	g.mu.Lock()
	g.metrics.Files++
	g.metrics.Bytes += len(src)
	g.mu.Unlock()
	return nil
}

// Generate renders and writes conversion method sets for the enums with a
// one-shot Generator.
func Generate(cfg *Config, enums ...*Enum) error {
	g, err := NewGenerator(cfg)
	if err != nil {
		return err
	}
	return g.Generate(enums...)
}
