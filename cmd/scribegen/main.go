// scribegen generates enum<->string conversion code for Go types
// annotated with scribe directives.
//
// Usage:
//
//	scribegen [flags] [packages]
//
// Packages follow the go/packages pattern convention and default to the
// current directory. Settings can also come from a scribegen.yaml file,
// with flags taking precedence.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/scribegen/scribe/compiler/gen"
	"github.com/scribegen/scribe/compiler/load"
)

// defaultConfigFile is picked up from the working directory when no
// -config flag is given.
const defaultConfigFile = "scribegen.yaml"

var logger = log.New(os.Stderr, "scribegen: ", 0)

// fileConfig mirrors the flag surface in scribegen.yaml.
type fileConfig struct {
	Types    []string `yaml:"types,omitempty"`
	Features []string `yaml:"features,omitempty"`
	Suffix   string   `yaml:"suffix,omitempty"`
	Workers  int      `yaml:"workers,omitempty"`
}

func main() {
	var (
		typeNames = flag.String("type", "", "comma-separated enum type names (default all annotated types)")
		features  = flag.String("features", "", "comma-separated feature flags, e.g. codec/text,codec/sql")
		suffix    = flag.String("suffix", "", "generated file suffix (default "+gen.DefaultSuffix+")")
		workers   = flag.Int("workers", 0, "number of files rendered in parallel (default GOMAXPROCS)")
		cfgPath   = flag.String("config", "", "config file (default "+defaultConfigFile+" if present)")
		watch     = flag.Bool("watch", false, "watch source files and regenerate on change")
		verbose   = flag.Bool("v", false, "verbose output")
	)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: scribegen [flags] [packages]")
		fmt.Fprintln(flag.CommandLine.Output(), "Known features:", strings.Join(gen.FeatureNames(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	fc, err := loadFileConfig(*cfgPath)
	if err != nil {
		logger.Fatal(err)
	}
	if *typeNames != "" {
		fc.Types = splitList(*typeNames)
	}
	if *features != "" {
		fc.Features = splitList(*features)
	}
	if *suffix != "" {
		fc.Suffix = *suffix
	}
	if *workers != 0 {
		fc.Workers = *workers
	}

	var opts []gen.Option
	if len(fc.Features) > 0 {
		opts = append(opts, gen.WithFeatures(fc.Features...))
	}
	if fc.Suffix != "" {
		opts = append(opts, gen.WithSuffix(fc.Suffix))
	}
	if fc.Workers != 0 {
		opts = append(opts, gen.WithWorkers(fc.Workers))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		logger.Fatal(err)
	}
	lc := &load.Config{Types: fc.Types}
	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	dirs, err := generate(cfg, lc, patterns, *verbose)
	if err != nil {
		logger.Fatal(err)
	}
	if *watch {
		if err := watchLoop(cfg, lc, patterns, dirs, *verbose); err != nil {
			logger.Fatal(err)
		}
	}
}

func loadFileConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

func splitList(s string) []string {
	var list []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}

// generate runs one load+generate cycle and returns the directories of
// the scanned enums, which the watch loop observes.
func generate(cfg *gen.Config, lc *load.Config, patterns []string, verbose bool) ([]string, error) {
	start := time.Now()
	loaded, err := lc.Load(patterns...)
	if err != nil {
		return nil, err
	}
	if len(loaded) == 0 {
		logger.Println("no annotated enum types found")
		return nil, nil
	}

	var dirs []string
	enums := make([]*gen.Enum, 0, len(loaded))
	for _, le := range loaded {
		e, err := gen.FromLoad(le)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", le.Position, err)
		}
		enums = append(enums, e)
		dirs = append(dirs, le.Dir)
		if verbose {
			logger.Printf("found %s (%s) at %s", le.Name, e.Backing(), le.Position)
		}
	}

	g, err := gen.NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	if err := g.Generate(enums...); err != nil {
		return nil, err
	}
	if verbose {
		for i, e := range enums {
			logger.Printf("wrote %s", filepath.Join(dirs[i], e.FileName(cfg.Suffix)))
		}
		m := g.Metrics()
		logger.Printf("wrote %d files (%d bytes) in %s", m.Files, m.Bytes, time.Since(start).Round(time.Millisecond))
	}
	return dirs, nil
}

// watchLoop regenerates whenever a Go source file in an enum directory
// changes. Events are debounced, and generated and test files are
// skipped so a write of our own output does not retrigger the cycle.
func watchLoop(cfg *gen.Config, lc *load.Config, patterns, dirs []string, verbose bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	seen := make(map[string]struct{})
	addDirs := func(dirs []string) {
		for _, dir := range dirs {
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			if err := watcher.Add(dir); err != nil {
				logger.Printf("watch %s: %v", dir, err)
			} else if verbose {
				logger.Printf("watching %s", dir)
			}
		}
	}
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	addDirs(dirs)
	logger.Println("watching for changes, press Ctrl+C to stop")

	var debounce *time.Timer
	trigger := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if skipFile(ev.Name, cfg.Suffix) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case <-trigger:
			if verbose {
				logger.Println("change detected, regenerating")
			}
			dirs, err := generate(cfg, lc, patterns, verbose)
			if err != nil {
				// Keep watching: in-progress edits rarely typecheck.
				logger.Println(err)
				continue
			}
			addDirs(dirs)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("watch: %v", err)
		}
	}
}

// skipFile reports whether a change event is irrelevant to generation:
// non-Go files, test files, and our own generated output.
func skipFile(name, suffix string) bool {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".go") {
		return true
	}
	if strings.HasSuffix(base, "_test.go") {
		return true
	}
	return strings.HasSuffix(base, suffix+".go")
}
