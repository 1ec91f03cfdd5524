package pqrand

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/pqrand/pqrand.go/configbp"
	"github.com/pqrand/pqrand.go/dist"
	"github.com/pqrand/pqrand.go/engine"
	"github.com/pqrand/pqrand.go/errorsbp"
	"github.com/pqrand/pqrand.go/log"
	"github.com/pqrand/pqrand.go/validate"
)

// Config is the configuration of an application sampling with pqrand.
//
// Can be deserialized from YAML or TOML, see configbp.
//
// Example:
//
//	log:
//	  level: info
//	engine:
//	  seedFile: $STATE_DIR/seed.txt
//	  parallel: 4
//	distributions:
//	  latency:
//	    kind: log_normal
//	    mu: 3
//	    sigma: 0.25
//	validate:
//	  options:
//	    sampleSize: 100000
type Config struct {
	Log    log.Config    `yaml:"log" toml:"log"`
	Engine engine.Config `yaml:"engine" toml:"engine"`

	// Distributions are built by name, see dist.Config.
	Distributions map[string]dist.Config `yaml:"distributions" toml:"distributions"`

	Validate ValidateConfig `yaml:"validate" toml:"validate"`
}

// ValidateConfig configures Setup.ValidateAll.
type ValidateConfig struct {
	Options validate.Options `yaml:"options" toml:"options"`

	// Thresholds default to validate.DefaultThresholds when all are zero.
	Thresholds validate.Thresholds `yaml:"thresholds" toml:"thresholds"`
}

// ParseConfig returns a new Config parsed from the YAML or TOML file at the
// given path, then overridden by the PQRAND_* environment variables (see the
// env tags of engine.Config and log.Config).
func ParseConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, errors.New("pqrand.ParseConfig: no config path given")
	}
	if err := configbp.ParseStrictFile(path, &cfg); err != nil {
		return cfg, err
	}
	if err := configbp.ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Setup holds the engines and distributions described by a Config.
//
// The engines are exclusively owned: give each one to a single goroutine.
type Setup struct {
	cfg     Config
	engines []*engine.Engine
	dists   map[string]dist.Distribution
}

// New parses the config file at the given path, initializes the logger, and
// returns the Setup it describes.
func New(path string, opts ...engine.Option) (*Setup, error) {
	cfg, err := ParseConfig(path)
	if err != nil {
		return nil, err
	}
	log.InitFromConfig(cfg.Log)
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig creates the engines and builds every distribution of cfg.
//
// It does not initialize the logger. Errors of all distributions are
// returned together as an errorsbp.Batch, each prefixed by its name.
func NewFromConfig(cfg Config, opts ...engine.Option) (*Setup, error) {
	s := &Setup{
		cfg:   cfg,
		dists: make(map[string]dist.Distribution, len(cfg.Distributions)),
	}

	var batch errorsbp.Batch
	for _, name := range sortedKeys(cfg.Distributions) {
		d, err := cfg.Distributions[name].Build()
		if err != nil {
			batch.AddPrefix(name, err)
			continue
		}
		s.dists[name] = d
	}
	if err := batch.Compile(); err != nil {
		return nil, fmt.Errorf("pqrand: building distributions: %w", err)
	}

	engines, err := engine.NewFromConfig(cfg.Engine, opts...)
	if err != nil {
		return nil, fmt.Errorf("pqrand: creating engines: %w", err)
	}
	s.engines = engines

	log.Infow(
		"pqrand: setup ready",
		"engines", len(s.engines),
		"distributions", len(s.dists),
	)
	return s, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Config returns the config the Setup was created from.
func (s *Setup) Config() Config {
	return s.cfg
}

// Engines returns the engines, each on its own non-overlapping stream.
func (s *Setup) Engines() []*engine.Engine {
	return s.engines
}

// Engine returns the i-th engine.
func (s *Setup) Engine(i int) *engine.Engine {
	return s.engines[i]
}

// Distribution returns the distribution configured under name.
func (s *Setup) Distribution(name string) (dist.Distribution, bool) {
	d, ok := s.dists[name]
	return d, ok
}

// Names returns the names of the distributions in sorted order.
func (s *Setup) Names() []string {
	return sortedKeys(s.dists)
}

// ValidateAll validates every distribution and checks the reports against
// the configured thresholds.
//
// Distributions are spread over the engines in name order, and every engine
// validates its share in its own goroutine, so the reports only depend on the
// seed and the number of engines. Failed checks of all distributions are
// returned together as an errorsbp.Batch; the reports are returned either
// way.
func (s *Setup) ValidateAll() (map[string]validate.Report, error) {
	thresholds := s.cfg.Validate.Thresholds
	if thresholds == (validate.Thresholds{}) {
		thresholds = validate.DefaultThresholds
	}

	names := s.Names()
	reports := make([]validate.Report, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for w, e := range s.engines {
		wg.Add(1)
		go func(w int, e *engine.Engine) {
			defer wg.Done()
			for i := w; i < len(names); i += len(s.engines) {
				r, err := validate.Run(s.dists[names[i]], s.cfg.Validate.Options, e)
				if err != nil {
					errs[i] = err
					continue
				}
				reports[i] = r
				errs[i] = r.Check(thresholds)
			}
		}(w, e)
	}
	wg.Wait()

	result := make(map[string]validate.Report, len(names))
	var batch errorsbp.Batch
	for i, name := range names {
		result[name] = reports[i]
		if errs[i] != nil {
			log.Warnw("pqrand: validation failed", "name", name, "err", errs[i])
			batch.AddPrefix(name, errs[i])
		}
	}
	return result, batch.Compile()
}
