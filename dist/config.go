package dist

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Kinds of distributions a Config can describe.
const (
	KindUniform        = "uniform"
	KindStandardNormal = "standard_normal"
	KindNormal         = "normal"
	KindLogNormal      = "log_normal"
	KindExponential    = "exponential"
	KindPareto         = "pareto"
	KindWeibull        = "weibull"
	KindLogistic       = "logistic"
	KindLogLogistic    = "log_logistic"
	KindGamma          = "gamma"
	KindUniformInt     = "uniform_int"
)

// Config describes a distribution.
//
// Which parameters are used depends on Kind:
//
//	uniform          min, max
//	standard_normal  none
//	normal           mu, sigma
//	log_normal       mu, sigma
//	exponential      mu (the mean)
//	pareto           scale (xm), shape (alpha)
//	weibull          scale (lambda), shape (k)
//	logistic         mu, scale (s)
//	log_logistic     scale (alpha), shape (beta)
//	gamma            shape (k), scale (theta)
//	uniform_int      min (lo), max (hi, exclusive), both integers
//
// Parameters not used by Kind must be left zero.
//
// Can be deserialized from YAML or TOML.
//
// Example:
//
//	kind: weibull
//	scale: 0.1
//	shape: 1.2
type Config struct {
	Kind  string  `yaml:"kind" toml:"kind"`
	Mu    float64 `yaml:"mu" toml:"mu"`
	Sigma float64 `yaml:"sigma" toml:"sigma"`
	Scale float64 `yaml:"scale" toml:"scale"`
	Shape float64 `yaml:"shape" toml:"shape"`
	Min   float64 `yaml:"min" toml:"min"`
	Max   float64 `yaml:"max" toml:"max"`
}

type builder struct {
	params []string
	build  func(Config) (Distribution, error)
}

var builders = map[string]builder{
	KindUniform: {
		params: []string{"min", "max"},
		build: func(c Config) (Distribution, error) {
			return NewUniform(c.Min, c.Max)
		},
	},
	KindStandardNormal: {
		build: func(Config) (Distribution, error) {
			return StandardNormal{}, nil
		},
	},
	KindNormal: {
		params: []string{"mu", "sigma"},
		build: func(c Config) (Distribution, error) {
			return NewNormal(c.Mu, c.Sigma)
		},
	},
	KindLogNormal: {
		params: []string{"mu", "sigma"},
		build: func(c Config) (Distribution, error) {
			return NewLogNormal(c.Mu, c.Sigma)
		},
	},
	KindExponential: {
		params: []string{"mu"},
		build: func(c Config) (Distribution, error) {
			return NewExponential(c.Mu)
		},
	},
	KindPareto: {
		params: []string{"scale", "shape"},
		build: func(c Config) (Distribution, error) {
			return NewPareto(c.Scale, c.Shape)
		},
	},
	KindWeibull: {
		params: []string{"scale", "shape"},
		build: func(c Config) (Distribution, error) {
			return NewWeibull(c.Scale, c.Shape)
		},
	},
	KindLogistic: {
		params: []string{"mu", "scale"},
		build: func(c Config) (Distribution, error) {
			return NewLogistic(c.Mu, c.Scale)
		},
	},
	KindLogLogistic: {
		params: []string{"scale", "shape"},
		build: func(c Config) (Distribution, error) {
			return NewLogLogistic(c.Scale, c.Shape)
		},
	},
	KindGamma: {
		params: []string{"shape", "scale"},
		build: func(c Config) (Distribution, error) {
			return NewGamma(c.Shape, c.Scale)
		},
	},
	KindUniformInt: {
		params: []string{"min", "max"},
		build: func(c Config) (Distribution, error) {
			lo, err := integer(KindUniformInt, "min", c.Min)
			if err != nil {
				return nil, err
			}
			hi, err := integer(KindUniformInt, "max", c.Max)
			if err != nil {
				return nil, err
			}
			return NewUniformInt(lo, hi)
		},
	},
}

// Kinds returns the sorted list of kinds Build accepts.
func Kinds() []string {
	kinds := make([]string, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Build creates the distribution described by c.
//
// It returns a *DomainError for an unknown kind, for a parameter that the
// kind does not use, and for parameters the constructor rejects.
func (c Config) Build() (Distribution, error) {
	b, ok := builders[c.Kind]
	if !ok {
		return nil, &DomainError{
			Dist:   c.Kind,
			Reason: fmt.Sprintf("unknown kind, must be one of %s", strings.Join(Kinds(), ", ")),
		}
	}
	for _, p := range c.setParams() {
		if !contains(b.params, p.name) {
			return nil, &DomainError{
				Dist:   c.Kind,
				Param:  p.name,
				Value:  p.value,
				Reason: "is not a parameter of this kind",
			}
		}
	}
	d, err := b.build(c)
	if err != nil {
		return nil, err
	}
	return d, nil
}

type param struct {
	name  string
	value float64
}

func (c Config) setParams() []param {
	var params []param
	for _, p := range []param{
		{"mu", c.Mu},
		{"sigma", c.Sigma},
		{"scale", c.Scale},
		{"shape", c.Shape},
		{"min", c.Min},
		{"max", c.Max},
	} {
		if p.value != 0 {
			params = append(params, p)
		}
	}
	return params
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func integer(dist, param string, v float64) (int64, error) {
	if v != math.Trunc(v) || math.Abs(v) >= 1<<63 {
		return 0, &DomainError{Dist: dist, Param: param, Value: v, Reason: "must be an integer"}
	}
	return int64(v), nil
}
