// Copyright 2024 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer

import (
	"io/ioutil"

	"github.com/spf13/cast"
	errors "gopkg.in/src-d/go-errors.v1"
	yaml "gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned when the analyzer configuration cannot be
// parsed.
var ErrInvalidConfig = errors.NewKind("invalid analyzer config: %s")

const defaultPlanCacheSize = 128

// Config holds the options of the analyzer that can be loaded from a file.
type Config struct {
	// MaxIterations bounds the passes of every repeated batch.
	MaxIterations int `yaml:"max_iterations"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
	// Verbose logs the plan after every rule that changes it.
	Verbose bool `yaml:"verbose"`
	// DisabledRules are the names of the rules that won't be applied.
	DisabledRules []string `yaml:"disabled_rules"`
	// PlanCacheSize is the number of analyzed plans kept. Zero disables
	// the cache.
	PlanCacheSize int `yaml:"plan_cache_size"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		MaxIterations: maxAnalysisIterations,
		PlanCacheSize: defaultPlanCacheSize,
	}
}

// LoadConfig reads the configuration in the YAML file at the given path.
func LoadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err, path)
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML document with the analyzer configuration.
// Options missing from the document keep their default value. Values are
// converted leniently, so "10" is a valid number of iterations.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err, err.Error())
	}

	for key, value := range raw {
		var err error
		switch key {
		case "max_iterations":
			cfg.MaxIterations, err = cast.ToIntE(value)
		case "debug":
			cfg.Debug, err = cast.ToBoolE(value)
		case "verbose":
			cfg.Verbose, err = cast.ToBoolE(value)
		case "disabled_rules":
			cfg.DisabledRules, err = cast.ToStringSliceE(value)
		case "plan_cache_size":
			cfg.PlanCacheSize, err = cast.ToIntE(value)
		default:
			return Config{}, ErrInvalidConfig.New("unknown option " + key)
		}
		if err != nil {
			return Config{}, ErrInvalidConfig.Wrap(err, key+": "+err.Error())
		}
	}

	if cfg.MaxIterations < 1 {
		return Config{}, ErrInvalidConfig.New("max_iterations must be positive")
	}
	if cfg.PlanCacheSize < 0 {
		return Config{}, ErrInvalidConfig.New("plan_cache_size cannot be negative")
	}

	return cfg, nil
}

// String returns the configuration as a YAML document.
func (c Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
