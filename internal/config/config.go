// SPDX-License-Identifier: MIT

// Package config loads and validates run settings for the junction CLI.
//
// Settings come from a TOML or YAML file (chosen by extension) layered over
// Default(); command-line flags that were set explicitly win over both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a config file extension other than .toml,
// .yaml or .yml.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// ErrInvalidConfig indicates a config that decoded but failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults used when neither a config file nor a flag sets a value.
const (
	DefaultBudget  = 1000
	DefaultTopK    = 3
	DefaultWorkers = 1
)

// Config holds everything a solve run can be tuned with.
type Config struct {
	// Budget is the edge budget of the bounded query.
	Budget int `toml:"budget" yaml:"budget" validate:"gte=0"`
	// TopK is how many of the largest circuits the bounded query multiplies.
	TopK int `toml:"top_k" yaml:"top_k" validate:"gte=1"`
	// Workers is the number of goroutines ranking edges.
	Workers int `toml:"workers" yaml:"workers" validate:"gte=1,lte=1024"`
	// Format selects text or json output.
	Format string `toml:"format" yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Budget:  DefaultBudget,
		TopK:    DefaultTopK,
		Workers: DefaultWorkers,
		Format:  FormatText,
	}
}

// Load reads path over Default() and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%s (%q): %w", path, ext, ErrUnsupportedFormat)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its struct tag rules.
func (c Config) Validate() error {
	return validateStruct(c)
}

// DefaultRankLimit is how many edges the rank command prints by default.
const DefaultRankLimit = 10

// Rank holds the settings of the rank command.
type Rank struct {
	// Limit is the number of edges printed; 0 prints all of them.
	Limit int `validate:"gte=0"`
	// Workers is the number of goroutines ranking edges.
	Workers int `validate:"gte=1,lte=1024"`
}

// DefaultRank returns the built-in rank settings.
func DefaultRank() Rank {
	return Rank{Limit: DefaultRankLimit, Workers: DefaultWorkers}
}

// Validate checks every field against its struct tag rules.
func (r Rank) Validate() error {
	return validateStruct(r)
}

// validateStruct runs the shared validator and folds field errors into one
// ErrInvalidConfig.
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s=%v (%s)", fe.Field(), fe.Value(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
