// Package config loads the segvso YAML configuration.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/segvso/clause"
	"github.com/revelaction/segvso/dep"
)

// Config holds the extraction settings.
//
//	verb_tags: [VB]
//	pos_field: tag
//	max_depth: 0
//	workers: 4
//	log_every: 500
type Config struct {
	// VerbTags are matched as substrings of the word POS
	VerbTags []string `yaml:"verb_tags"`

	// PosField is "tag" (xpos) or "pos" (upos)
	PosField string `yaml:"pos_field"`

	// MaxDepth bounds subordinate clause nesting, 0 is the sentence length
	MaxDepth int `yaml:"max_depth"`

	Workers int `yaml:"workers"`

	// LogEvery logs progress every n sentences, 0 disables it
	LogEvery int `yaml:"log_every"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		VerbTags: append([]string(nil), clause.DefaultVerbTags...),
		PosField: string(dep.PosTag),
		Workers:  runtime.NumCPU(),
		LogEvery: 500,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return c, nil
}

// Validate checks the values of c.
func (c Config) Validate() error {
	switch dep.PosField(c.PosField) {
	case dep.PosTag, dep.PosUniversal:
	default:
		return fmt.Errorf("pos_field must be %q or %q, got %q", dep.PosTag, dep.PosUniversal, c.PosField)
	}

	if len(c.VerbTags) == 0 {
		return fmt.Errorf("verb_tags must not be empty")
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative")
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}

	return nil
}

// Pos returns the token field used as word POS.
func (c Config) Pos() dep.PosField {
	return dep.PosField(c.PosField)
}

// Extractor returns the clause extractor configured by c.
func (c Config) Extractor() *clause.Extractor {
	e := clause.NewExtractor(c.VerbTags)
	e.MaxDepth = c.MaxDepth
	return e
}
