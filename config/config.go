// Package config loads deckforge settings from a YAML file and the
// environment.
//
// A complete file looks like:
//
//	output_dir: out
//	create_dirs: true
//	decks: [tokens, prompt-engineering]
//	deck_files: [decks/attention.yaml]
//	formats: [pptx, html, png]
//	preview:
//	  width: 1280
//	metadata:
//	  author: Course Team
//	  company: Example Labs
//
// Environment variables override the file: DECKFORGE_OUTPUT_DIR,
// DECKFORGE_FORMATS (comma separated) and DECKFORGE_AUTHOR.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/deckforge/format"
	"github.com/tsawler/deckforge/render"
)

// Environment variable names.
const (
	EnvOutputDir = "DECKFORGE_OUTPUT_DIR"
	EnvFormats   = "DECKFORGE_FORMATS"
	EnvAuthor    = "DECKFORGE_AUTHOR"
)

// Preview width limits, in pixels.
const (
	MinPreviewWidth = 16
	MaxPreviewWidth = 8192
)

// Config holds generator settings.
type Config struct {
	OutputDir  string   `yaml:"output_dir"`
	CreateDirs bool     `yaml:"create_dirs"`
	Decks      []string `yaml:"decks"`      // Empty means every registered deck
	DeckFiles  []string `yaml:"deck_files"` // YAML deck definitions to register
	Formats    []string `yaml:"formats"`
	Preview    Preview  `yaml:"preview"`
	Metadata   Metadata `yaml:"metadata"`
}

// Preview configures PNG previews.
type Preview struct {
	Width int `yaml:"width"`
}

// Metadata is stamped onto every generated deck.
type Metadata struct {
	Author  string `yaml:"author"`
	Company string `yaml:"company"`
}

// Default returns the configuration used when no file is given: PPTX only,
// written to the working directory.
func Default() Config {
	return Config{
		OutputDir: ".",
		Formats:   []string{"pptx"},
		Preview:   Preview{Width: render.DefaultWidth},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, applies environment overrides and
// validates the result. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv returns the defaults with environment overrides applied.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from variables found by lookup, normally
// os.LookupEnv. Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvOutputDir); ok && strings.TrimSpace(v) != "" {
		c.OutputDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvFormats); ok && strings.TrimSpace(v) != "" {
		c.Formats = nil
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				c.Formats = append(c.Formats, f)
			}
		}
	}
	if v, ok := lookup(EnvAuthor); ok && strings.TrimSpace(v) != "" {
		c.Metadata.Author = strings.TrimSpace(v)
	}
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output_dir is empty"))
	}
	if len(c.Formats) == 0 {
		errs = append(errs, errors.New("no output formats"))
	}
	if _, err := c.OutputFormats(); err != nil {
		errs = append(errs, err)
	}
	if w := c.Preview.Width; w < MinPreviewWidth || w > MaxPreviewWidth {
		errs = append(errs, fmt.Errorf("preview.width %d outside %d-%d", w, MinPreviewWidth, MaxPreviewWidth))
	}
	for _, name := range c.Decks {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("empty deck name"))
			break
		}
	}
	return errors.Join(errs...)
}

// OutputFormats parses Formats, dropping duplicates.
func (c Config) OutputFormats() ([]format.Format, error) {
	formats, err := format.ParseList(strings.Join(c.Formats, ","))
	if err != nil {
		return nil, fmt.Errorf("formats: %w", err)
	}
	for _, f := range formats {
		if !f.IsOutput() {
			return nil, fmt.Errorf("formats: %s is not an output format", f)
		}
	}
	return formats, nil
}
