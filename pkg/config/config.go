// Package config loads the optional tool configuration file. Every knob has a
// default, so a missing file is not an error for callers that treat the path
// as optional.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the conventional config file looked up by the CLI.
const DefaultFileName = ".buildergen.yml"

// Config collects the generation knobs shared by the CLI and the library
// entry points.
type Config struct {
	// TagKey is the struct tag namespace read for customization directives.
	TagKey string `yaml:"tagKey"`

	// Suffix names the generated companion type: origin name + Suffix.
	Suffix string `yaml:"suffix"`

	// ConstructorPrefix names the builder constructor.
	ConstructorPrefix string `yaml:"constructorPrefix"`

	// DefaultEmitter selects the emitter used when a request omits one.
	DefaultEmitter string `yaml:"defaultEmitter"`

	// OutputSuffix is appended to the lowercased type name when the CLI
	// derives output file names.
	OutputSuffix string `yaml:"outputSuffix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TagKey:            "builder",
		Suffix:            "Builder",
		ConstructorPrefix: "New",
		DefaultEmitter:    "gofile",
		OutputSuffix:      "_builder.go",
	}
}

// Load reads a YAML config file and overlays it on the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads a YAML config entry from an fs.FS and overlays it on the
// defaults.
func LoadFS(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("config: read fs entry %q: %w", name, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML config content, starting from the defaults so partial
// files only override what they name.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	defaults := Default()
	if strings.TrimSpace(c.TagKey) == "" {
		c.TagKey = defaults.TagKey
	}
	if strings.TrimSpace(c.Suffix) == "" {
		c.Suffix = defaults.Suffix
	}
	if strings.TrimSpace(c.ConstructorPrefix) == "" {
		c.ConstructorPrefix = defaults.ConstructorPrefix
	}
	if strings.TrimSpace(c.DefaultEmitter) == "" {
		c.DefaultEmitter = defaults.DefaultEmitter
	}
	if strings.TrimSpace(c.OutputSuffix) == "" {
		c.OutputSuffix = defaults.OutputSuffix
	}
}
