// Package configs provides library defaults loaded from an embedded YAML file.
// All hardcoded values live in defaults.yaml.
package configs

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults holds all library default values (loaded from defaults.yaml at startup).
var Defaults LibDefaults

func init() {
	if err := yaml.Unmarshal(defaultsYAML, &Defaults); err != nil {
		panic("iosetup: invalid defaults.yaml: " + err.Error())
	}
}

// LibDefaults holds all configurable library defaults.
type LibDefaults struct {
	Catalog CatalogDefaults `yaml:"catalog"`
	Display DisplayDefaults `yaml:"display"`
	Config  ConfigDefaults  `yaml:"config"`
	Cloud   CloudDefaults   `yaml:"cloud"`
}

// CatalogDefaults holds remote example catalog defaults.
type CatalogDefaults struct {
	Org            string `yaml:"org"`
	APIBaseURL     string `yaml:"api_base_url"`
	RawBaseURL     string `yaml:"raw_base_url"`
	CloneBaseURL   string `yaml:"clone_base_url"`
	TemplateFile   string `yaml:"template_file"`
	DefaultRef     string `yaml:"default_ref"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the catalog HTTP timeout as a time.Duration.
func (c CatalogDefaults) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DisplayDefaults holds terminal rendering defaults.
type DisplayDefaults struct {
	TabStopWidth     int `yaml:"tab_stop_width"`
	DescriptionLimit int `yaml:"description_limit"`
}

// ConfigDefaults holds configuration file defaults.
type ConfigDefaults struct {
	FileExtension string `yaml:"file_extension"`
}

// CloudDefaults holds external command defaults.
type CloudDefaults struct {
	Binary    string `yaml:"binary"`
	GitBinary string `yaml:"git_binary"`
}
