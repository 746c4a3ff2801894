package config

import (
	_ "embed"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Configuration holds the values coin is built with.
type Configuration struct {
	// Home is the target of a bare cd and the HOME handed to programs.
	Home string `json:"home" validate:"required"`
	// Path is the PATH handed to programs. It is not used for lookups.
	Path string `json:"path" validate:"required"`
	// Term is the TERM handed to programs.
	Term string `json:"term" validate:"required"`

	SearchDirs   []string `json:"search_dirs" validate:"required,min=1,dive,required,startswith=/"`
	PromptSuffix string   `json:"prompt_suffix"`
	LineMax      int      `json:"line_max" validate:"gte=2"`
	Color        string   `json:"color" validate:"oneof=always auto never"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Environ returns the complete environment of a launched program.
func (c *Configuration) Environ() []string {
	return []string{
		fmt.Sprintf("HOME=%s", c.Home),
		fmt.Sprintf("PATH=%s", c.Path),
		fmt.Sprintf("TERM=%s", c.Term),
	}
}

// Clone returns a deep copy so callers can tweak a configuration without
// touching the shared default.
func (c *Configuration) Clone() *Configuration {
	out := *c
	out.SearchDirs = append([]string(nil), c.SearchDirs...)
	return &out
}

// Default returns a copy of the compiled-in configuration.
func Default() *Configuration {
	return defaultConfig.Clone()
}

var defaultConfig = mustParse(defaultConfigData)

func mustParse(data []byte) *Configuration {
	out, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return out
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (*Configuration, error) {
	var out Configuration
	if err := yaml.UnmarshalStrict(data, &out); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &out, nil
}

// Marshal encodes the configuration as YAML.
func (c *Configuration) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
