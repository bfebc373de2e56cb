// Package config holds the shell's user-tunable settings.
package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// ConfigurationName is the name of the config file within the
	// configuration directory.
	ConfigurationName = "config.yaml"

	// DefaultPrompt is the PS1-style prompt used when none is configured.
	DefaultPrompt = `\u@\h:\w\$ `

	// DefaultColorPrompt is the colored variant used on terminals.
	DefaultColorPrompt = "\x1b[01;32m" + `\u@\h` + "\x1b[00m:\x1b[01;34m" + `\w` + "\x1b[00m" + `\$ `
)

type Configuration struct {
	// Prompt is the PS1-style prompt template. Supported escapes:
	// \u user, \h hostname, \w working directory, \$ terminator.
	Prompt string `json:"prompt" validate:"required"`

	// Motd is printed once at startup when non-empty.
	Motd string `json:"motd"`

	// LogFile receives newline delimited JSON interaction events when
	// set.
	LogFile string `json:"log_file"`
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

// Default returns the configuration used when no file exists.
func Default() *Configuration {
	return &Configuration{Prompt: DefaultPrompt}
}
