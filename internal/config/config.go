// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/codesphere-cloud/csvappend/internal/appender"
	"github.com/codesphere-cloud/csvappend/internal/format"
	"github.com/codesphere-cloud/csvappend/internal/textenc"
	"github.com/codesphere-cloud/csvappend/internal/util"
)

// Config is the settings file of an append run. Every field maps to a flag of
// the append command.
type Config struct {
	Target     string `yaml:"target"`
	Delimiter  string `yaml:"delimiter"`
	Quote      string `yaml:"quote,omitempty"`
	Quoting    string `yaml:"quoting"`
	Encoding   string `yaml:"encoding"`
	LineEnding string `yaml:"lineEnding"`
	Sync       bool   `yaml:"sync,omitempty"`
}

func Default() *Config {
	return &Config{
		Delimiter:  ",",
		Quote:      `"`,
		Quoting:    format.QuoteNeeded.String(),
		Encoding:   textenc.Default,
		LineEnding: format.LF.String(),
	}
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Unmarshal overlays the YAML data onto c; keys missing from data keep their
// current values.
func (c *Config) Unmarshal(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Load reads path on top of the defaults.
func Load(fileIO util.FileIO, path string) (*Config, error) {
	file, err := fileIO.Open(util.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer util.CloseFileIgnoreError(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	c := Default()
	if err := c.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() []string {
	errors := []string{}

	if strings.TrimSpace(c.Target) == "" {
		errors = append(errors, "target file is required")
	}
	if _, err := format.ParseDelimiter(c.Delimiter); err != nil {
		errors = append(errors, err.Error())
	}
	if c.Quote != "" {
		if _, err := format.ParseDelimiter(c.Quote); err != nil {
			errors = append(errors, fmt.Sprintf("invalid quote character %q", c.Quote))
		}
	}
	if _, err := format.ParseQuoting(c.Quoting); err != nil {
		errors = append(errors, err.Error())
	}
	if _, err := textenc.Lookup(c.Encoding); err != nil {
		errors = append(errors, err.Error())
	}
	if _, err := format.ParseLineEnding(c.LineEnding); err != nil {
		errors = append(errors, err.Error())
	}
	return errors
}

// AppenderConfig validates c and converts it into the settings of an append
// session. The schema is left for the caller to fill in.
func (c *Config) AppenderConfig() (appender.Config, error) {
	if errs := c.Validate(); len(errs) > 0 {
		return appender.Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	opts := format.DefaultOptions()
	opts.Delimiter, _ = format.ParseDelimiter(c.Delimiter)
	if c.Quote != "" {
		opts.Quote, _ = format.ParseDelimiter(c.Quote)
	}
	opts.Quoting, _ = format.ParseQuoting(c.Quoting)
	opts.LineEnding, _ = format.ParseLineEnding(c.LineEnding)
	if err := opts.Validate(); err != nil {
		return appender.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	enc, _ := textenc.Lookup(c.Encoding)
	return appender.Config{
		Path:     util.ExpandPath(c.Target),
		Format:   opts,
		Encoding: enc,
		Sync:     c.Sync,
	}, nil
}
