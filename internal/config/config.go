// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package config loads named precision policies from TOML or YAML files:
//
//	default = "money"
//
//	[policies.money]
//	scale = 2
//	rounding = "half_up"
//
//	[policies.rate]
//	scale = 8
//	rounding = "half_even"
//
// The names default, four and eight always resolve to arith.DefaultPolicy,
// arith.FourDigitPolicy and arith.EightDigitPolicy unless a file redefines
// them.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/arith"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration file.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	// FormatTOML is the default for unknown extensions.
	FormatTOML
	// FormatYAML is used for .yaml and .yml files.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrUnknownPolicy is returned when a policy name is not configured.
var ErrUnknownPolicy = errors.New("unknown policy")

// PolicyConfig is the file form of an arith.Policy. An empty Rounding means
// half_up.
type PolicyConfig struct {
	Scale    int    `toml:"scale" yaml:"scale"`
	Rounding string `toml:"rounding" yaml:"rounding"`
}

// Policy validates c and returns the arith.Policy it describes.
func (c PolicyConfig) Policy() (arith.Policy, error) {
	r := arith.RoundHalfUp
	if c.Rounding != "" {
		var err error
		if r, err = arith.ParseRoundingRule(c.Rounding); err != nil {
			return arith.Policy{}, err
		}
	}
	return arith.NewPolicyWithRounding(c.Scale, r)
}

// Config is a set of named policies.
type Config struct {
	// Default names the policy used when none is asked for.
	Default  string                  `toml:"default" yaml:"default"`
	Policies map[string]PolicyConfig `toml:"policies" yaml:"policies"`

	resolved map[string]arith.Policy
}

var builtins = map[string]arith.Policy{
	"default": arith.DefaultPolicy,
	"four":    arith.FourDigitPolicy,
	"eight":   arith.EightDigitPolicy,
}

// Builtin returns a Config holding only the built-in policies.
func Builtin() *Config {
	c := &Config{}
	if err := c.resolve(); err != nil {
		// Built-in policies are always valid.
		panic(err)
	}
	return c
}

// Load reads the configuration file at path, picking the format from its
// extension.
func Load(path string) (*Config, error) {
	return LoadFormat(path, FormatAuto)
}

// LoadFormat reads the configuration file at path in format f.
func LoadFormat(path string, f Format) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("config file path cannot be empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if f == FormatAuto {
		f = detectFormat(path)
	}
	c, err := Parse(data, f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return c, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes data in format f and validates every policy in it.
func Parse(data []byte, f Format) (*Config, error) {
	c := &Config{}
	switch f {
	case FormatTOML, FormatAuto:
		if _, err := toml.Decode(string(data), c); err != nil {
			return nil, errors.Wrap(err, "parse toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, errors.Wrap(err, "parse yaml")
		}
	default:
		return nil, errors.Errorf("unsupported config format %s", f)
	}
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) resolve() error {
	c.resolved = make(map[string]arith.Policy, len(builtins)+len(c.Policies))
	for name, p := range builtins {
		c.resolved[name] = p
	}
	for name, pc := range c.Policies {
		p, err := pc.Policy()
		if err != nil {
			return errors.Wrapf(err, "policy %q", name)
		}
		c.resolved[name] = p
	}
	if c.Default != "" {
		if _, ok := c.resolved[c.Default]; !ok {
			return errors.Wrapf(ErrUnknownPolicy, "default %q", c.Default)
		}
	}
	return nil
}

// Policy returns the policy called name. An empty name returns the
// configured default, or arith.DefaultPolicy if there is none.
func (c *Config) Policy(name string) (arith.Policy, error) {
	if name == "" {
		name = c.Default
	}
	if name == "" {
		return arith.DefaultPolicy, nil
	}
	p, ok := c.resolved[name]
	if !ok {
		return arith.Policy{}, errors.Wrapf(ErrUnknownPolicy, "%q", name)
	}
	return p, nil
}

// Names returns the sorted names of all resolvable policies.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.resolved))
	for name := range c.resolved {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
