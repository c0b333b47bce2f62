// Package policy handles loading and validating built-in scoring policies.
package policy

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Policy defines the weights, penalties, and thresholds used to grade a
// password. A loaded policy is never mutated.
type Policy struct {
	Name        string     `yaml:"name"`
	Version     int        `yaml:"version"`
	Description string     `yaml:"description"`
	Length      Length     `yaml:"length"`
	Weights     Weights    `yaml:"weights"`
	Penalties   Penalties  `yaml:"penalties"`
	Entropy     Entropy    `yaml:"entropy"`
	Thresholds  Thresholds `yaml:"thresholds"`
}

// Length defines the character-count tiers.
type Length struct {
	Partial int `yaml:"partial"`
	Min     int `yaml:"min"`
	Good    int `yaml:"good"`
	Strong  int `yaml:"strong"`
}

// Weights defines the points awarded per passing check.
type Weights struct {
	Length      int `yaml:"length"`
	LengthBonus int `yaml:"length_bonus"`
	Class       int `yaml:"class"`
	Unique      int `yaml:"unique"`
}

// Penalties defines the points subtracted per failing check.
type Penalties struct {
	Run    int `yaml:"run"`
	Common int `yaml:"common"`
}

// Entropy defines the advisory entropy floor in bits.
type Entropy struct {
	MinBits float64 `yaml:"min_bits"`
}

// Thresholds defines the score cut points between categories.
// A score below Weak is Very Weak; a score at or above Strong is Strong.
type Thresholds struct {
	Weak   int `yaml:"weak"`
	Fair   int `yaml:"fair"`
	Good   int `yaml:"good"`
	Strong int `yaml:"strong"`
}

// LoadBuiltin loads a built-in policy by name.
func LoadBuiltin(name string) (*Policy, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("policy.LoadBuiltin: unknown policy %q: %w", name, err)
	}
	return decode(name, data)
}

// Load reads a policy from a user-supplied YAML file.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy.Load: %w", err)
	}
	return decode(path, data)
}

func decode(source string, data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("policy: parse %q: %w", source, err)
	}
	if errs := Validate(&p); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("policy: invalid %q: %s", source, strings.Join(msgs, "; "))
	}
	return &p, nil
}

// List returns the names of all available built-in policies.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}
