package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// config holds the settings of a calc session. It can be read from a YAML
// file, and flags override it.
type config struct {
	// Prompt is printed before each line read from a terminal.
	Prompt string `yaml:"prompt"`
	// Format is the fmt verb used to print results.
	Format string `yaml:"fmt"`
	// Minimal disables variables.
	Minimal bool `yaml:"minimal"`
	// Given maps variable names to expressions for their initial values.
	Given map[string]string `yaml:"given"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Prompt:   ">> ",
		Format:   "%g",
		LogLevel: "warn",
	}
}

// loadConfig reads settings from a YAML file into c. Settings missing from the
// file keep their values in c.
func loadConfig(path string, c *config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// addGiven parses a "name=expr" variable definition into c.Given.
func (c *config) addGiven(s string) error {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	if c.Given == nil {
		c.Given = make(map[string]string)
	}
	c.Given[strings.TrimSpace(d[0])] = strings.TrimSpace(d[1])
	return nil
}

// evaluator creates an evaluator with the configured variant and variables.
// Each given expression is evaluated on its own, so definitions can't refer
// to each other.
func (c *config) evaluator() (*calc.Evaluator, error) {
	var opts []calc.Option
	if c.Minimal {
		opts = append(opts, calc.Minimal())
	}
	e := calc.NewEvaluator(opts...)
	names := make([]string, 0, len(c.Given))
	for k := range c.Given {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, nm := range names {
		if len(nm) != 1 || !isLetter(nm[0]) {
			return nil, fmt.Errorf("setting %q: variable names are single letters A-Z", nm)
		}
		r, err := calc.EvalString(c.Given[nm])
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", nm, err)
		}
		e.Set(nm[0], r)
	}
	return e, nil
}

func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
