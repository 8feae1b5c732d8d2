package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Config holds defaults loaded with --config. Command line flags win over
// every field.
type Config struct {
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	Verbose bool   `yaml:"verbose"`
	Seed    *int64 `yaml:"seed"`
}

// ErrorIllegal reports a config file that could not be accepted.
type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e *ErrorIllegal) Error() string {
	if e.Feature != "" {
		return fmt.Sprintf("illegal config %s (%s): %s", e.FilePath, e.Feature, e.Message)
	}
	return fmt.Sprintf("illegal config %s: %s", e.FilePath, e.Message)
}

func readConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	var c Config
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil {
		return nil, &ErrorIllegal{
			FilePath: path,
			Message:  err.Error(),
		}
	}
	for _, f := range []struct{ feature, format string }{
		{"format", c.Format},
		{"output", c.Output},
	} {
		if f.format != "" && !validFormat(f.format) {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  f.feature,
				Message:  fmt.Sprintf("%q: %v", f.format, ErrUnsupportedFormat),
			}
		}
	}
	return &c, nil
}
