package casefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"matches"
)

// LoadFile loads and parses a YAML case file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse case YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Settings.MaxDepth == 0 {
		f.Settings.MaxDepth = matches.DefaultMaxDepth
	}

	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Mode == "" {
			c.Mode = ModeAssert
		}

		if c.Expect == "" {
			c.Expect = OutcomeMatch
		}
	}
}
