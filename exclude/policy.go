// Package exclude implements the exclusion policy deciding which
// tree locations participate in comparison and replay.
package exclude

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Policy is the exclusion policy document, accepted as JSON or YAML.
type Policy struct {
	// ExcludedPaths are exact location descriptors; their descendants
	// are excluded too.
	ExcludedPaths []string `yaml:"excluded_paths"`
	// ExcludedRegexPaths are patterns matched against the serialized
	// location text.
	ExcludedRegexPaths []string `yaml:"excluded_regex_paths"`
	// PreservedFields are field names restored from the base tree
	// unconditionally, independent of location.
	PreservedFields []string `yaml:"preserved_fields"`
}

// DefaultPreservedFields is the workflow-document preservation list
// used when a policy does not carry its own.
var DefaultPreservedFields = []string{"id", "task_id", "files", "created_tags"}

func Load(d []byte) (*Policy, error) {
	p := &Policy{}
	if err := yaml.Unmarshal(d, p); err != nil {
		return nil, fmt.Errorf("exclusion policy: %w", err)
	}
	return p, nil
}

func LoadFile(path string) (*Policy, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Load(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
