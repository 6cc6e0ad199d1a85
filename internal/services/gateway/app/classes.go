package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type classesFile struct {
	Classes []string `yaml:"classes"`
}

// LoadClasses reads the class roster the classifier was trained with. Order
// matters: index i of the probability vector is Classes[i].
func LoadClasses(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class roster: %w", err)
	}
	var f classesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse class roster %s: %w", path, err)
	}
	if len(f.Classes) == 0 {
		return nil, fmt.Errorf("class roster %s lists no classes", path)
	}
	seen := make(map[string]struct{}, len(f.Classes))
	for i, c := range f.Classes {
		if c == "" {
			return nil, fmt.Errorf("class roster %s: empty name at index %d", path, i)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("class roster %s: duplicate class %q", path, c)
		}
		seen[c] = struct{}{}
	}
	return f.Classes, nil
}
