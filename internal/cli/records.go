package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// readRecords parses a YAML or JSON file holding a list of mappings.
// JSON is accepted because it is valid YAML.
func readRecords(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []map[string]any
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
