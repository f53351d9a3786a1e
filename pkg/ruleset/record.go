package ruleset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/K3nguruh/validation/pkg/validation"
)

// ParseRecord decodes a flat JSON or YAML object into a record. Scalars keep
// their decoded type, so `age: 15` arrives as an int and `age: "15"` as a string.
func ParseRecord(data []byte) (validation.Record, error) {
	record := validation.Record{}
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return record, nil
}

// LoadRecord reads and decodes the record file at path.
func LoadRecord(path string) (validation.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	record, err := ParseRecord(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return record, nil
}

// ParseAssignments turns "key=value" pairs into a record. Values stay strings;
// a pair without "=" sets an empty value.
func ParseAssignments(pairs []string) (validation.Record, error) {
	record := make(validation.Record, len(pairs))
	for _, p := range pairs {
		key, value, _ := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%w: assignment %q has no key", ErrDecode, p)
		}
		record[key] = value
	}
	return record, nil
}
