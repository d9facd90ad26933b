// Package seed reads the list of tracked currencies.
package seed

import (
	"fmt"
	"os"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Load reads the seed file at path. Both JSON and YAML arrays of
// {ru_name, en_name, cur_code} objects are accepted.
func Load(path string) ([]domain.SeedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return records, nil
}

// Parse decodes seed records and rejects duplicate identities.
func Parse(data []byte) ([]domain.SeedRecord, error) {
	var records []domain.SeedRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode seed records: %w", err)
	}
	seen := make(map[[2]string]int, len(records))
	for i, rec := range records {
		key := [2]string{rec.RuName, rec.EnName}
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("records %d and %d both describe %s/%s", prev, i, rec.RuName, rec.EnName)
		}
		seen[key] = i
	}
	return records, nil
}
