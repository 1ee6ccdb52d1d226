// Package rules loads the externally supplied remapping rule document.
// Remapping is an enhancement, not a requirement: a missing document or an
// unreadable one degrades to the empty set instead of failing a conversion.
package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Set is one parsed rule document
type Set struct {
	// Functions maps source function names to target function names
	Functions map[string]string `yaml:"functions"`
	// Tables remaps the three segments of a qualified table reference
	Tables TableMapping `yaml:"table_mapping"`
}

// TableMapping holds the three independent segment mappings for
// project.dataset.table -> catalog.schema.table. Each is optional; unmapped
// segments fall back to their original value.
type TableMapping struct {
	Projects map[string]string `yaml:"projects"`
	Datasets map[string]string `yaml:"datasets"`
	Tables   map[string]string `yaml:"tables"`
}

// Empty returns a rule set that remaps nothing
func Empty() *Set {
	return &Set{}
}

// Parse decodes a rule document
func Parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return Empty(), fmt.Errorf("failed to parse rule document: %w", err)
	}
	return &set, nil
}

// Load reads a rule document from disk. A missing file is not an error -
// it means no remapping. A malformed file returns the empty set alongside
// the error so callers can log and continue.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), nil
		}
		return Empty(), fmt.Errorf("failed to read rule document: %w", err)
	}
	return Parse(data)
}

// IsEmpty reports whether the set remaps nothing
func (s *Set) IsEmpty() bool {
	return s == nil ||
		(len(s.Functions) == 0 &&
			len(s.Tables.Projects) == 0 &&
			len(s.Tables.Datasets) == 0 &&
			len(s.Tables.Tables) == 0)
}

// Fingerprint returns a stable hash of the set's contents, usable as part
// of a cache key
func (s *Set) Fingerprint() string {
	h := sha256.New()
	if s != nil {
		writeSorted(h, "functions", s.Functions)
		writeSorted(h, "projects", s.Tables.Projects)
		writeSorted(h, "datasets", s.Tables.Datasets)
		writeSorted(h, "tables", s.Tables.Tables)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeSorted(h interface{ Write(p []byte) (int, error) }, section string, m map[string]string) {
	h.Write([]byte(section))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "\x00%s\x01%s", k, m[k])
	}
}
