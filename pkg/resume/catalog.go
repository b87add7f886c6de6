package resume

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog — неизменяемый словарь канонических навыков (нижний регистр).
// It is loaded once at process start and never mutated while serving;
// UpdateCatalogFile is the offline replacement step.
type Catalog struct {
	entries []string
	set     map[string]struct{}
}

// NewCatalog builds a catalog from raw skill strings: lower-cased,
// de-duplicated, sorted.
func NewCatalog(skills []string) *Catalog {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	entries := make([]string, 0, len(set))
	for s := range set {
		entries = append(entries, s)
	}
	sort.Strings(entries)
	return &Catalog{entries: entries, set: set}
}

// LoadCatalog reads a JSON array of skill strings.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill catalog: %w", err)
	}
	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("parse skill catalog %s: %w", path, err)
	}
	return NewCatalog(skills), nil
}

// Entries returns the sorted canonical skills. Callers must not mutate.
func (c *Catalog) Entries() []string { return c.entries }

func (c *Catalog) Len() int { return len(c.entries) }

func (c *Catalog) Has(skill string) bool {
	_, ok := c.set[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// UpdateCatalogFile unions new skills into the catalog file and rewrites it
// whole: read, union, dedupe, sort, atomic replace. This is an offline step;
// a running service keeps serving its loaded copy until restart.
// Returns the resulting catalog size.
func UpdateCatalogFile(path string, add []string) (int, error) {
	var existing []string
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &existing); err != nil {
			return 0, fmt.Errorf("parse skill catalog %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return 0, err
	}

	merged := NewCatalog(append(existing, add...))
	data, err := json.MarshalIndent(merged.Entries(), "", "  ")
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".skills-*.json")
	if err != nil {
		return 0, err
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return 0, err
	}
	return merged.Len(), nil
}
