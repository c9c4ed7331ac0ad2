package entities

import "fmt"

// Directory is the aggregate loaded from dataset files: the networks the
// application can browse and the biobanks and collections linked to them.
//
// Invariants Enforced:
// - schema version is required
// - network, biobank and collection IDs are non-empty and unique per kind
type Directory struct {
	SchemaVersion string       `yaml:"schema_version" json:"schema_version"`
	Networks      []Network    `yaml:"networks" json:"networks"`
	Biobanks      []Biobank    `yaml:"biobanks,omitempty" json:"biobanks,omitempty"`
	Collections   []Collection `yaml:"collections,omitempty" json:"collections,omitempty"`
}

// Validate enforces the aggregate invariants.
func (d *Directory) Validate() error {
	if d.SchemaVersion == "" {
		return fmt.Errorf("schema_version is required")
	}
	if err := uniqueIDs("network", d.Networks, func(n Network) string { return n.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("biobank", d.Biobanks, func(b Biobank) string { return b.ID }); err != nil {
		return err
	}
	return uniqueIDs("collection", d.Collections, func(c Collection) string { return c.ID })
}

func uniqueIDs[T any](kind string, items []T, id func(T) string) error {
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		key := id(item)
		if key == "" {
			return fmt.Errorf("%s %d: id is required", kind, i)
		}
		if seen[key] {
			return fmt.Errorf("duplicate %s ID: %s", kind, key)
		}
		seen[key] = true
	}
	return nil
}

// Merge appends the entities of other. Entities whose ID is already present
// are replaced in place, so later dataset files override earlier ones.
func (d *Directory) Merge(other *Directory) {
	if other == nil {
		return
	}
	d.Networks = mergeByID(d.Networks, other.Networks, func(n Network) string { return n.ID })
	d.Biobanks = mergeByID(d.Biobanks, other.Biobanks, func(b Biobank) string { return b.ID })
	d.Collections = mergeByID(d.Collections, other.Collections, func(c Collection) string { return c.ID })
	if d.SchemaVersion == "" {
		d.SchemaVersion = other.SchemaVersion
	}
}

func mergeByID[T any](into, from []T, id func(T) string) []T {
	index := make(map[string]int, len(into))
	for i, item := range into {
		index[id(item)] = i
	}
	for _, item := range from {
		if i, ok := index[id(item)]; ok {
			into[i] = item
			continue
		}
		index[id(item)] = len(into)
		into = append(into, item)
	}
	return into
}
