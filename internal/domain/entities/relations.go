package entities

import "slices"

// Biobank is an institution that holds collections. It may take part in
// several networks.
type Biobank struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Acronym  string   `yaml:"acronym,omitempty" json:"acronym,omitempty"`
	Networks []string `yaml:"network,omitempty" json:"network,omitempty"`
}

// InNetwork reports whether the biobank lists networkID.
func (b *Biobank) InNetwork(networkID string) bool {
	return b != nil && slices.Contains(b.Networks, networkID)
}

// Title returns the display name, falling back to the ID.
func (b *Biobank) Title() string {
	if b.Name != "" {
		return b.Name
	}
	return b.ID
}

// Collection is a set of samples or data held by a biobank.
type Collection struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Biobank  string   `yaml:"biobank,omitempty" json:"biobank,omitempty"`
	Networks []string `yaml:"network,omitempty" json:"network,omitempty"`
}

// InNetwork reports whether the collection lists networkID.
func (c *Collection) InNetwork(networkID string) bool {
	return c != nil && slices.Contains(c.Networks, networkID)
}

// Title returns the display name, falling back to the ID.
func (c *Collection) Title() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// NetworkReport is a network together with the collections and biobanks
// that take part in it.
type NetworkReport struct {
	Network     *Network
	Collections []Collection
	Biobanks    []Biobank
}

// Clone returns a copy that shares no memory with r.
func (r *NetworkReport) Clone() *NetworkReport {
	if r == nil {
		return nil
	}
	c := &NetworkReport{Network: r.Network.Clone()}
	for _, col := range r.Collections {
		col.Networks = slices.Clone(col.Networks)
		c.Collections = append(c.Collections, col)
	}
	for _, b := range r.Biobanks {
		b.Networks = slices.Clone(b.Networks)
		c.Biobanks = append(c.Biobanks, b)
	}
	return c
}

// GetNetwork returns the reported network, or nil.
func (r *NetworkReport) GetNetwork() *Network {
	if r == nil {
		return nil
	}
	return r.Network
}
