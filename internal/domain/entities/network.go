// Package entities contains domain entities for the directory domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import "strings"

// Network is a collaboration of biobanks as published by the directory.
// Every sub-field is optional; consumers must treat absent data as empty/false.
type Network struct {
	Meta            *Meta    `yaml:"_meta,omitempty" json:"_meta,omitempty"`
	Contact         *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	ID              string   `yaml:"id" json:"id"`
	Name            string   `yaml:"name,omitempty" json:"name,omitempty"`
	Description     string   `yaml:"description,omitempty" json:"description,omitempty"`
	JuridicalPerson string   `yaml:"juridical_person,omitempty" json:"juridical_person,omitempty"`
	URL             string   `yaml:"url,omitempty" json:"url,omitempty"`

	CommonCollectionFocus    bool `yaml:"common_collection_focus,omitempty" json:"common_collection_focus"`
	CommonCharter            bool `yaml:"common_charter,omitempty" json:"common_charter"`
	CommonSOPs               bool `yaml:"common_sops,omitempty" json:"common_sops"`
	CommonDataAccessPolicy   bool `yaml:"common_data_access_policy,omitempty" json:"common_data_access_policy"`
	CommonSampleAccessPolicy bool `yaml:"common_sample_access_policy,omitempty" json:"common_sample_access_policy"`
	CommonMTA                bool `yaml:"common_mta,omitempty" json:"common_mta"`
	CommonImageAccessPolicy  bool `yaml:"common_image_access_policy,omitempty" json:"common_image_access_policy"`
	CommonImageMTA           bool `yaml:"common_image_mta,omitempty" json:"common_image_mta"`
	CommonRepresentation     bool `yaml:"common_representation,omitempty" json:"common_representation"`
	CommonURL                bool `yaml:"common_url,omitempty" json:"common_url"`
}

// Meta carries the entity metadata attached by the directory backend.
type Meta struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Contact holds the public contact details of a network.
type Contact struct {
	Email   string `yaml:"email,omitempty" json:"email,omitempty"`
	Website string `yaml:"website,omitempty" json:"website,omitempty"`
}

// Email returns the contact email, or "" when the network has no contact.
func (n *Network) Email() string {
	if n == nil || n.Contact == nil {
		return ""
	}
	return strings.TrimSpace(n.Contact.Email)
}

// Website returns the contact website, or "" when the network has no contact.
func (n *Network) Website() string {
	if n == nil || n.Contact == nil {
		return ""
	}
	return strings.TrimSpace(n.Contact.Website)
}

// Title returns the display name, falling back to the ID.
func (n *Network) Title() string {
	if n == nil {
		return ""
	}
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// HasFeature reports whether the flag identified by key is set.
// Unknown keys and nil networks report false.
func (n *Network) HasFeature(key string) bool {
	if n == nil {
		return false
	}
	f, ok := FeatureByKey(key)
	if !ok {
		return false
	}
	return f.Enabled(n)
}

// EnabledFeatures returns the keys of all set flags in feature order.
func (n *Network) EnabledFeatures() []string {
	var keys []string
	for _, f := range Features() {
		if f.Enabled(n) {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Clone returns a copy that shares no pointers with n.
func (n *Network) Clone() *Network {
	if n == nil {
		return nil
	}
	c := *n
	if n.Meta != nil {
		meta := *n.Meta
		c.Meta = &meta
	}
	if n.Contact != nil {
		contact := *n.Contact
		c.Contact = &contact
	}
	return &c
}
