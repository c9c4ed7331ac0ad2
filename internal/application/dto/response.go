// Package dto holds the data shapes exchanged between the application layer
// and its adapters (CLI output, terminal UI).
package dto

// Field is a labeled, typed display value.
type Field struct {
	Value any    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
	Type  string `json:"type" yaml:"type"`
}

// Link points at a related directory entity.
type Link struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// NetworkReport is the view model of a network report card.
type NetworkReport struct {
	Contact     map[string]Field `json:"contact,omitempty" yaml:"contact,omitempty"`
	ID          string           `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Identity    []Field          `json:"identity,omitempty" yaml:"identity,omitempty"`
	Details     []Field          `json:"details" yaml:"details"`
	Collections []Link           `json:"collections,omitempty" yaml:"collections,omitempty"`
	Biobanks    []Link           `json:"biobanks,omitempty" yaml:"biobanks,omitempty"`
}

// NetworkSummary is one row of a network listing.
type NetworkSummary struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	JuridicalPerson string   `json:"juridical_person,omitempty" yaml:"juridical_person,omitempty"`
	Features        []string `json:"features,omitempty" yaml:"features,omitempty"`
}
