package entities

// Option is a single selectable filter choice.
// ID is the identity; Label is display text only.
type Option struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Facet is a named group of options a directory can be filtered by.
type Facet struct {
	Name    string   `yaml:"name" json:"name"`
	Label   string   `yaml:"label" json:"label"`
	Options []Option `yaml:"options" json:"options"`
}

// OptionIDs returns the ids of opts in order.
func OptionIDs(opts []Option) []string {
	ids := make([]string, 0, len(opts))
	for _, o := range opts {
		ids = append(ids, o.ID)
	}
	return ids
}
