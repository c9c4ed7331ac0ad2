package dto

// ListNetworksRequest describes a filtered network listing.
type ListNetworksRequest struct {
	// Selections holds facet selections keyed by facet name.
	Selections map[string][]string

	// Where is an optional expr filter expression.
	Where string
}
