package services

import (
	"sort"

	"github.com/biobank-directory/dirview/internal/domain/entities"
)

// Facet names understood by the network filter.
const (
	FacetFeatures        = "features"
	FacetJuridicalPerson = "juridical_person"
)

// FeatureFacet lists the network feature flags as options.
func FeatureFacet() entities.Facet {
	fs := entities.Features()
	opts := make([]entities.Option, 0, len(fs))
	for _, f := range fs {
		opts = append(opts, entities.Option{ID: f.Key, Label: f.Label})
	}
	return entities.Facet{Name: FacetFeatures, Label: "Network features", Options: opts}
}

// JuridicalPersonFacet lists the distinct juridical persons in networks,
// sorted alphabetically. Networks without one are skipped.
func JuridicalPersonFacet(networks []entities.Network) entities.Facet {
	seen := make(map[string]bool)
	var opts []entities.Option
	for _, n := range networks {
		if n.JuridicalPerson == "" || seen[n.JuridicalPerson] {
			continue
		}
		seen[n.JuridicalPerson] = true
		opts = append(opts, entities.Option{ID: n.JuridicalPerson, Label: n.JuridicalPerson})
	}
	sort.Slice(opts, func(i, j int) bool {
		return opts[i].Label < opts[j].Label
	})
	return entities.Facet{Name: FacetJuridicalPerson, Label: "Juridical person", Options: opts}
}

// BuildFacets returns every facet for the given networks in display order.
func BuildFacets(networks []entities.Network) []entities.Facet {
	return []entities.Facet{
		FeatureFacet(),
		JuridicalPersonFacet(networks),
	}
}
