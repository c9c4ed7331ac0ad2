package services

import (
	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/expr-lang/expr/vm"
)

// NetworkFilter selects networks by id, feature flags, juridical person and
// an optional expression. Criteria are combined with AND; options within the
// juridical person facet are combined with OR.
type NetworkFilter struct {
	networkIDs       map[string]bool
	juridicalPersons map[string]bool
	features         []string
	program          *vm.Program
}

// NewNetworkFilter initializes a new empty filter.
func NewNetworkFilter() *NetworkFilter {
	return &NetworkFilter{
		networkIDs:       make(map[string]bool),
		juridicalPersons: make(map[string]bool),
	}
}

// NewNetworkFilterFromSelections builds a filter from facet selections keyed
// by facet name, as kept by the application store. Unknown facets are ignored.
func NewNetworkFilterFromSelections(selections map[string][]string) *NetworkFilter {
	return NewNetworkFilter().
		WithFeatures(selections[FacetFeatures]).
		WithJuridicalPersons(selections[FacetJuridicalPerson])
}

// WithNetworkIDs restricts the result to the specified network IDs.
func (f *NetworkFilter) WithNetworkIDs(ids []string) *NetworkFilter {
	f.networkIDs = toSet(ids)
	return f
}

// WithFeatures requires every listed feature flag.
func (f *NetworkFilter) WithFeatures(keys []string) *NetworkFilter {
	f.features = append([]string(nil), keys...)
	return f
}

// WithJuridicalPersons includes only networks run by one of persons.
func (f *NetworkFilter) WithJuridicalPersons(persons []string) *NetworkFilter {
	f.juridicalPersons = toSet(persons)
	return f
}

// WithExpression applies a compiled expr program for advanced filtering.
func (f *NetworkFilter) WithExpression(program *vm.Program) *NetworkFilter {
	f.program = program
	return f
}

// Matches evaluates whether a network satisfies the filter, along with a
// reason when it does not.
func (f *NetworkFilter) Matches(n *entities.Network) (bool, string) {
	var specs []NetworkSpecification

	if len(f.networkIDs) > 0 {
		specs = append(specs, NewNetworkIDsSpecification(f.networkIDs))
	}
	if len(f.features) > 0 {
		specs = append(specs, NewFeaturesSpecification(f.features))
	}
	if len(f.juridicalPersons) > 0 {
		specs = append(specs, NewJuridicalPersonSpecification(f.juridicalPersons))
	}
	if f.program != nil {
		specs = append(specs, NewExpressionSpecification(f.program))
	}

	return NewAndSpecification(specs...).IsSatisfiedBy(n)
}

// Apply returns the networks that match, preserving input order.
func (f *NetworkFilter) Apply(networks []entities.Network) []entities.Network {
	out := make([]entities.Network, 0, len(networks))
	for i := range networks {
		if ok, _ := f.Matches(&networks[i]); ok {
			out = append(out, networks[i])
		}
	}
	return out
}

// toSet converts a slice to a map (set)
func toSet(slice []string) map[string]bool {
	s := make(map[string]bool, len(slice))
	for _, item := range slice {
		s[item] = true
	}
	return s
}
