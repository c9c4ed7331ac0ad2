package services

import (
	"fmt"
	"strings"

	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// NetworkSpecification defines a condition that a network must meet.
type NetworkSpecification interface {
	// IsSatisfiedBy checks if the network meets the specification.
	// Returns true if satisfied, along with a reason if not (or empty if satisfied).
	IsSatisfiedBy(n *entities.Network) (bool, string)
}

// AndSpecification combines multiple specifications with logical AND.
type AndSpecification struct {
	specs []NetworkSpecification
}

// NewAndSpecification creates a new AndSpecification.
func NewAndSpecification(specs ...NetworkSpecification) *AndSpecification {
	return &AndSpecification{specs: specs}
}

// IsSatisfiedBy checks if all specifications are satisfied.
func (s *AndSpecification) IsSatisfiedBy(n *entities.Network) (bool, string) {
	for _, spec := range s.specs {
		if satisfied, reason := spec.IsSatisfiedBy(n); !satisfied {
			return false, reason
		}
	}
	return true, ""
}

// NetworkIDsSpecification includes only the listed network IDs.
type NetworkIDsSpecification struct {
	ids map[string]bool
}

// NewNetworkIDsSpecification creates a new NetworkIDsSpecification.
func NewNetworkIDsSpecification(ids map[string]bool) *NetworkIDsSpecification {
	return &NetworkIDsSpecification{ids: ids}
}

// IsSatisfiedBy checks if the network ID is in the list.
func (s *NetworkIDsSpecification) IsSatisfiedBy(n *entities.Network) (bool, string) {
	if len(s.ids) == 0 {
		return true, ""
	}
	if s.ids[n.ID] {
		return true, ""
	}
	return false, "excluded by network id filter"
}

// FeaturesSpecification requires every listed feature flag to be set.
type FeaturesSpecification struct {
	keys []string
}

// NewFeaturesSpecification creates a new FeaturesSpecification.
func NewFeaturesSpecification(keys []string) *FeaturesSpecification {
	return &FeaturesSpecification{keys: keys}
}

// IsSatisfiedBy checks if the network has ALL of the features.
func (s *FeaturesSpecification) IsSatisfiedBy(n *entities.Network) (bool, string) {
	for _, key := range s.keys {
		if !n.HasFeature(key) {
			return false, fmt.Sprintf("missing feature %s", key)
		}
	}
	return true, ""
}

// JuridicalPersonSpecification includes networks run by any of the listed
// juridical persons.
type JuridicalPersonSpecification struct {
	persons map[string]bool
}

// NewJuridicalPersonSpecification creates a new JuridicalPersonSpecification.
func NewJuridicalPersonSpecification(persons map[string]bool) *JuridicalPersonSpecification {
	return &JuridicalPersonSpecification{persons: persons}
}

// IsSatisfiedBy checks if the juridical person is in the list.
func (s *JuridicalPersonSpecification) IsSatisfiedBy(n *entities.Network) (bool, string) {
	if len(s.persons) == 0 {
		return true, ""
	}
	if s.persons[n.JuridicalPerson] {
		return true, ""
	}
	return false, "excluded by juridical person filter"
}

// NetworkEnv defines the variables available during filter expression evaluation.
type NetworkEnv struct {
	ID              string   `expr:"id"`
	Name            string   `expr:"name"`
	Description     string   `expr:"description"`
	JuridicalPerson string   `expr:"juridical_person"`
	URL             string   `expr:"url"`
	Email           string   `expr:"email"`
	Features        []string `expr:"features"`

	CommonCollectionFocus    bool `expr:"common_collection_focus"`
	CommonCharter            bool `expr:"common_charter"`
	CommonSOPs               bool `expr:"common_sops"`
	CommonDataAccessPolicy   bool `expr:"common_data_access_policy"`
	CommonSampleAccessPolicy bool `expr:"common_sample_access_policy"`
	CommonMTA                bool `expr:"common_mta"`
	CommonImageAccessPolicy  bool `expr:"common_image_access_policy"`
	CommonImageMTA           bool `expr:"common_image_mta"`
	CommonRepresentation     bool `expr:"common_representation"`
	CommonURL                bool `expr:"common_url"`
}

// NewNetworkEnv builds the expression environment for n.
func NewNetworkEnv(n *entities.Network) NetworkEnv {
	return NetworkEnv{
		ID:                       n.ID,
		Name:                     n.Name,
		Description:              n.Description,
		JuridicalPerson:          n.JuridicalPerson,
		URL:                      n.URL,
		Email:                    n.Email(),
		Features:                 n.EnabledFeatures(),
		CommonCollectionFocus:    n.CommonCollectionFocus,
		CommonCharter:            n.CommonCharter,
		CommonSOPs:               n.CommonSOPs,
		CommonDataAccessPolicy:   n.CommonDataAccessPolicy,
		CommonSampleAccessPolicy: n.CommonSampleAccessPolicy,
		CommonMTA:                n.CommonMTA,
		CommonImageAccessPolicy:  n.CommonImageAccessPolicy,
		CommonImageMTA:           n.CommonImageMTA,
		CommonRepresentation:     n.CommonRepresentation,
		CommonURL:                n.CommonURL,
	}
}

// CompileNetworkExpression compiles a boolean filter expression against NetworkEnv.
func CompileNetworkExpression(source string) (*vm.Program, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("filter expression is empty")
	}
	return expr.Compile(source, expr.Env(NetworkEnv{}), expr.AsBool())
}

// ExpressionSpecification filters networks using an expr program.
type ExpressionSpecification struct {
	program *vm.Program
}

// NewExpressionSpecification creates a new ExpressionSpecification.
func NewExpressionSpecification(program *vm.Program) *ExpressionSpecification {
	return &ExpressionSpecification{program: program}
}

// IsSatisfiedBy evaluates the expr program against the network.
func (s *ExpressionSpecification) IsSatisfiedBy(n *entities.Network) (bool, string) {
	if s.program == nil {
		return true, ""
	}

	output, err := expr.Run(s.program, NewNetworkEnv(n))
	if err != nil {
		return false, fmt.Sprintf("filter expression error: %v", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Sprintf("filter expression did not return boolean: %v", output)
	}

	if !result {
		return false, "excluded by --where expression"
	}

	return true, ""
}
