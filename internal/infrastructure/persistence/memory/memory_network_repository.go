// Package memory provides in-memory implementations of domain repositories.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/domain/repositories"
	"github.com/biobank-directory/dirview/internal/domain/values"
)

// Ensure interface compliance
var _ repositories.NetworkRepository = (*NetworkRepository)(nil)

// NetworkRepository is an in-memory implementation of NetworkRepository.
// Entities are stored by value; callers get copies and cannot mutate stored state.
type NetworkRepository struct {
	networks    map[string]entities.Network
	biobanks    map[string]entities.Biobank
	collections map[string]entities.Collection
	order       []string
	biobankIDs  []string
	collIDs     []string
	mu          sync.RWMutex
}

// NewNetworkRepository creates a new in-memory repository.
func NewNetworkRepository() *NetworkRepository {
	return &NetworkRepository{
		networks:    make(map[string]entities.Network),
		biobanks:    make(map[string]entities.Biobank),
		collections: make(map[string]entities.Collection),
	}
}

// NewNetworkRepositoryFromDirectory creates a repository seeded with every
// entity of dir.
func NewNetworkRepositoryFromDirectory(dir *entities.Directory) (*NetworkRepository, error) {
	repo, err := NewNetworkRepositoryFrom(dir.Networks)
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	for i := range dir.Biobanks {
		if err := repo.SaveBiobank(ctx, &dir.Biobanks[i]); err != nil {
			return nil, err
		}
	}
	for i := range dir.Collections {
		if err := repo.SaveCollection(ctx, &dir.Collections[i]); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// NewNetworkRepositoryFrom creates a repository seeded with networks.
func NewNetworkRepositoryFrom(networks []entities.Network) (*NetworkRepository, error) {
	repo := NewNetworkRepository()
	for i := range networks {
		if err := repo.Save(context.Background(), &networks[i]); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// Save stores a network, replacing any network with the same ID.
func (r *NetworkRepository) Save(_ context.Context, network *entities.Network) error {
	if network == nil {
		return fmt.Errorf("cannot save nil network")
	}
	id, err := values.NewNetworkID(network.ID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.networks[id.String()]; !exists {
		r.order = append(r.order, id.String())
	}
	r.networks[id.String()] = cloneNetwork(*network)
	return nil
}

// FindByID retrieves a network by its ID.
func (r *NetworkRepository) FindByID(_ context.Context, id values.NetworkID) (*entities.Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	network, ok := r.networks[id.String()]
	if !ok {
		return nil, &entities.NetworkNotFoundError{ID: id.String()}
	}
	clone := cloneNetwork(network)
	return &clone, nil
}

// FindAll returns every network in insertion order.
func (r *NetworkRepository) FindAll(_ context.Context) ([]entities.Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Network, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneNetwork(r.networks[id]))
	}
	return out, nil
}

// Count returns the number of stored networks.
func (r *NetworkRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.networks), nil
}

// SaveBiobank stores a biobank, replacing any biobank with the same ID.
func (r *NetworkRepository) SaveBiobank(_ context.Context, biobank *entities.Biobank) error {
	if biobank == nil || strings.TrimSpace(biobank.ID) == "" {
		return fmt.Errorf("invalid biobank: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.biobanks[biobank.ID]; !exists {
		r.biobankIDs = append(r.biobankIDs, biobank.ID)
	}
	b := *biobank
	b.Networks = slices.Clone(b.Networks)
	r.biobanks[b.ID] = b
	return nil
}

// SaveCollection stores a collection, replacing any collection with the same ID.
func (r *NetworkRepository) SaveCollection(_ context.Context, collection *entities.Collection) error {
	if collection == nil || strings.TrimSpace(collection.ID) == "" {
		return fmt.Errorf("invalid collection: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collections[collection.ID]; !exists {
		r.collIDs = append(r.collIDs, collection.ID)
	}
	c := *collection
	c.Networks = slices.Clone(c.Networks)
	r.collections[c.ID] = c
	return nil
}

// FindReport retrieves a network with the collections and biobanks that list it.
func (r *NetworkRepository) FindReport(ctx context.Context, id values.NetworkID) (*entities.NetworkReport, error) {
	network, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	report := &entities.NetworkReport{Network: network}
	for _, cid := range r.collIDs {
		if c := r.collections[cid]; c.InNetwork(network.ID) {
			report.Collections = append(report.Collections, c)
		}
	}
	for _, bid := range r.biobankIDs {
		if b := r.biobanks[bid]; b.InNetwork(network.ID) {
			report.Biobanks = append(report.Biobanks, b)
		}
	}
	// Stored values share Networks slices; hand out a detached copy.
	return report.Clone(), nil
}

func cloneNetwork(n entities.Network) entities.Network {
	return *n.Clone()
}
