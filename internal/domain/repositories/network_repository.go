// Package repositories defines interfaces for domain persistence.
package repositories

import (
	"context"

	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/domain/values"
)

// NetworkRepository defines the interface for storing and querying networks.
type NetworkRepository interface {
	// Save stores a network, replacing any network with the same ID.
	Save(ctx context.Context, network *entities.Network) error

	// FindByID retrieves a network by its ID.
	// Returns *entities.NetworkNotFoundError when it does not exist.
	FindByID(ctx context.Context, id values.NetworkID) (*entities.Network, error)

	// FindAll returns every network in insertion order.
	FindAll(ctx context.Context) ([]entities.Network, error)

	// Count returns the number of stored networks.
	Count(ctx context.Context) (int, error)

	// SaveBiobank stores a biobank, replacing any biobank with the same ID.
	SaveBiobank(ctx context.Context, biobank *entities.Biobank) error

	// SaveCollection stores a collection, replacing any collection with the same ID.
	SaveCollection(ctx context.Context, collection *entities.Collection) error

	// FindReport retrieves a network with the collections and biobanks that
	// list it, each in insertion order.
	// Returns *entities.NetworkNotFoundError when the network does not exist.
	FindReport(ctx context.Context, id values.NetworkID) (*entities.NetworkReport, error)
}
