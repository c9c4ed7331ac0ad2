// Package store holds the application state shared by the views: the current
// route, the network report being shown and the facet selections.
//
// Views read from the store and propose changes through its mutating
// methods; every change is a named mutation delivered to subscribers.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	apperrors "github.com/biobank-directory/dirview/internal/application/errors"
	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/domain/services"
	"github.com/biobank-directory/dirview/internal/domain/values"
	"github.com/google/uuid"
)

// MutationType names a state change.
type MutationType string

// Mutations committed by the store.
const (
	MutationSetRoute         MutationType = "SET_ROUTE"
	MutationSetNetworkReport MutationType = "SET_NETWORK_REPORT"
	MutationSetLoading       MutationType = "SET_LOADING"
	MutationSetFilter        MutationType = "SET_FILTER"
)

// Mutation describes a committed state change.
type Mutation struct {
	Payload any
	Type    MutationType
}

// FilterPayload is the payload of a SET_FILTER mutation.
type FilterPayload struct {
	Name  string
	Value []string
}

// Listener is notified after every mutation.
type Listener func(m Mutation)

// NetworkFinder is the read side of the network repository the store needs.
type NetworkFinder interface {
	FindReport(ctx context.Context, id values.NetworkID) (*entities.NetworkReport, error)
	FindAll(ctx context.Context) ([]entities.Network, error)
}

// Store is the single owner of shared view state. It is safe for concurrent
// use; listeners run on the goroutine that committed the mutation, after the
// state lock has been released, in subscription order.
type Store struct {
	networks  NetworkFinder
	logger    *slog.Logger
	report    *entities.NetworkReport
	filters   map[string][]string
	listeners map[uuid.UUID]Listener
	path      string
	order     []uuid.UUID
	mu        sync.RWMutex
	loading   bool
}

// New creates a store reading networks from finder.
func New(finder NetworkFinder, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		networks:  finder,
		logger:    logger,
		filters:   make(map[string][]string),
		listeners: make(map[uuid.UUID]Listener),
	}
}

// Subscribe registers fn and returns the handle to unsubscribe with.
func (s *Store) Subscribe(fn Listener) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[id] = fn
	s.order = append(s.order, id)
	return id
}

// Unsubscribe removes a listener. Unknown handles are ignored.
func (s *Store) Unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.listeners[id]; !ok {
		return
	}
	delete(s.listeners, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
}

// commit applies a mutation under the write lock, then notifies listeners.
func (s *Store) commit(m Mutation, apply func()) {
	s.mu.Lock()
	apply()
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	s.logger.Debug("store mutation", "type", m.Type)
	for _, fn := range listeners {
		fn(m)
	}
}

// Navigate sets the current route path.
func (s *Store) Navigate(path string) {
	s.commit(Mutation{Type: MutationSetRoute, Payload: path}, func() {
		s.path = path
	})
}

// CurrentPath returns the current route path.
func (s *Store) CurrentPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// NetworkReport returns a copy of the network being reported, or nil.
func (s *Store) NetworkReport() *entities.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report.GetNetwork().Clone()
}

// Report returns a copy of the full report slot: the network with its
// collections and biobanks, or nil.
func (s *Store) Report() *entities.NetworkReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report.Clone()
}

// IsLoading reports whether a network report is being fetched.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) setNetworkReport(r *entities.NetworkReport) {
	s.commit(Mutation{Type: MutationSetNetworkReport, Payload: r.Clone()}, func() {
		s.report = r.Clone()
	})
}

func (s *Store) setLoading(loading bool) {
	s.commit(Mutation{Type: MutationSetLoading, Payload: loading}, func() {
		s.loading = loading
	})
}

// Filter returns the selection of a facet. The result is a copy.
func (s *Store) Filter(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.filters[name])
}

// SetFilter replaces the selection of a facet. It is the owner side of a
// filter group's input event.
func (s *Store) SetFilter(name string, ids []string) {
	value := slices.Clone(ids)
	if value == nil {
		value = []string{}
	}
	s.commit(Mutation{Type: MutationSetFilter, Payload: FilterPayload{Name: name, Value: slices.Clone(value)}}, func() {
		s.filters[name] = value
	})
}

// Filters returns every facet selection. The result is a deep copy.
func (s *Store) Filters() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]string, len(s.filters))
	for name, ids := range s.filters {
		out[name] = slices.Clone(ids)
	}
	return out
}

// GetNetworkReport fetches a network and its related collections and
// biobanks into the report slot. While the fetch runs the store reports
// loading. On any failure the report is cleared and the error returned, so
// the slot never holds a network other than the one requested.
func (s *Store) GetNetworkReport(ctx context.Context, id string) error {
	networkID, err := values.NewNetworkID(id)
	if err != nil {
		s.setNetworkReport(nil)
		return apperrors.NewValidationError("network_id", err.Error())
	}
	return s.fetchReport(ctx, networkID)
}

// LoadNetworkReportForRoute fetches the network named by the trailing
// segment of the current path.
func (s *Store) LoadNetworkReportForRoute(ctx context.Context) error {
	path := s.CurrentPath()
	networkID, err := values.NetworkIDFromPath(path)
	if err != nil {
		s.setNetworkReport(nil)
		return apperrors.NewValidationError("network_id", fmt.Sprintf("route %q names no network: %v", path, err))
	}
	return s.fetchReport(ctx, networkID)
}

func (s *Store) fetchReport(ctx context.Context, networkID values.NetworkID) error {
	if s.networks == nil {
		s.setNetworkReport(nil)
		return apperrors.NewConfigurationError("store", "no network source configured", nil)
	}

	s.setLoading(true)
	defer s.setLoading(false)

	report, err := s.networks.FindReport(ctx, networkID)
	if err != nil {
		s.logger.Warn("failed to load network report", "network", networkID.String(), "error", err)
		s.setNetworkReport(nil)
		return fmt.Errorf("failed to load network report: %w", err)
	}

	s.logger.Debug("network report loaded",
		"network", networkID.String(),
		"collections", len(report.Collections),
		"biobanks", len(report.Biobanks))
	s.setNetworkReport(report)
	return nil
}

// FilteredNetworks returns the networks matching the current facet
// selections, in repository order.
func (s *Store) FilteredNetworks(ctx context.Context) ([]entities.Network, error) {
	if s.networks == nil {
		return nil, nil
	}
	all, err := s.networks.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	return services.NewNetworkFilterFromSelections(s.Filters()).Apply(all), nil
}
