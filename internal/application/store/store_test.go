package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	apperrors "github.com/biobank-directory/dirview/internal/application/errors"
	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/domain/services"
	"github.com/biobank-directory/dirview/internal/domain/values"
	"github.com/biobank-directory/dirview/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	repo, err := memory.NewNetworkRepositoryFrom([]entities.Network{
		{ID: "n-001", Name: "beautiful network", JuridicalPerson: "BBMRI-ERIC", CommonMTA: true, Contact: &entities.Contact{Email: "blaat@bla.nl"}},
		{ID: "n-002", Name: "other network", JuridicalPerson: "UMCG", CommonMTA: true, CommonCharter: true},
		{ID: "n-003", Name: "third network", JuridicalPerson: "BBMRI-ERIC"},
	})
	require.NoError(t, err)
	return New(repo, nil)
}

func TestStore_Navigate(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	s.Navigate("/network/n-001")
	assert.Equal(t, "/network/n-001", s.CurrentPath())
}

func TestStore_GetNetworkReport(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.NoError(t, s.GetNetworkReport(context.Background(), "n-001"))

	report := s.NetworkReport()
	require.NotNil(t, report)
	assert.Equal(t, "beautiful network", report.Name)
	assert.Equal(t, "blaat@bla.nl", report.Email())
	assert.False(t, s.IsLoading())
}

func TestStore_GetNetworkReport_LoadingSequence(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	var types []MutationType
	var loadingDuringFetch bool
	s.Subscribe(func(m Mutation) {
		types = append(types, m.Type)
		if m.Type == MutationSetLoading && m.Payload == true {
			loadingDuringFetch = s.IsLoading()
		}
	})

	require.NoError(t, s.GetNetworkReport(context.Background(), "n-002"))

	assert.True(t, loadingDuringFetch, "listeners run after the lock is released")
	assert.Equal(t, []MutationType{MutationSetLoading, MutationSetNetworkReport, MutationSetLoading}, types)
}

func TestStore_GetNetworkReport_NotFound(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.GetNetworkReport(context.Background(), "n-001"))

	err := s.GetNetworkReport(context.Background(), "missing")

	require.Error(t, err)
	var notFound *entities.NetworkNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
	assert.Nil(t, s.NetworkReport())
	assert.False(t, s.IsLoading())
}

func TestStore_GetNetworkReport_InvalidID(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	err := s.GetNetworkReport(context.Background(), "  ")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "network_id", validation.Field)
}

func TestStore_GetNetworkReport_InvalidIDClearsReport(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.GetNetworkReport(context.Background(), "n-001"))
	require.NotNil(t, s.NetworkReport())

	var payloads []any
	s.Subscribe(func(m Mutation) {
		if m.Type == MutationSetNetworkReport {
			payloads = append(payloads, m.Payload)
		}
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, s.GetNetworkReport(context.Background(), "  "), &validation)
	assert.Nil(t, s.NetworkReport())
	assert.Nil(t, s.Report())
	assert.False(t, s.IsLoading())
	require.Len(t, payloads, 1)
	assert.Nil(t, payloads[0])
}

func TestStore_GetNetworkReport_NoSource(t *testing.T) {
	t.Parallel()
	s := New(nil, nil)

	var types []MutationType
	s.Subscribe(func(m Mutation) { types = append(types, m.Type) })

	var cfgErr *apperrors.ConfigurationError
	require.ErrorAs(t, s.GetNetworkReport(context.Background(), "n-001"), &cfgErr)
	assert.Nil(t, s.NetworkReport())
	assert.Equal(t, []MutationType{MutationSetNetworkReport}, types, "no loading toggle without a source")
}

func TestStore_LoadNetworkReportForRoute(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	s.Navigate("/network/n-003/")
	require.NoError(t, s.LoadNetworkReportForRoute(context.Background()))
	assert.Equal(t, "n-003", s.NetworkReport().ID)
}

func TestStore_LoadNetworkReportForRoute_RootClearsReport(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.GetNetworkReport(context.Background(), "n-001"))

	s.Navigate("/")
	err := s.LoadNetworkReportForRoute(context.Background())

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "network_id", validation.Field)
	assert.Nil(t, s.NetworkReport(), "a stale report must not survive a route without a network")
	assert.False(t, s.IsLoading())
}

func TestStore_LoadNetworkReportForRoute_RouteRootClearsReport(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.GetNetworkReport(context.Background(), "n-002"))

	s.Navigate("/network/")
	require.Error(t, s.LoadNetworkReportForRoute(context.Background()))
	assert.Nil(t, s.NetworkReport())
}

func TestStore_Report_Relations(t *testing.T) {
	t.Parallel()
	repo, err := memory.NewNetworkRepositoryFromDirectory(&entities.Directory{
		Networks: []entities.Network{{ID: "n-001", Name: "beautiful network"}, {ID: "n-002"}},
		Biobanks: []entities.Biobank{
			{ID: "b-001", Name: "Central biobank", Networks: []string{"n-001"}},
			{ID: "b-002", Networks: []string{"n-002"}},
		},
		Collections: []entities.Collection{
			{ID: "c-001", Biobank: "b-001", Networks: []string{"n-001", "n-002"}},
			{ID: "c-002", Biobank: "b-002", Networks: []string{"n-002"}},
		},
	})
	require.NoError(t, err)
	s := New(repo, nil)

	require.NoError(t, s.GetNetworkReport(context.Background(), "n-001"))

	report := s.Report()
	require.NotNil(t, report)
	assert.Equal(t, "n-001", report.GetNetwork().ID)
	require.Len(t, report.Collections, 1)
	assert.Equal(t, "c-001", report.Collections[0].ID)
	require.Len(t, report.Biobanks, 1)
	assert.Equal(t, "b-001", report.Biobanks[0].ID)

	report.Collections[0].Networks[0] = "changed"
	assert.Equal(t, "n-001", s.Report().Collections[0].Networks[0])
}

func TestStore_NetworkReportIsACopy(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.GetNetworkReport(context.Background(), "n-001"))

	s.NetworkReport().Contact.Email = "changed"
	assert.Equal(t, "blaat@bla.nl", s.NetworkReport().Email())
}

func TestStore_SetFilter(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	ids := []string{"common_mta"}
	s.SetFilter(services.FacetFeatures, ids)
	ids[0] = "mutated"

	assert.Equal(t, []string{"common_mta"}, s.Filter(services.FacetFeatures))
	assert.Empty(t, s.Filter(services.FacetJuridicalPerson))

	s.SetFilter(services.FacetFeatures, nil)
	assert.Equal(t, []string{}, s.Filter(services.FacetFeatures))
}

func TestStore_FiltersIsACopy(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.SetFilter("a", []string{"1"})

	filters := s.Filters()
	filters["a"][0] = "x"
	filters["b"] = []string{"2"}

	assert.Equal(t, map[string][]string{"a": {"1"}}, s.Filters())
}

func TestStore_SetFilterMutationPayload(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	var got []Mutation
	s.Subscribe(func(m Mutation) { got = append(got, m) })

	s.SetFilter("features", []string{"common_mta", "common_charter"})

	require.Len(t, got, 1)
	assert.Equal(t, MutationSetFilter, got[0].Type)
	assert.Equal(t, FilterPayload{Name: "features", Value: []string{"common_mta", "common_charter"}}, got[0].Payload)
}

func TestStore_FilteredNetworks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	all, err := s.FilteredNetworks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	s.SetFilter(services.FacetFeatures, []string{"common_mta"})
	got, err := s.FilteredNetworks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"n-001", "n-002"}, networkIDs(got))

	s.SetFilter(services.FacetJuridicalPerson, []string{"UMCG"})
	got, err = s.FilteredNetworks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"n-002"}, networkIDs(got))
}

func TestStore_FilteredNetworks_SourceError(t *testing.T) {
	t.Parallel()
	s := New(failingFinder{}, nil)

	_, err := s.FilteredNetworks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func TestStore_SubscribeOrderAndUnsubscribe(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	var calls []string
	first := s.Subscribe(func(Mutation) { calls = append(calls, "first") })
	s.Subscribe(func(Mutation) { calls = append(calls, "second") })

	s.Navigate("/a")
	assert.Equal(t, []string{"first", "second"}, calls)

	s.Unsubscribe(first)
	s.Unsubscribe(first)
	s.Navigate("/b")
	assert.Equal(t, []string{"first", "second", "second"}, calls)
}

func TestStore_ListenerMayCallBack(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	var seen string
	s.Subscribe(func(m Mutation) {
		if m.Type == MutationSetRoute {
			seen = s.CurrentPath()
		}
	})

	assert.NotPanics(t, func() { s.Navigate("/network/n-002") })
	assert.Equal(t, "/network/n-002", seen)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SetFilter("features", []string{"common_mta"})
			_ = s.Filters()
			_ = s.GetNetworkReport(ctx, "n-001")
			_, _ = s.FilteredNetworks(ctx)
			s.Navigate("/network/n-002")
			_ = s.NetworkReport()
		}(i)
	}
	wg.Wait()

	assert.False(t, s.IsLoading())
}

var errBoom = errors.New("boom")

type failingFinder struct{}

func (failingFinder) FindReport(context.Context, values.NetworkID) (*entities.NetworkReport, error) {
	return nil, errBoom
}

func (failingFinder) FindAll(context.Context) ([]entities.Network, error) {
	return nil, errBoom
}

func networkIDs(networks []entities.Network) []string {
	out := make([]string, 0, len(networks))
	for _, n := range networks {
		out = append(out, n.ID)
	}
	return out
}
