// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/biobank-directory/dirview/internal/application/dto"
	apperrors "github.com/biobank-directory/dirview/internal/application/errors"
	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/domain/repositories"
	"github.com/biobank-directory/dirview/internal/domain/services"
)

// NetworkService answers listing and facet queries over the loaded directory.
type NetworkService struct {
	repo   repositories.NetworkRepository
	logger *slog.Logger
}

// NewNetworkService creates a new network service.
func NewNetworkService(repo repositories.NetworkRepository, logger *slog.Logger) *NetworkService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NetworkService{repo: repo, logger: logger}
}

// ListNetworks returns the networks matching the request, in directory order.
func (s *NetworkService) ListNetworks(ctx context.Context, req dto.ListNetworksRequest) ([]dto.NetworkSummary, error) {
	if err := validateSelections(req.Selections); err != nil {
		return nil, err
	}

	filter := services.NewNetworkFilterFromSelections(req.Selections)
	if strings.TrimSpace(req.Where) != "" {
		program, err := services.CompileNetworkExpression(req.Where)
		if err != nil {
			return nil, apperrors.NewValidationError("where", "invalid filter expression", err.Error())
		}
		filter.WithExpression(program)
	}

	networks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}

	summaries := make([]dto.NetworkSummary, 0, len(networks))
	for i := range networks {
		ok, reason := filter.Matches(&networks[i])
		if !ok {
			s.logger.Debug("network excluded", "network", networks[i].ID, "reason", reason)
			continue
		}
		summaries = append(summaries, ToSummary(&networks[i]))
	}

	s.logger.Debug("networks listed", "total", len(networks), "matched", len(summaries))
	return summaries, nil
}

// Facets returns the filter facets for the loaded networks.
func (s *NetworkService) Facets(ctx context.Context) ([]entities.Facet, error) {
	networks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	return services.BuildFacets(networks), nil
}

// Networks returns every loaded network.
func (s *NetworkService) Networks(ctx context.Context) ([]entities.Network, error) {
	return s.repo.FindAll(ctx)
}

// ToSummary converts a network into a listing row.
func ToSummary(n *entities.Network) dto.NetworkSummary {
	return dto.NetworkSummary{
		ID:              n.ID,
		Name:            n.Title(),
		JuridicalPerson: n.JuridicalPerson,
		Features:        n.EnabledFeatures(),
	}
}

// validateSelections rejects feature ids that name no feature.
func validateSelections(selections map[string][]string) error {
	var unknown []string
	for _, key := range selections[services.FacetFeatures] {
		if _, ok := entities.FeatureByKey(key); !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return apperrors.NewValidationError("features", "unknown feature", unknown...)
	}
	return nil
}
