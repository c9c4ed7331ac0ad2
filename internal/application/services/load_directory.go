package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/biobank-directory/dirview/internal/application/ports"
	"github.com/biobank-directory/dirview/internal/domain/repositories"
)

// LoadDirectoryUseCase reads the dataset files into the network repository.
type LoadDirectoryUseCase struct {
	loader ports.DatasetLoader
	repo   repositories.NetworkRepository
	logger *slog.Logger
}

// NewLoadDirectoryUseCase creates a new load directory use case.
func NewLoadDirectoryUseCase(loader ports.DatasetLoader, repo repositories.NetworkRepository, logger *slog.Logger) *LoadDirectoryUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadDirectoryUseCase{loader: loader, repo: repo, logger: logger}
}

// Execute loads paths and stores every network, biobank and collection. It
// returns the number of networks in the merged directory.
func (uc *LoadDirectoryUseCase) Execute(ctx context.Context, paths []string) (int, error) {
	startTime := time.Now()
	uc.logger.Info("loading directory", "files", len(paths))

	dir, err := uc.loader.Load(ctx, paths)
	if err != nil {
		return 0, err
	}

	for i := range dir.Networks {
		if err := uc.repo.Save(ctx, &dir.Networks[i]); err != nil {
			return 0, fmt.Errorf("failed to store network %s: %w", dir.Networks[i].ID, err)
		}
	}
	for i := range dir.Biobanks {
		if err := uc.repo.SaveBiobank(ctx, &dir.Biobanks[i]); err != nil {
			return 0, fmt.Errorf("failed to store biobank %s: %w", dir.Biobanks[i].ID, err)
		}
	}
	for i := range dir.Collections {
		if err := uc.repo.SaveCollection(ctx, &dir.Collections[i]); err != nil {
			return 0, fmt.Errorf("failed to store collection %s: %w", dir.Collections[i].ID, err)
		}
	}

	uc.logger.Info("directory loaded",
		"networks", len(dir.Networks),
		"biobanks", len(dir.Biobanks),
		"collections", len(dir.Collections),
		"schema_version", dir.SchemaVersion,
		"duration", time.Since(startTime))
	return len(dir.Networks), nil
}
