// Package container provides dependency injection for the application.
package container

import (
	"context"
	"log/slog"

	"github.com/biobank-directory/dirview/internal/application/ports"
	"github.com/biobank-directory/dirview/internal/application/services"
	"github.com/biobank-directory/dirview/internal/application/store"
	"github.com/biobank-directory/dirview/internal/infrastructure/adapters"
	"github.com/biobank-directory/dirview/internal/infrastructure/dataset"
	"github.com/biobank-directory/dirview/internal/infrastructure/output"
	"github.com/biobank-directory/dirview/internal/infrastructure/persistence/memory"
	"github.com/biobank-directory/dirview/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	systemConfig      ports.SystemConfigProvider
	formatterFactory  ports.FormatterFactory
	networkService    *services.NetworkService
	loadDirectoryCase *services.LoadDirectoryUseCase
	store             *store.Store
	systemCfg         *system.Config
	logger            *slog.Logger
	datasetPaths      []string
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	SystemConfigPath string
	// DatasetPaths override the dataset paths of the system config.
	DatasetPaths []string
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	// Load system config
	systemConfigAdapter := adapters.NewSystemConfigAdapter()
	systemCfg, err := systemConfigAdapter.LoadConfig(context.TODO(), opts.SystemConfigPath)
	if err != nil {
		opts.Logger.Debug("failed to load system config, using defaults", "error", err)
		systemCfg = system.DefaultConfig()
	}

	// Command-line dataset paths take precedence over the config file
	datasetPaths := opts.DatasetPaths
	if len(datasetPaths) == 0 {
		datasetPaths = systemCfg.Dataset.Paths
	}

	// Persistence and dataset infrastructure
	networkRepo := memory.NewNetworkRepository()
	loader := dataset.NewLoader(opts.Logger, systemCfg.Dataset.Concurrency)

	return &Container{
		systemConfig:      systemConfigAdapter,
		formatterFactory:  output.NewFormatterFactory(),
		networkService:    services.NewNetworkService(networkRepo, opts.Logger),
		loadDirectoryCase: services.NewLoadDirectoryUseCase(loader, networkRepo, opts.Logger),
		store:             store.New(networkRepo, opts.Logger),
		systemCfg:         systemCfg,
		logger:            opts.Logger,
		datasetPaths:      datasetPaths,
	}, nil
}

// LoadDirectory loads the configured dataset files into the repository.
func (c *Container) LoadDirectory(ctx context.Context) (int, error) {
	return c.loadDirectoryCase.Execute(ctx, c.datasetPaths)
}

// DatasetPaths returns the dataset files the container loads.
func (c *Container) DatasetPaths() []string {
	return c.datasetPaths
}

// NetworkService returns the network query service.
func (c *Container) NetworkService() *services.NetworkService {
	return c.networkService
}

// Store returns the application store.
func (c *Container) Store() *store.Store {
	return c.store
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.FormatterFactory {
	return c.formatterFactory
}

// SystemConfigProvider returns the system config port.
func (c *Container) SystemConfigProvider() ports.SystemConfigProvider {
	return c.systemConfig
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
