// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/biobank-directory/dirview/internal/application/dto"
	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/infrastructure/system"
)

// DatasetLoader reads directory dataset files.
type DatasetLoader interface {
	// Load reads, validates and merges the files in order. Later files
	// replace networks with the same ID.
	Load(ctx context.Context, paths []string) (*entities.Directory, error)
}

// SystemConfigProvider loads system configuration.
type SystemConfigProvider interface {
	LoadConfig(ctx context.Context, path string) (*system.Config, error)
}

// ReportFormatter writes network views in one output format.
type ReportFormatter interface {
	FormatReport(report dto.NetworkReport) error
	FormatSummaries(summaries []dto.NetworkSummary) error
	FormatFacets(facets []entities.Facet) error
}

// FormatterOptions tunes formatter output.
type FormatterOptions struct {
	Indent bool
	Color  bool
}

// FormatterFactory creates formatters by format name.
type FormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (ReportFormatter, error)
	SupportedFormats() []string
}
