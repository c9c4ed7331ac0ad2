package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/biobank-directory/dirview/internal/application/dto"
	"github.com/biobank-directory/dirview/internal/domain/entities"
)

// YAMLFormatter formats network views as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// FormatReport writes a network report as YAML.
func (f *YAMLFormatter) FormatReport(report dto.NetworkReport) error {
	return f.encode(report)
}

// FormatSummaries writes a network listing as YAML.
func (f *YAMLFormatter) FormatSummaries(summaries []dto.NetworkSummary) error {
	return f.encode(summaries)
}

// FormatFacets writes the facets as YAML.
func (f *YAMLFormatter) FormatFacets(facets []entities.Facet) error {
	return f.encode(facets)
}

func (f *YAMLFormatter) encode(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
