package output

import (
	"encoding/json"
	"io"

	"github.com/biobank-directory/dirview/internal/application/dto"
	"github.com/biobank-directory/dirview/internal/domain/entities"
)

// JSONFormatter formats network views as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// FormatReport writes a network report as JSON.
func (f *JSONFormatter) FormatReport(report dto.NetworkReport) error {
	return f.write(report)
}

// FormatSummaries writes a network listing as JSON. An empty listing is
// written as [] rather than null.
func (f *JSONFormatter) FormatSummaries(summaries []dto.NetworkSummary) error {
	if summaries == nil {
		summaries = []dto.NetworkSummary{}
	}
	return f.write(summaries)
}

// FormatFacets writes the facets as JSON.
func (f *JSONFormatter) FormatFacets(facets []entities.Facet) error {
	if facets == nil {
		facets = []entities.Facet{}
	}
	return f.write(facets)
}

func (f *JSONFormatter) write(v any) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return err
	}

	_, err = f.writer.Write(data)
	if err != nil {
		return err
	}

	// Add newline for better terminal output
	_, err = f.writer.Write([]byte("\n"))
	return err
}
