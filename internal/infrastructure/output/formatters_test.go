package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biobank-directory/dirview/internal/application/dto"
	"github.com/biobank-directory/dirview/internal/domain/entities"
)

func sampleReport() dto.NetworkReport {
	return dto.NetworkReport{
		ID:    "n-001",
		Title: "beautiful network",
		Contact: map[string]dto.Field{
			"email": {Label: "Email", Value: "blaat@bla.nl", Type: "email"},
		},
		Identity: []dto.Field{
			{Label: "Name", Value: "beautiful network", Type: "string"},
		},
		Details: []dto.Field{
			{Label: "Common collection focus", Value: true, Type: "boolean"},
			{Label: "Common SOPS", Value: false, Type: "boolean"},
		},
	}
}

func sampleSummaries() []dto.NetworkSummary {
	return []dto.NetworkSummary{
		{ID: "n-001", Name: "beautiful network", JuridicalPerson: "BBMRI-ERIC", Features: []string{"common_mta"}},
		{ID: "n-002", Name: "n-002"},
	}
}

func TestTextFormatter_FormatReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).FormatReport(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "beautiful network (n-001)")
	assert.Contains(t, out, "Email:")
	assert.Contains(t, out, "blaat@bla.nl")
	assert.Contains(t, out, "Common collection focus:")
	assert.Contains(t, out, "✓ yes")
	assert.Contains(t, out, "✗ no")
	assert.NotContains(t, out, "Collections", "no relations section without relations")
	assert.NotContains(t, out, "\033[", "color is off by default")
}

func TestTextFormatter_FormatReportRelations(t *testing.T) {
	report := sampleReport()
	report.Collections = []dto.Link{{ID: "c-001", Name: "Blood samples", Path: "/collection/c-001"}}
	report.Biobanks = []dto.Link{}

	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).FormatReport(report))

	out := buf.String()
	assert.Contains(t, out, "Collections (1):")
	assert.Contains(t, out, "Blood samples")
	assert.Contains(t, out, "/collection/c-001")
	assert.Contains(t, out, "Biobanks (0):")
	assert.Contains(t, out, "(no biobanks)")
}

func TestTextFormatter_FormatValueByType(t *testing.T) {
	f := NewTextFormatter(&bytes.Buffer{})
	f.EnableColor = true

	assert.Equal(t, colorCyan+"blaat@bla.nl"+colorReset, f.formatValue(dto.Field{Value: "blaat@bla.nl", Type: "email"}))
	assert.Equal(t, colorCyan+"https://x.org"+colorReset, f.formatValue(dto.Field{Value: "https://x.org", Type: "URL"}))
	assert.Equal(t, "plain", f.formatValue(dto.Field{Value: "plain", Type: "string"}))
	assert.Equal(t, colorGreen+"✓ yes"+colorReset, f.formatValue(dto.Field{Value: true, Type: "boolean"}))
	assert.Equal(t, "true", f.formatValue(dto.Field{Value: true, Type: "string"}))
	assert.Equal(t, "x", f.formatValue(dto.Field{Value: "x", Type: "unknown"}))
	assert.Equal(t, "", f.formatValue(dto.Field{Type: "string"}))
}

func TestTextFormatter_Color(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf)
	f.EnableColor = true

	require.NoError(t, f.FormatReport(sampleReport()))
	assert.Contains(t, buf.String(), colorGreen+"✓ yes"+colorReset)
}

func TestTextFormatter_FormatSummaries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).FormatSummaries(sampleSummaries()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "n-001  beautiful network [BBMRI-ERIC]", lines[0])
	assert.Equal(t, "n-002  n-002", lines[1])
	assert.Equal(t, "2 network(s)", lines[3])
}

func TestTextFormatter_FormatSummaries_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).FormatSummaries(nil))
	assert.Equal(t, "No networks match.\n", buf.String())
}

func TestTextFormatter_FormatFacets(t *testing.T) {
	var buf bytes.Buffer
	facets := []entities.Facet{
		{Name: "features", Label: "Network features", Options: []entities.Option{{ID: "common_mta", Label: "Common MTA"}}},
		{Name: "juridical_person", Label: "Juridical person"},
	}

	require.NoError(t, NewTextFormatter(&buf).FormatFacets(facets))

	out := buf.String()
	assert.Contains(t, out, "Network features (features)")
	assert.Contains(t, out, "common_mta")
	assert.Contains(t, out, "(no options)")
}

func TestJSONFormatter_FormatReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).FormatReport(sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "n-001", decoded["id"])

	contact := decoded["contact"].(map[string]any)
	email := contact["email"].(map[string]any)
	assert.Equal(t, "blaat@bla.nl", email["value"])
	assert.Equal(t, "email", email["type"])
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestJSONFormatter_EmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).FormatSummaries(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLFormatter_FormatSummaries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).FormatSummaries(sampleSummaries()))

	var decoded []dto.NetworkSummary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleSummaries(), decoded)
}

func TestYAMLFormatter_FormatReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).FormatReport(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "id: n-001")
	assert.Contains(t, out, "blaat@bla.nl")
}
