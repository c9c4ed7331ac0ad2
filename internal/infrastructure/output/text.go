package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/biobank-directory/dirview/internal/application/dto"
	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/domain/values"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
)

const ruleWidth = 60

// TextFormatter formats network views as human-readable text.
type TextFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTextFormatter creates a new text formatter with color disabled.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TextFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

func (f *TextFormatter) rule() string {
	return f.colorize(strings.Repeat("─", ruleWidth), colorGray)
}

// FormatReport writes a network report card.
//
//nolint:errcheck // Best-effort terminal output
func (f *TextFormatter) FormatReport(report dto.NetworkReport) error {
	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintf(f.writer, "%s (%s)\n", f.colorize(report.Title, colorBold), report.ID)
	fmt.Fprintln(f.writer, f.rule())

	if len(report.Identity) > 0 {
		f.formatFields(report.Identity)
		fmt.Fprintln(f.writer)
	}

	if len(report.Contact) > 0 {
		fmt.Fprintln(f.writer, f.colorize("Contact:", colorBold))
		for _, key := range []string{"email", "website"} {
			if field, ok := report.Contact[key]; ok {
				fmt.Fprintf(f.writer, "  %-28s %s\n", field.Label+":", f.formatValue(field))
			}
		}
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintln(f.writer, f.colorize("Details:", colorBold))
	f.formatFields(report.Details)

	if report.Collections != nil || report.Biobanks != nil {
		f.formatLinks("Collections", report.Collections)
		f.formatLinks("Biobanks", report.Biobanks)
	}

	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TextFormatter) formatLinks(title string, links []dto.Link) {
	fmt.Fprintln(f.writer)
	fmt.Fprintf(f.writer, "%s\n", f.colorize(fmt.Sprintf("%s (%d):", title, len(links)), colorBold))
	if len(links) == 0 {
		fmt.Fprintf(f.writer, "  (no %s)\n", strings.ToLower(title))
		return
	}
	for _, l := range links {
		fmt.Fprintf(f.writer, "  %-28s %s\n", l.Name, f.colorize(l.Path, colorGray))
	}
}

// FormatSummaries writes one line per network.
//
//nolint:errcheck // Best-effort terminal output
func (f *TextFormatter) FormatSummaries(summaries []dto.NetworkSummary) error {
	if len(summaries) == 0 {
		fmt.Fprintln(f.writer, "No networks match.")
		return nil
	}

	for _, s := range summaries {
		line := fmt.Sprintf("%s  %s", f.colorize(s.ID, colorCyan), s.Name)
		if s.JuridicalPerson != "" {
			line += f.colorize(" ["+s.JuridicalPerson+"]", colorGray)
		}
		fmt.Fprintln(f.writer, line)
	}

	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintf(f.writer, "%d network(s)\n", len(summaries))
	return nil
}

// FormatFacets writes each facet with its options.
//
//nolint:errcheck // Best-effort terminal output
func (f *TextFormatter) FormatFacets(facets []entities.Facet) error {
	for i, facet := range facets {
		if i > 0 {
			fmt.Fprintln(f.writer)
		}
		fmt.Fprintf(f.writer, "%s (%s)\n", f.colorize(facet.Label, colorBold), facet.Name)
		if len(facet.Options) == 0 {
			fmt.Fprintln(f.writer, "  (no options)")
			continue
		}
		for _, opt := range facet.Options {
			fmt.Fprintf(f.writer, "  %-30s %s\n", opt.ID, f.colorize(opt.Label, colorGray))
		}
	}
	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TextFormatter) formatFields(fields []dto.Field) {
	for _, field := range fields {
		fmt.Fprintf(f.writer, "  %-28s %s\n", field.Label+":", f.formatValue(field))
	}
}

func (f *TextFormatter) formatValue(field dto.Field) string {
	typ, err := values.ParseDisplayType(field.Type)
	if err != nil {
		typ = values.DisplayString
	}

	switch v := field.Value.(type) {
	case nil:
		return ""
	case bool:
		if typ != values.DisplayBoolean {
			return fmt.Sprint(v)
		}
		if v {
			return f.colorize("✓ yes", colorGreen)
		}
		return f.colorize("✗ no", colorRed)
	default:
		switch typ {
		case values.DisplayEmail, values.DisplayURL:
			return f.colorize(fmt.Sprint(v), colorCyan)
		default:
			return fmt.Sprint(v)
		}
	}
}
