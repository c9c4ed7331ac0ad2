package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/biobank-directory/dirview/internal/application/ports"
	"github.com/biobank-directory/dirview/internal/infrastructure/system"
)

var validFormats = []string{"text", "json", "yaml"}

// CommonOptions contains flags shared by the output commands.
type CommonOptions struct {
	Format  string
	OutFile string
	Timeout time.Duration
	Compact bool
}

// DefaultCommonOptions returns sensible defaults.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Format:  "text",
		Timeout: 30 * time.Second,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Timeout for the whole command (0 to disable)")
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&opts.OutFile, "output", "o", opts.OutFile,
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.Compact, "compact", opts.Compact,
		"Do not indent json output")
}

// ApplyToContext applies timeout to context.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return ctx, func() {}
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	if !slices.Contains(validFormats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: text, json, yaml)", opts.Format)
	}
	if opts.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s", opts.Timeout)
	}
	return nil
}

// FormatterOptions resolves formatter options for writing to out under the
// configured color mode.
func (opts *CommonOptions) FormatterOptions(mode system.ColorMode, out io.Writer) ports.FormatterOptions {
	return ports.FormatterOptions{
		Indent: !opts.Compact,
		Color:  useColor(mode, out),
	}
}

// Writer returns stdout or the --output file. The returned close function
// must always be called.
func (opts *CommonOptions) Writer() (io.Writer, func(), error) {
	if opts.OutFile == "" {
		return os.Stdout, func() {}, nil
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.Create(opts.OutFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, func() {
		_ = file.Close() // Best-effort cleanup
	}, nil
}

func useColor(mode system.ColorMode, out io.Writer) bool {
	switch mode {
	case system.ColorAlways:
		return true
	case system.ColorNever:
		return false
	default:
		return isTerminal(out)
	}
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd fits in int
}
