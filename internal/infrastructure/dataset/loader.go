// Package dataset loads the directory dataset from YAML files.
//
// Each file is validated against the embedded JSON schema, its schema_version
// checked against SupportedSchemaVersions, and the results merged in the
// order the files were given.
package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/biobank-directory/dirview/internal/application/errors"
	"github.com/biobank-directory/dirview/internal/domain/entities"
)

// DefaultConcurrency bounds how many dataset files are read at once.
const DefaultConcurrency = 4

// Loader reads directory datasets from disk.
type Loader struct {
	logger      *slog.Logger
	concurrency int
}

// NewLoader creates a dataset loader. A concurrency below 1 uses DefaultConcurrency.
func NewLoader(logger *slog.Logger, concurrency int) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Loader{logger: logger, concurrency: concurrency}
}

// Load reads every file concurrently and merges them in argument order.
// Networks in later files replace networks with the same ID.
func (l *Loader) Load(ctx context.Context, paths []string) (*entities.Directory, error) {
	if len(paths) == 0 {
		return nil, apperrors.NewValidationError("dataset", "no dataset files configured")
	}

	results := make([]*entities.Directory, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dir, err := l.LoadFile(path)
			if err != nil {
				return err
			}
			results[i] = dir
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &entities.Directory{}
	for i, dir := range results {
		l.logger.Debug("merging dataset", "path", paths[i], "networks", len(dir.Networks))
		merged.Merge(dir)
	}

	return merged, nil
}

// LoadFile reads and decodes a single dataset file.
func (l *Loader) LoadFile(path string) (*entities.Directory, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, apperrors.NewLoadError(path, err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, apperrors.NewLoadError(path, err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return Decode(file, path)
}

// Decode reads a dataset document from r. source names the document in errors.
func Decode(r io.Reader, source string) (*entities.Directory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewLoadError(source, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperrors.NewValidationError(source, "dataset is empty")
	}

	messages, err := validateSchema(data)
	if err != nil {
		return nil, apperrors.NewLoadError(source, err)
	}
	if len(messages) > 0 {
		return nil, apperrors.NewValidationError(source, "dataset does not match schema", messages...)
	}

	var dir entities.Directory
	if err := yaml.Unmarshal(data, &dir); err != nil {
		return nil, apperrors.NewLoadError(source, fmt.Errorf("failed to decode dataset YAML: %w", err))
	}

	if err := checkSchemaVersion(dir.SchemaVersion); err != nil {
		return nil, apperrors.NewLoadError(source, err)
	}

	if err := dir.Validate(); err != nil {
		return nil, apperrors.NewValidationError(source, err.Error())
	}

	return &dir, nil
}
