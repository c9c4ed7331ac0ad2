package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/biobank-directory/dirview/internal/domain/entities"
)

// SupportedSchemaVersions is the range of dataset schema versions this build reads.
const SupportedSchemaVersions = ">=1.0.0, <2.0.0"

const schemaURL = "directory.schema.json"

//go:embed schema/directory.schema.json
var directorySchema []byte

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaURL, bytes.NewReader(directorySchema)); err != nil {
		return nil, fmt.Errorf("failed to add directory schema resource: %w", err)
	}

	return compiler.Compile(schemaURL)
})

// validateSchema checks a YAML document against the directory schema.
// The returned messages are empty when the document is valid.
func validateSchema(data []byte) ([]string, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile directory schema: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to convert YAML: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return schemaMessages(validationErr), nil
		}
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	return nil, nil
}

// schemaMessages flattens a validation error tree into leaf messages.
func schemaMessages(err *jsonschema.ValidationError) []string {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}
	return messages
}

// checkSchemaVersion rejects dataset versions outside SupportedSchemaVersions.
func checkSchemaVersion(version string) error {
	constraint, err := semver.NewConstraint(SupportedSchemaVersions)
	if err != nil {
		return fmt.Errorf("invalid schema constraint: %w", err)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return &entities.UnsupportedSchemaError{Version: version, Constraint: SupportedSchemaVersions}
	}

	if !constraint.Check(v) {
		return &entities.UnsupportedSchemaError{Version: version, Constraint: SupportedSchemaVersions}
	}
	return nil
}
