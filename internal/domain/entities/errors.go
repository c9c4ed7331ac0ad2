package entities

import "fmt"

// NetworkNotFoundError indicates the directory has no network with the given ID.
type NetworkNotFoundError struct {
	ID string
}

func (e *NetworkNotFoundError) Error() string {
	return fmt.Sprintf("network not found: %s", e.ID)
}

// UnsupportedSchemaError indicates a dataset declares a schema version this
// build cannot read.
type UnsupportedSchemaError struct {
	Version    string
	Constraint string
}

func (e *UnsupportedSchemaError) Error() string {
	return fmt.Sprintf(
		"unsupported dataset schema version %s (supported: %s)",
		e.Version,
		e.Constraint,
	)
}
