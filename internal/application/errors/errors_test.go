package apperrors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation failed: where: empty expression",
		NewValidationError("where", "empty expression").Error())
	assert.Equal(t, "validation failed: dataset: schema mismatch (2 issues)",
		NewValidationError("dataset", "schema mismatch", "a", "b").Error())
}

func TestLoadError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewLoadError("networks.yaml", fs.ErrNotExist)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "networks.yaml")
}

func TestConfigurationError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewConfigurationError("system", "failed to load", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "configuration error (system): failed to load: boom", err.Error())

	bare := NewConfigurationError("ui", "max_visible_options must be positive", nil)
	assert.Equal(t, "configuration error (ui): max_visible_options must be positive", bare.Error())
}
