package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biobank-directory/dirview/internal/infrastructure/system"
)

func TestCommonOptions_ApplyToContext(t *testing.T) {
	t.Parallel()

	t.Run("with timeout", func(t *testing.T) {
		t.Parallel()
		opts := CommonOptions{Timeout: 100 * time.Millisecond}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(100*time.Millisecond), deadline, 10*time.Millisecond)
	})

	t.Run("no timeout", func(t *testing.T) {
		t.Parallel()
		opts := CommonOptions{Timeout: 0}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestCommonOptions_ValidateFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    CommonOptions
		wantErr bool
		errMsg  string
	}{
		{name: "defaults", opts: DefaultCommonOptions()},
		{name: "json", opts: CommonOptions{Format: "json"}},
		{name: "yaml", opts: CommonOptions{Format: "yaml"}},
		{name: "invalid format", opts: CommonOptions{Format: "xml"}, wantErr: true, errMsg: "invalid format"},
		{name: "negative timeout", opts: CommonOptions{Format: "text", Timeout: -time.Second}, wantErr: true, errMsg: "invalid timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.opts.ValidateFlags()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommonOptions_FormatterOptions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := DefaultCommonOptions()

	assert.True(t, opts.FormatterOptions(system.ColorAlways, &buf).Color)
	assert.False(t, opts.FormatterOptions(system.ColorNever, &buf).Color)
	assert.False(t, opts.FormatterOptions(system.ColorAuto, &buf).Color, "a buffer is not a terminal")
	assert.True(t, opts.FormatterOptions(system.ColorAuto, &buf).Indent)

	opts.Compact = true
	assert.False(t, opts.FormatterOptions(system.ColorNever, &buf).Indent)
}

func TestCommonOptions_Writer(t *testing.T) {
	t.Parallel()

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()
		opts := CommonOptions{}
		w, closeFn, err := opts.Writer()
		require.NoError(t, err)
		defer closeFn()
		assert.Equal(t, os.Stdout, w)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.txt")
		opts := CommonOptions{OutFile: path}
		w, closeFn, err := opts.Writer()
		require.NoError(t, err)
		_, err = w.Write([]byte("hello"))
		require.NoError(t, err)
		closeFn()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("unwritable", func(t *testing.T) {
		t.Parallel()
		opts := CommonOptions{OutFile: filepath.Join(t.TempDir(), "missing", "out.txt")}
		_, _, err := opts.Writer()
		assert.ErrorContains(t, err, "failed to create output file")
	})
}
