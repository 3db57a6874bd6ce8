package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		format string
		file   string
	}{
		{format: "markdown", file: "aectl_sign.md"},
		{format: "man", file: "aectl-sign.1"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, generate(dir, tt.format))

			_, err := os.Stat(filepath.Join(dir, tt.file))
			assert.NoError(t, err)
		})
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	err := generate(t.TempDir(), "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "html"`)
}
