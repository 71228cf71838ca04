package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/adapters/fs"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := fs.NewNormalizer()

	tests := []struct {
		name  string
		input string
		base  string
		want  string
	}{
		{
			name:  "relative against base",
			input: "b.js",
			base:  filepath.FromSlash("/proj/"),
			want:  filepath.FromSlash("/proj/b.js"),
		},
		{
			name:  "dot segment collapsed",
			input: filepath.FromSlash("./b.js"),
			base:  filepath.FromSlash("/proj/"),
			want:  filepath.FromSlash("/proj/b.js"),
		},
		{
			name:  "parent segment collapsed",
			input: filepath.FromSlash("../lib/c.js"),
			base:  filepath.FromSlash("/proj/src/"),
			want:  filepath.FromSlash("/proj/lib/c.js"),
		},
		{
			name:  "redundant separators collapsed",
			input: filepath.FromSlash("lib//c.js"),
			base:  filepath.FromSlash("/proj"),
			want:  filepath.FromSlash("/proj/lib/c.js"),
		},
		{
			name:  "absolute input ignores base",
			input: filepath.FromSlash("/other/d.js"),
			base:  filepath.FromSlash("/proj/"),
			want:  filepath.FromSlash("/other/d.js"),
		},
		{
			name:  "empty input yields base",
			input: "",
			base:  filepath.FromSlash("/proj/src/"),
			want:  filepath.FromSlash("/proj/src"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.input, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizer_EmptyBaseUsesWorkingDirectory(t *testing.T) {
	n := fs.NewNormalizer()

	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := n.Normalize("a.js", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "a.js"), got)
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := fs.NewNormalizer()

	inputs := []struct {
		input string
		base  string
	}{
		{filepath.FromSlash("./a/../b.js"), filepath.FromSlash("/proj/")},
		{"b.js", filepath.FromSlash("/proj/src")},
		{filepath.FromSlash("/abs/x.js"), filepath.FromSlash("/proj/")},
		{"a.js", ""},
	}

	for _, tt := range inputs {
		once, err := n.Normalize(tt.input, tt.base)
		require.NoError(t, err)

		twice, err := n.Normalize(once, "")
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}
