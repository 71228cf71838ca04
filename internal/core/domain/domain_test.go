package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestDirectoryEnd(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "file in directory", path: "/proj/a.js", want: 6},
		{name: "nested directory", path: "/proj/lib/util.js", want: 10},
		{name: "root file", path: "/a.js", want: 1},
		{name: "no separator", path: "a.js", want: 0},
		{name: "empty", path: "", want: 0},
		{name: "trailing separator", path: "/proj/", want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DirectoryEnd(tt.path))
		})
	}
}

func TestCachedModule_BasePath(t *testing.T) {
	m := &domain.CachedModule{
		CanonicalPath:   domain.NewInternedString("/proj/lib/util.js"),
		DirectoryLength: domain.DirectoryEnd("/proj/lib/util.js"),
	}
	assert.Equal(t, "/proj/lib/", m.BasePath())

	bare := &domain.CachedModule{
		CanonicalPath:   domain.NewInternedString("a.js"),
		DirectoryLength: 0,
	}
	assert.Equal(t, "", bare.BasePath())
}

func TestMapResolveError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    domain.ErrorKind
		wantMessage string
	}{
		{
			name:        "source not found surfaces as syntax error",
			err:         zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "load failed"), "path", "/x/missing.js"),
			wantKind:    domain.ErrorSyntax,
			wantMessage: "Module file not found",
		},
		{
			name:        "read failure surfaces as syntax error",
			err:         domain.ErrSourceRead,
			wantKind:    domain.ErrorSyntax,
			wantMessage: "Module file not found",
		},
		{
			name:        "unresolvable base",
			err:         domain.ErrBaseUnresolvable,
			wantKind:    domain.ErrorCommon,
			wantMessage: "Out of memory",
		},
		{
			name:        "decorated unresolvable base keeps its category",
			err:         zerr.With(zerr.Wrap(domain.ErrBaseUnresolvable, "cannot anchor relative base"), "base", "src"),
			wantKind:    domain.ErrorCommon,
			wantMessage: "Out of memory",
		},
		{
			name:        "parse errors propagate their own message",
			err:         zerr.Wrap(domain.ErrParse, "unterminated string literal"),
			wantKind:    domain.ErrorSyntax,
			wantMessage: "",
		},
		{
			name:        "unknown errors default to the common category",
			err:         zerr.New("boom"),
			wantKind:    domain.ErrorCommon,
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, message := domain.MapResolveError(tt.err)
			assert.Equal(t, tt.wantKind, kind)
			if tt.wantMessage != "" {
				assert.Contains(t, message, tt.wantMessage)
			} else {
				assert.NotEmpty(t, message)
			}
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "SyntaxError", domain.ErrorSyntax.String())
	assert.Equal(t, "Error", domain.ErrorCommon.String())
	assert.Equal(t, "TypeError", domain.ErrorType.String())
}

func TestInternedString_RoundTrip(t *testing.T) {
	a := domain.NewInternedString("/proj/a.js")
	b := domain.NewInternedString("/proj/a.js")
	assert.Equal(t, a, b)
	assert.Equal(t, "/proj/a.js", a.String())

	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "/proj/a.js", string(text))

	var c domain.InternedString
	require.NoError(t, c.UnmarshalText(text))
	assert.Equal(t, a, c)
}

func TestInternedString_ZeroValue(t *testing.T) {
	var zero domain.InternedString
	assert.Equal(t, "", zero.String())
}
