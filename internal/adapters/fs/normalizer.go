// Package fs implements the file system adapters: path normalization and
// module source loading.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathNormalizer = (*Normalizer)(nil)

// Normalizer implements ports.PathNormalizer on top of path/filepath.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize resolves input against base into a canonical absolute path.
// An empty base means the process working directory; an empty input
// normalizes to the base itself.
func (n *Normalizer) Normalize(input, base string) (string, error) {
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrBaseUnresolvable, "working directory unavailable"), "cause", err.Error())
		}
		base = cwd
	}

	if input == "" {
		input = "."
	}

	if filepath.IsAbs(input) {
		return filepath.Clean(input), nil
	}

	if !filepath.IsAbs(base) {
		// A referrer may have recorded a relative base; anchor it first.
		abs, err := filepath.Abs(base)
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrBaseUnresolvable, "cannot anchor relative base"), "base", base)
		}
		base = abs
	}

	return filepath.Join(base, input), nil
}
