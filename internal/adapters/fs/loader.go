package fs

import (
	"io"
	"os"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceLoader = (*Loader)(nil)

// Loader implements ports.SourceLoader by reading whole files from disk.
// It opens and closes one file handle per call and caches nothing; caching
// is the module cache's responsibility, one level up.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the file at path. Directories are rejected even though they can
// be opened. The size is measured once at open time; a file that shrinks
// mid-read surfaces as a read failure through the short-read check.
func (l *Loader) Load(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		loadErr := zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "load failed"), "path", path)
		l.log.Error(loadErr)
		return nil, loadErr
	}

	f, err := os.Open(path) //nolint:gosec // Path was canonicalized by the resolver
	if err != nil {
		loadErr := zerr.With(zerr.Wrap(domain.ErrSourceRead, "open failed"), "path", path)
		l.log.Error(loadErr)
		return nil, loadErr
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		loadErr := zerr.With(zerr.Wrap(domain.ErrSourceRead, "short read"), "path", path)
		l.log.Error(loadErr)
		return nil, loadErr
	}

	return buf, nil
}
