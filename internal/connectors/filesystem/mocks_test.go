package filesystem

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
)

var errLoadFailed = errors.New("load failed")

// fakeLoader records loads and fails for configured filenames.
type fakeLoader struct {
	fail  map[string]bool
	calls atomic.Int64
}

func (f *fakeLoader) Load(_ context.Context, relPath, absPath string) (domain.Document, error) {
	f.calls.Add(1)
	if f.fail[filepath.Base(absPath)] {
		return domain.Document{}, errLoadFailed
	}
	return domain.Document{
		ID:     relPath,
		Path:   absPath,
		Folder: filepath.ToSlash(filepath.Dir(relPath)),
		Title:  filepath.Base(relPath),
		Tags:   []string{},
	}, nil
}
