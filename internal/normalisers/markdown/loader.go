// Package markdown turns snippet files on disk into domain documents.
package markdown

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/snipsurf/internal/core/domain"
	"github.com/custodia-labs/snipsurf/internal/core/ports/driven"
	"github.com/custodia-labs/snipsurf/internal/logger"
	"github.com/custodia-labs/snipsurf/internal/normalisers/frontmatter"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads a snippet file and splits its front matter from its body.
type Loader struct {
	readFile func(name string) ([]byte, error)
}

// New creates a Loader that reads from the local filesystem.
func New() *Loader {
	return &Loader{readFile: os.ReadFile}
}

// Load reads absPath and builds its document. relPath is the path relative
// to the scanned root and decides the folder. A malformed metadata block is
// logged and does not fail the load.
func (l *Loader) Load(_ context.Context, relPath, absPath string) (domain.Document, error) {
	data, err := l.readFile(absPath)
	if err != nil {
		return domain.Document{}, err
	}
	if !utf8.Valid(data) {
		return domain.Document{}, domain.ErrInvalidEncoding
	}

	parsed := frontmatter.Parse(string(data))
	if parsed.Warning != nil {
		logger.Warn("ignoring front matter", "path", relPath, "err", parsed.Warning)
	}

	title, ok := parsed.Title()
	if !ok {
		title = Stem(absPath)
	}

	return domain.Document{
		ID:          DocumentID(absPath),
		Path:        absPath,
		Folder:      Folder(relPath),
		Title:       title,
		Description: parsed.Description(),
		Tags:        parsed.Tags(),
		Body:        parsed.Body,
		RawMetadata: parsed.RawMetadata,
	}, nil
}

// DocumentID is the hex MD5 digest of the absolute path.
func DocumentID(absPath string) string {
	sum := md5.Sum([]byte(absPath))
	return hex.EncodeToString(sum[:])
}

// Folder returns the slash-separated directory of relPath, "." at the root.
func Folder(relPath string) string {
	return filepath.ToSlash(filepath.Dir(relPath))
}

// Stem returns the file name without its final extension.
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
