// Package writer persists rendered theme documents and compares them
// against what is already on disk.
package writer

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"pigment/internal/logger"
	"pigment/pkg/diff"
)

// Writer stores rendered artifacts through an afero filesystem so tests
// can run against an in-memory one.
type Writer struct {
	fs  afero.Fs
	log *logger.Logger
}

// New creates a Writer on the given filesystem. A nil filesystem falls
// back to the host filesystem.
func New(fs afero.Fs, log *logger.Logger) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Writer{fs: fs, log: log}
}

// Write stores one artifact under dir, creating directories as needed,
// and returns the full path written.
func (w *Writer) Write(dir, name string, data []byte) (string, error) {
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return "", err
	}

	w.log.WithFields(map[string]any{"path": path, "bytes": len(data)}).Debug("artifact written")
	return path, nil
}

// Compare diffs the artifact on disk against freshly generated bytes. A
// missing file compares as empty, producing a full-file diff. Returns ""
// when the stored artifact already matches.
func (w *Writer) Compare(dir, name string, generated []byte) (string, error) {
	path := filepath.Join(dir, name)

	current, err := afero.ReadFile(w.fs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		current = nil
	}

	return diff.Unified(current, generated, path+" (on-disk)", path+" (generated)"), nil
}
