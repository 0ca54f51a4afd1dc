// Package atomicwriter rewrites files under a lock so readers never observe a
// partially written file.
package atomicwriter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
)

const defaultPerm os.FileMode = 0644

type ContentMapFunc func(ctx context.Context, content []byte) ([]byte, error)

type Locker interface {
	Lock(ctx context.Context, key string) (context.Context, context.CancelFunc, error)
}

type AtomicWriter struct {
	Locker  Locker
	tmpPath string
}

func New(locker Locker, tmpPath string) *AtomicWriter {
	return &AtomicWriter{
		Locker:  locker,
		tmpPath: tmpPath,
	}
}

// ReadWrite locks filename, passes its content to contentMap and atomically
// replaces the file with the result. A missing file is read as empty and
// created with 0644, an existing file keeps its mode. The file is left
// untouched when contentMap returns the content unchanged.
// The directory of filename must exist.
func (w *AtomicWriter) ReadWrite(ctx context.Context, filename string, contentMap ContentMapFunc) error {
	ctx, cancel, err := w.Locker.Lock(ctx, filename)
	if err != nil {
		return err
	}
	defer cancel()

	if _, err := os.Stat(filepath.Dir(filename)); err != nil {
		return err
	}

	content, perm, existed, err := readExisting(filename)
	if err != nil {
		return err
	}

	newContent, err := contentMap(ctx, content)
	if err != nil {
		return err
	}

	if existed && bytes.Equal(content, newContent) {
		return nil
	}

	return w.replace(ctx, filename, newContent, perm)
}

func readExisting(filename string) ([]byte, os.FileMode, bool, error) {
	info, err := os.Stat(filename)
	if errors.Is(err, os.ErrNotExist) {
		return []byte{}, defaultPerm, false, nil
	}

	if err != nil {
		return nil, 0, false, err
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, 0, false, err
	}

	return content, info.Mode(), true, nil
}

func (w *AtomicWriter) replace(ctx context.Context, filename string, content []byte, perm os.FileMode) error {
	tempFile, err := os.CreateTemp(w.tmpPath, "atomic-writer-*.tmp")
	if err != nil {
		return err
	}
	// after a successful rename there is nothing left to remove
	defer os.Remove(tempFile.Name())
	defer tempFile.Close()

	if _, err := tempFile.Write(content); err != nil {
		return err
	}

	if err := tempFile.Sync(); err != nil {
		return err
	}

	if err := tempFile.Chmod(perm); err != nil {
		return err
	}

	// the lock may have been lost while the new content was prepared
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.Rename(tempFile.Name(), filename)
}
