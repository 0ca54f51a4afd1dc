// Package file stores the filter document in a local YAML file.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/pkg/atomicwriter"
)

type Store struct {
	Config *core.Config
	Locker core.Locker

	writer *atomicwriter.AtomicWriter
}

func (s *Store) Init(_ context.Context) error {
	err := os.MkdirAll(filepath.Dir(s.Config.FilterBackendYAMLPath), 0755)
	if err != nil {
		return err
	}

	err = os.MkdirAll(s.Config.FilterBackendTmpPath, 0755)
	if err != nil {
		return err
	}

	s.writer = atomicwriter.New(s.Locker, s.Config.FilterBackendTmpPath)

	return nil
}

func (s *Store) Load(_ context.Context) ([]byte, string, error) {
	path := s.Config.FilterBackendYAMLPath

	// stat before reading: a change in between is picked up by the next poll
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", nil
	}

	if err != nil {
		return nil, "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	return content, revision(info), nil
}

func (s *Store) Revision(_ context.Context) (string, error) {
	info, err := os.Stat(s.Config.FilterBackendYAMLPath)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return revision(info), nil
}

func (s *Store) Update(ctx context.Context, fn core.DocumentMapFunc) error {
	return s.writer.ReadWrite(ctx, s.Config.FilterBackendYAMLPath, atomicwriter.ContentMapFunc(fn))
}

func revision(info os.FileInfo) string {
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size())
}
