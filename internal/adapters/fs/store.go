// Package fs implements file system adapters.
package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResourceStore = (*ResourceStore)(nil)

// ResourceStore implements ports.ResourceStore by writing each resource to
// <root>/<name>.xml. Writes replace the file atomically so readers never
// observe a partial document.
type ResourceStore struct{}

// NewResourceStore creates a new ResourceStore.
func NewResourceStore() *ResourceStore {
	return &ResourceStore{}
}

// Path returns the file a resource is stored in.
func Path(root, name string) string {
	return filepath.Join(root, name+domain.ResourceExt)
}

// Put writes value as the named resource under root, creating root if needed.
func (s *ResourceStore) Put(root, name, value string) error {
	path := Path(root, name)

	if err := os.MkdirAll(filepath.Clean(root), domain.DirPerm); err != nil {
		return persistErr(err, "failed to create resource directory", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+name+"-*")
	if err != nil {
		return persistErr(err, "failed to create temporary file", path)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, value); err != nil {
		_ = os.Remove(tmpName)
		return persistErr(err, "failed to write resource", path)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return persistErr(err, "failed to set resource permissions", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return persistErr(err, "failed to replace resource", path)
	}

	return nil
}

func writeAndClose(f *os.File, value string) error {
	_, err := f.WriteString(value)
	if err == nil {
		err = f.Sync()
	}
	if cErr := f.Close(); err == nil {
		err = cErr
	}
	return err
}

func persistErr(err error, msg, path string) error {
	return errors.Join(domain.ErrPersistFailed, zerr.With(zerr.Wrap(err, msg), "path", path))
}
