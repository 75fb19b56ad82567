package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ConfigStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// CreateIfAbsent writes doc to path unless a file already exists there.
// The file is opened with O_EXCL so a concurrent writer or an existing file,
// whatever its contents, is never touched.
func (s *Store) CreateIfAbsent(path string, doc domain.ConfigDocument) (bool, error) {
	if err := doc.Validate(); err != nil {
		return false, err
	}

	data, err := Encode(doc)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		err = zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
		return false, zerr.With(err, "path", filepath.Dir(path))
	}

	//nolint:gosec // path is derived from the install prefix
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
		return false, zerr.With(err, "path", path)
	}

	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(path)
		err = zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
		return false, zerr.With(err, "path", path)
	}

	return true, nil
}

// Read decodes the document at path.
func (s *Store) Read(path string) (*domain.ConfigDocument, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the install prefix
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	doc, err := Decode(data)
	if err != nil {
		return doc, zerr.With(err, "path", path)
	}
	return doc, nil
}
