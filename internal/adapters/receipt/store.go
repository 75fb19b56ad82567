// Package receipt persists install receipts below the install prefix.
package receipt

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ReceiptStore using one JSON file per package.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the receipt for name installed under prefix.
// It returns nil, nil when no receipt exists.
func (s *Store) Get(prefix, name string) (*domain.InstallReceipt, error) {
	filename := s.filename(prefix, name)
	//nolint:gosec // Path is constructed from the prefix and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReceiptReadFailed.Error()), "path", filename)
	}

	var r domain.InstallReceipt
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReceiptUnmarshalFailed.Error()), "path", filename)
	}

	return &r, nil
}

// Put stores the receipt, replacing any previous one for the same package.
func (s *Store) Put(r domain.InstallReceipt) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReceiptMarshalFailed.Error())
	}

	filename := s.filename(r.Prefix, r.Name)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReceiptWriteFailed.Error()), "path", filepath.Dir(filename))
	}

	//nolint:gosec // Path is constructed from the prefix and a hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReceiptWriteFailed.Error()), "path", filename)
	}

	return nil
}

// Delete removes the receipt for name. A missing receipt is not an error.
func (s *Store) Delete(prefix, name string) error {
	filename := s.filename(prefix, name)
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrReceiptWriteFailed.Error()), "path", filename)
	}
	return nil
}

func (s *Store) filename(prefix, name string) string {
	hash := sha256.Sum256([]byte(name))
	dir := domain.NewInstallLayout(prefix).ReceiptDir()
	return filepath.Join(dir, hex.EncodeToString(hash[:])+".json")
}
