package ports

import "go.trai.ch/omegaup/internal/core/domain"

// ConfigStore reads and creates the system config document.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// CreateIfAbsent writes doc to path only if nothing exists there.
	// It reports whether the file was created; an existing file is never modified.
	CreateIfAbsent(path string, doc domain.ConfigDocument) (bool, error)

	// Read decodes the document at path.
	Read(path string) (*domain.ConfigDocument, error)
}
