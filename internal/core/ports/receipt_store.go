package ports

import "go.trai.ch/omegaup/internal/core/domain"

// ReceiptStore defines the interface for storing and retrieving install receipts.
//
//go:generate go run go.uber.org/mock/mockgen -source=receipt_store.go -destination=mocks/mock_receipt_store.go -package=mocks
type ReceiptStore interface {
	// Get retrieves the receipt for a package installed under prefix.
	// Returns nil, nil if not found.
	Get(prefix, name string) (*domain.InstallReceipt, error)

	// Put stores the receipt.
	Put(receipt domain.InstallReceipt) error

	// Delete removes the receipt for a package. Missing receipts are not an error.
	Delete(prefix, name string) error
}
