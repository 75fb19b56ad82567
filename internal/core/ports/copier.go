package ports

// Copier copies build outputs into the install layout.
//
//go:generate go run go.uber.org/mock/mockgen -source=copier.go -destination=mocks/mock_copier.go -package=mocks
type Copier interface {
	// CopyFile copies src to dst with the given permission, creating parent directories.
	CopyFile(src, dst string, perm uint32) error

	// CopyTree copies every file below src into dst, preserving relative paths.
	// It returns the destination paths written.
	CopyTree(src, dst string) ([]string, error)
}
