package ports

import "context"

// ToolResolver locates the executables that satisfy declared prerequisites.
//
//go:generate go run go.uber.org/mock/mockgen -source=tool_resolver.go -destination=mocks/mock_tool_resolver.go -package=mocks
type ToolResolver interface {
	// Resolve returns the absolute path of the named executable.
	// It returns an error wrapping domain.ErrPrerequisiteMissing if it cannot be found.
	Resolve(ctx context.Context, executable string) (string, error)
}
