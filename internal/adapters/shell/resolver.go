package shell

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.ToolResolver against the PATH the executor uses.
type Resolver struct {
	environ func() []string
}

// NewResolver creates a Resolver reading the process environment.
func NewResolver() *Resolver {
	return &Resolver{environ: os.Environ}
}

// Resolve returns the absolute path of executable.
func (r *Resolver) Resolve(ctx context.Context, executable string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if filepath.IsAbs(executable) {
		if err := findExecutable(executable); err != nil {
			return "", zerr.With(domain.ErrPrerequisiteMissing, "tool", executable)
		}
		return executable, nil
	}

	path, err := lookPath(executable, resolveEnvironment(r.environ(), nil))
	if err != nil {
		return "", zerr.With(domain.ErrPrerequisiteMissing, "tool", executable)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil //nolint:nilerr // a relative PATH entry still resolves
	}
	return abs, nil
}
