package installer

import (
	"context"
	"strings"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/zerr"
)

// checkPrerequisites resolves every declared prerequisite and reports all
// missing tools at once.
func (i *Installer) checkPrerequisites(ctx context.Context, release domain.Release) error {
	var missing []string
	for _, p := range release.Prerequisites {
		path, err := i.resolver.Resolve(ctx, p.Executable)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			missing = append(missing, p.Name+" ("+p.Executable+")")
			continue
		}
		i.logger.Info("found " + p.Name + ": " + path)
	}

	if len(missing) > 0 {
		return zerr.With(domain.ErrPrerequisiteMissing, "missing", strings.Join(missing, ", "))
	}
	return nil
}
