package installer

import (
	"context"
	"os"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provision creates the state directory and writes the default config
// document unless one already exists. It is safe to run any number of times.
func (i *Installer) Provision(ctx context.Context, layout domain.InstallLayout) (domain.ConfigOutcome, error) {
	var outcome domain.ConfigOutcome
	err := i.phase(ctx, domain.PhaseProvision, func(_ context.Context, _ ports.Vertex) error {
		for _, dir := range []string{layout.StateDir, layout.ConfigDir} {
			if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
				err = zerr.Wrap(err, domain.ErrProvisionFailed.Error())
				return zerr.With(err, "path", dir)
			}
		}

		created, err := i.configs.CreateIfAbsent(layout.ConfigPath(), domain.DefaultConfig())
		if err != nil {
			return zerr.Wrap(err, domain.ErrProvisionFailed.Error())
		}

		if created {
			outcome = domain.ConfigWritten
			i.logger.Info("wrote default config " + layout.ConfigPath())
		} else {
			outcome = domain.ConfigPreserved
			i.logger.Info("kept existing config " + layout.ConfigPath())
		}
		return nil
	})
	return outcome, err
}
