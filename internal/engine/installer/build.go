package installer

import (
	"context"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/zerr"
)

func (i *Installer) build(ctx context.Context, v ports.Vertex, strategy domain.BuildStrategy, sourceDir string) error {
	cmd := strategy.Command(sourceDir)
	i.logger.Info("building with " + string(strategy.Kind()) + ": " + cmd.String())

	if err := i.executor.Execute(ctx, cmd, v.Stdout(), v.Stderr()); err != nil {
		err = zerr.Wrap(err, domain.ErrBuildFailed.Error())
		return zerr.With(err, "strategy", string(strategy.Kind()))
	}
	return nil
}
