// Package installer orchestrates building and installing a toolchain release.
//
// An install runs five phases in order: prerequisites, build, layout,
// provision and verify. A fatal error in any phase stops the run; nothing
// that was already installed is rolled back.
package installer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer runs install phases against a source tree and an install prefix.
type Installer struct {
	executor  ports.Executor
	resolver  ports.ToolResolver
	copier    ports.Copier
	configs   ports.ConfigStore
	receipts  ports.ReceiptStore
	hasher    ports.Hasher
	verifier  ports.Verifier
	telemetry ports.Telemetry
	logger    ports.Logger

	now   func() time.Time
	newID func() string
}

// New creates a new Installer.
func New(
	executor ports.Executor,
	resolver ports.ToolResolver,
	copier ports.Copier,
	configs ports.ConfigStore,
	receipts ports.ReceiptStore,
	hasher ports.Hasher,
	verifier ports.Verifier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Installer {
	return &Installer{
		executor:  executor,
		resolver:  resolver,
		copier:    copier,
		configs:   configs,
		receipts:  receipts,
		hasher:    hasher,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Options configures one install run.
type Options struct {
	// SourceDir is the unpacked source tree.
	SourceDir string
	// Prefix is the root of the install layout.
	Prefix string
	// SkipVerify skips the verification phase.
	SkipVerify bool
}

// Install builds recipe from opts.SourceDir and installs it under opts.Prefix.
//
// The returned report is never nil and describes every phase that ran. A
// verification failure is returned joined with domain.ErrVerificationFailed;
// the installation is then complete but unverified.
func (i *Installer) Install(ctx context.Context, recipe *domain.Recipe, opts Options) (*domain.InstallReport, error) {
	layout := domain.NewInstallLayout(opts.Prefix)
	report := &domain.InstallReport{
		RunID:   i.newID(),
		Release: recipe.Release,
		Layout:  layout,
		Verify:  domain.VerifySkipped,
		Started: i.now(),
	}
	err := i.install(ctx, recipe, opts, report)
	report.Finished = i.now()
	return report, err
}

func (i *Installer) install(ctx context.Context, recipe *domain.Recipe, opts Options, report *domain.InstallReport) error {
	sourceDir, err := resolveSourceDir(opts.SourceDir)
	if err != nil {
		return err
	}

	i.logger.Info("installing " + recipe.Release.Name + " " + recipe.Release.Version + " into " + report.Layout.Prefix)

	var strategy domain.BuildStrategy
	err = i.phase(ctx, domain.PhasePrerequisites, func(ctx context.Context, _ ports.Vertex) error {
		if err := i.checkPrerequisites(ctx, recipe.Release); err != nil {
			return err
		}
		strategy, err = domain.SelectStrategy(*recipe)
		return err
	})
	if err != nil {
		return err
	}
	report.Strategy = strategy.Kind()

	err = i.phase(ctx, domain.PhaseBuild, func(ctx context.Context, v ports.Vertex) error {
		return i.build(ctx, v, strategy, sourceDir)
	})
	if err != nil {
		return err
	}

	err = i.phase(ctx, domain.PhaseLayout, func(ctx context.Context, _ ports.Vertex) error {
		steps, err := i.installLayout(ctx, report.Layout, sourceDir, recipe.BinaryName(), strategy.ArtifactPath())
		report.Steps = steps
		return err
	})
	if err != nil {
		return err
	}

	outcome, err := i.Provision(ctx, report.Layout)
	if err != nil {
		return err
	}
	report.Config = outcome

	if err := i.writeReceipt(ctx, report); err != nil {
		return err
	}

	if opts.SkipVerify {
		_, v := i.telemetry.Record(ctx, string(domain.PhaseVerify))
		v.Cached()
		v.Complete(nil)
		i.logger.Warn("verification skipped")
		return nil
	}

	version, err := i.Verify(ctx, report.Layout, recipe.BinaryName())
	report.CompilerVersion = version
	if err != nil {
		report.Verify = domain.VerifyFailed
		return err
	}
	report.Verify = domain.VerifyPassed
	return nil
}

// phase records fn as a telemetry vertex named after p.
func (i *Installer) phase(ctx context.Context, p domain.Phase, fn func(context.Context, ports.Vertex) error) error {
	ctx, v := i.telemetry.Record(ctx, string(p))
	err := fn(ctx, v)
	v.Complete(err)
	return err
}

func resolveSourceDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve source directory"), "path", dir)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = errors.New("not a directory")
		}
		err = zerr.Wrap(err, domain.ErrRequiredSourceMissing.Error())
		return "", zerr.With(err, "source", abs)
	}
	return abs, nil
}
