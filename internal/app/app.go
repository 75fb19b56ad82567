// Package app implements the application layer for omegaup.
package app

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/omegaup/internal/engine/installer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	recipes   ports.RecipeLoader
	installer *installer.Installer
	receipts  ports.ReceiptStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	recipes ports.RecipeLoader,
	inst *installer.Installer,
	receipts ports.ReceiptStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		recipes:   recipes,
		installer: inst,
		receipts:  receipts,
		telemetry: telemetry,
		logger:    log,
	}
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	// Source is the unpacked release tree.
	Source string
	// Prefix is the install root.
	Prefix string
	// Recipe is the recipe file. Empty selects the built-in recipe.
	Recipe string
	// SkipVerify skips the post-install smoke test.
	SkipVerify bool
}

// Install builds and installs a release, then provisions and verifies it.
func (a *App) Install(ctx context.Context, opts InstallOptions) (*domain.InstallReport, error) {
	recipe, err := a.recipes.Load(opts.Recipe)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load recipe")
	}

	prefix, err := absPrefix(opts.Prefix)
	if err != nil {
		return nil, err
	}

	report, err := a.installer.Install(ctx, recipe, installer.Options{
		SourceDir:  opts.Source,
		Prefix:     prefix,
		SkipVerify: opts.SkipVerify,
	})
	if err != nil {
		return report, err
	}

	a.logger.Info("installed " + recipe.Release.Name + " " + recipe.Release.Version +
		" (" + strconv.Itoa(len(report.InstalledFiles())) + " files) in " +
		report.Finished.Sub(report.Started).Round(time.Millisecond).String())
	return report, nil
}

// PostInstall creates the state directory and the default config document.
// Running it again leaves an existing config untouched.
func (a *App) PostInstall(ctx context.Context, prefix string) (domain.ConfigOutcome, error) {
	prefix, err := absPrefix(prefix)
	if err != nil {
		return "", err
	}
	return a.installer.Provision(ctx, domain.NewInstallLayout(prefix))
}

// Test smoke-tests an existing installation and returns the compiler version.
func (a *App) Test(ctx context.Context, prefix, recipePath string) (string, error) {
	recipe, err := a.recipes.Load(recipePath)
	if err != nil {
		return "", zerr.Wrap(err, "failed to load recipe")
	}

	prefix, err = absPrefix(prefix)
	if err != nil {
		return "", err
	}
	return a.installer.Verify(ctx, domain.NewInstallLayout(prefix), recipe.BinaryName())
}

// Uninstall removes the files recorded for the recipe's release under prefix.
func (a *App) Uninstall(ctx context.Context, prefix, recipePath string) ([]string, error) {
	recipe, err := a.recipes.Load(recipePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load recipe")
	}

	prefix, err = absPrefix(prefix)
	if err != nil {
		return nil, err
	}
	return a.installer.Uninstall(ctx, prefix, recipe.Release.Name)
}

// Info returns the install receipt of the recipe's release under prefix.
func (a *App) Info(_ context.Context, prefix, recipePath string) (*domain.InstallReceipt, error) {
	recipe, err := a.recipes.Load(recipePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load recipe")
	}

	prefix, err = absPrefix(prefix)
	if err != nil {
		return nil, err
	}

	receipt, err := a.receipts.Get(prefix, recipe.Release.Name)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, zerr.With(zerr.With(domain.ErrNotInstalled, "package", recipe.Release.Name), "prefix", prefix)
	}
	return receipt, nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func absPrefix(prefix string) (string, error) {
	abs, err := filepath.Abs(prefix)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetPrefix.Error()), "prefix", prefix)
	}
	return abs, nil
}
