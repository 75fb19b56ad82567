package installer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/omegaup/internal/core/domain"
)

func TestUninstall(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.source, domain.ConfigFileName), []byte("[compiler]\n"), 0o600))

	_, err := h.installer.Install(context.Background(), defaultRecipe(), h.options())
	require.NoError(t, err)

	// A file someone else put beside the binary survives.
	other := filepath.Join(h.layout.BinDir, "other-tool")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))

	removed, err := h.installer.Uninstall(context.Background(), h.prefix, "omega-lang")
	require.NoError(t, err)

	assert.Contains(t, removed, h.layout.BinaryPath("omega"))
	assert.NoFileExists(t, h.layout.BinaryPath("omega"))
	assert.NoDirExists(t, h.layout.LibDir)
	assert.NoDirExists(t, h.layout.DocDir)
	assert.NoDirExists(t, filepath.Dir(h.layout.ContractsDir))
	assert.FileExists(t, other)

	// Config and state are kept.
	assert.FileExists(t, h.layout.ConfigPath())
	assert.DirExists(t, h.layout.StateDir)
	assert.NotContains(t, removed, h.layout.ConfigPath())

	_, err = h.installer.Uninstall(context.Background(), h.prefix, "omega-lang")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNotInstalled.Error())
}

func TestUninstall_NothingInstalled(t *testing.T) {
	h := newHarness(t)

	_, err := h.installer.Uninstall(context.Background(), h.prefix, "omega-lang")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNotInstalled.Error())
}

func TestUninstall_AlreadyRemovedFiles(t *testing.T) {
	h := newHarness(t)

	_, err := h.installer.Install(context.Background(), defaultRecipe(), h.options())
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(h.layout.LibDir))

	removed, err := h.installer.Uninstall(context.Background(), h.prefix, "omega-lang")
	require.NoError(t, err)
	assert.Contains(t, removed, h.layout.BinaryPath("omega"))
}
