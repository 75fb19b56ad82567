package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/omegaup/internal/adapters/shell"
	"go.trai.ch/omegaup/internal/core/domain"
)

func TestResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "cargo")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	r := shell.NewResolver()

	got, err := r.Resolve(context.Background(), "cargo")
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	got, err = r.Resolve(context.Background(), exe)
	require.NoError(t, err)
	assert.Equal(t, exe, got)
}

func TestResolver_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := shell.NewResolver().Resolve(context.Background(), "node")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPrerequisiteMissing.Error())
}

func TestResolver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := shell.NewResolver().Resolve(ctx, "sh")
	require.ErrorIs(t, err, context.Canceled)
}
