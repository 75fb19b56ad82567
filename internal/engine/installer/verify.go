package installer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Verify smoke-tests the installed binary: it must report its version and
// build the sample program into the configured target directory. The scratch
// workspace is removed afterwards. It returns the reported version.
//
// Any failure is joined with domain.ErrVerificationFailed.
func (i *Installer) Verify(ctx context.Context, layout domain.InstallLayout, binary string) (string, error) {
	var version string
	err := i.phase(ctx, domain.PhaseVerify, func(ctx context.Context, v ports.Vertex) error {
		var err error
		version, err = i.verify(ctx, v, layout, binary)
		return err
	})
	if err != nil {
		return version, errors.Join(domain.ErrVerificationFailed, err)
	}
	return version, nil
}

func (i *Installer) verify(ctx context.Context, v ports.Vertex, layout domain.InstallLayout, binary string) (string, error) {
	workspace, err := os.MkdirTemp("", "omegaup-verify-"+i.newID()+"-")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create scratch workspace")
	}
	defer func() {
		if err := os.RemoveAll(workspace); err != nil {
			i.logger.Warn("failed to remove scratch workspace " + workspace)
		}
	}()

	check := domain.VerificationCheck{
		Binary:    layout.BinaryPath(binary),
		Workspace: workspace,
		OutputDir: i.targetDir(layout),
	}

	var out bytes.Buffer
	if err := i.executor.Execute(ctx, check.VersionCommand(), io.MultiWriter(&out, v.Stdout()), v.Stderr()); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrVersionProbeFailed.Error()), "binary", check.Binary)
	}
	version := strings.TrimSpace(out.String())
	i.logger.Info("installed " + version)

	sample := filepath.Join(workspace, domain.SampleFileName)
	if err := os.WriteFile(sample, []byte(domain.SampleProgram), domain.FilePerm); err != nil {
		return version, zerr.With(zerr.Wrap(err, "failed to write sample program"), "path", sample)
	}

	if err := i.executor.Execute(ctx, check.BuildCommand(), v.Stdout(), v.Stderr()); err != nil {
		return version, zerr.With(zerr.Wrap(err, domain.ErrSampleBuildFailed.Error()), "binary", check.Binary)
	}

	ok, err := i.verifier.VerifyOutputs(workspace, []string{check.OutputDir})
	if err != nil {
		return version, err
	}
	if !ok {
		return version, zerr.With(domain.ErrOutputDirMissing, "target_dir", check.OutputDir)
	}

	i.logger.Info("verification passed")
	return version, nil
}

// targetDir reads compiler.target_dir from the installed config. A missing or
// unreadable config, or a value that leaves the workspace, yields the default.
func (i *Installer) targetDir(layout domain.InstallLayout) string {
	doc, err := i.configs.Read(layout.ConfigPath())
	if err != nil {
		i.logger.Warn("using default target directory: " + err.Error())
	}

	dir := filepath.Clean(doc.TargetDir())
	if filepath.IsAbs(dir) || dir == "." || dir == ".." || strings.HasPrefix(dir, ".."+string(filepath.Separator)) {
		i.logger.Warn("ignoring target_dir " + dir + ", using " + domain.DefaultTargetDir)
		return domain.DefaultTargetDir
	}
	return dir
}
