package installer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/zerr"
)

// installLayout copies every install step from sourceDir, each recorded as an
// internal vertex below the layout phase. Optional steps with no source are
// skipped and marked cached; a missing required source stops the phase.
func (i *Installer) installLayout(
	ctx context.Context,
	layout domain.InstallLayout,
	sourceDir, binary, artifact string,
) ([]domain.StepResult, error) {
	steps := domain.InstallSteps(layout, binary, artifact)
	results := make([]domain.StepResult, 0, len(steps))

	for _, step := range steps {
		_, v := i.telemetry.Record(ctx, StepVertexName(step.Name), ports.WithInternal())
		res, err := i.installStep(v, step, sourceDir)
		v.Complete(err)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// StepVertexName returns the telemetry vertex name of an install step.
func StepVertexName(step string) string {
	return string(domain.PhaseLayout) + "/" + step
}

func (i *Installer) installStep(v ports.Vertex, step domain.InstallStep, sourceDir string) (domain.StepResult, error) {
	res := domain.StepResult{Step: step.Name}
	src := filepath.Join(sourceDir, step.Source)

	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		if step.Required {
			err = zerr.With(domain.ErrRequiredSourceMissing, "step", step.Name)
			return res, zerr.With(err, "path", src)
		}
		msg := "skipping " + step.Name + ": " + step.Source + " not present"
		i.logger.Info(msg)
		v.Log(domain.LogLevelInfo, msg)
		v.Cached()
		res.Outcome = domain.StepSkipped
		return res, nil
	}
	if err != nil {
		return res, stepError(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), step, src)
	}

	switch step.Kind {
	case domain.StepContents:
		if !info.IsDir() {
			return res, stepError(errors.New("source is not a directory"), step, src)
		}
		files, err := i.copier.CopyTree(src, step.Dest)
		if err != nil {
			return res, stepError(err, step, src)
		}
		res.Outcome = domain.StepInstalled
		res.Files = files
		v.Log(domain.LogLevelInfo, "copied "+strconv.Itoa(len(files))+" files to "+step.Dest)

	default:
		dest, preserved, err := destination(step)
		if err != nil {
			return res, stepError(err, step, src)
		}
		if err := i.copier.CopyFile(src, dest, step.Mode); err != nil {
			return res, stepError(err, step, src)
		}
		res.Outcome = domain.StepInstalled
		if preserved {
			res.Outcome = domain.StepPreserved
			msg := step.Dest + " exists, installed the new copy as " + dest
			i.logger.Warn(msg)
			v.Log(domain.LogLevelWarn, msg)
		} else {
			v.Log(domain.LogLevelInfo, "copied "+dest)
		}
		res.Files = []string{dest}
	}

	return res, nil
}

// destination returns where a file step writes. A step that preserves an
// existing destination writes beside it instead.
func destination(step domain.InstallStep) (string, bool, error) {
	if !step.PreserveExisting {
		return step.Dest, false, nil
	}
	_, err := os.Lstat(step.Dest)
	switch {
	case err == nil:
		return step.Dest + domain.ConfigDefaultSuffix, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return step.Dest, false, nil
	default:
		return "", false, zerr.Wrap(err, domain.ErrPathStatFailed.Error())
	}
}

func stepError(err error, step domain.InstallStep, src string) error {
	err = zerr.Wrap(err, domain.ErrInstallStepFailed.Error())
	err = zerr.With(err, "step", step.Name)
	return zerr.With(err, "path", src)
}
