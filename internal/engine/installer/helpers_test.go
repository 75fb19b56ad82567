package installer_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/omegaup/internal/adapters/config"
	"go.trai.ch/omegaup/internal/adapters/fs"
	"go.trai.ch/omegaup/internal/adapters/receipt"
	"go.trai.ch/omegaup/internal/adapters/shell"
	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/omegaup/internal/core/ports/mocks"
	"go.trai.ch/omegaup/internal/engine/installer"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// compilerScript is a stand-in for the built compiler. It answers --version
// and turns "build <file>" into an <outDir> directory.
func compilerScript(outDir string) string {
	return `#!/bin/sh
case "$1" in
  --version) echo "omega 1.2.0" ;;
  build) test -f "$2" || exit 3; mkdir -p ` + outDir + ` && touch ` + outDir + `/out ;;
  *) exit 64 ;;
esac
`
}

// fakeExecutor intercepts build tool invocations and runs everything else
// through the real shell executor.
type fakeExecutor struct {
	mu       sync.Mutex
	real     ports.Executor
	commands []*domain.Command
	// build handles cargo and make invocations.
	build func(cmd *domain.Command) error
}

func (f *fakeExecutor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	f.mu.Lock()
	f.commands = append(f.commands, cmd)
	f.mu.Unlock()

	switch cmd.Args[0] {
	case "cargo", "make":
		if f.build == nil {
			return nil
		}
		return f.build(cmd)
	default:
		return f.real.Execute(ctx, cmd, stdout, stderr)
	}
}

func (f *fakeExecutor) ran(label string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.commands {
		if c.Label == label {
			return true
		}
	}
	return false
}

// buildsScript returns a build hook that writes script as the release artifact.
func buildsScript(script string) func(cmd *domain.Command) error {
	return func(cmd *domain.Command) error {
		artifact := filepath.Join(cmd.WorkingDir, domain.DefaultArtifactPath("omega"))
		if err := os.MkdirAll(filepath.Dir(artifact), 0o750); err != nil {
			return err
		}
		return os.WriteFile(artifact, []byte(script), 0o700) //nolint:gosec // test fixture
	}
}

// recordedVertex captures what the installer reported for one vertex.
type recordedVertex struct {
	name     string
	internal bool
	done     bool
	cached   bool
	err      error
	out      bytes.Buffer
}

func (v *recordedVertex) Stdout() io.Writer                 { return &v.out }
func (v *recordedVertex) Stderr() io.Writer                 { return &v.out }
func (v *recordedVertex) Log(_ domain.LogLevel, msg string) { v.out.WriteString(msg + "\n") }
func (v *recordedVertex) Cached()                           { v.cached = true }
func (v *recordedVertex) Complete(err error) {
	v.done = true
	v.err = err
}

type recordingTelemetry struct {
	vertices []*recordedVertex
}

func (r *recordingTelemetry) Record(
	ctx context.Context, name string, opts ...ports.VertexOption,
) (context.Context, ports.Vertex) {
	var cfg ports.VertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	v := &recordedVertex{name: name, internal: cfg.Internal}
	r.vertices = append(r.vertices, v)
	return ports.ContextWithVertex(ctx, v), v
}

func (r *recordingTelemetry) Close() error { return nil }

func (r *recordingTelemetry) phases() []string {
	var names []string
	for _, v := range r.vertices {
		if !v.internal {
			names = append(names, v.name)
		}
	}
	return names
}

func (r *recordingTelemetry) vertex(name string) *recordedVertex {
	for _, v := range r.vertices {
		if v.name == name {
			return v
		}
	}
	return nil
}

type harness struct {
	installer *installer.Installer
	executor  *fakeExecutor
	telemetry *recordingTelemetry
	// missing holds executables the resolver reports as absent.
	missing map[string]bool
	source  string
	prefix  string
	layout  domain.InstallLayout
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	missing := make(map[string]bool)
	resolver := mocks.NewMockToolResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, exe string) (string, error) {
			if missing[exe] {
				return "", domain.ErrPrerequisiteMissing
			}
			return "/usr/bin/" + exe, nil
		}).AnyTimes()

	exec := &fakeExecutor{
		real:  shell.NewExecutor(log),
		build: buildsScript(compilerScript("build")),
	}
	tel := &recordingTelemetry{}

	inst := installer.New(
		exec,
		resolver,
		fs.NewCopier(fs.NewWalker()),
		config.NewStore(),
		receipt.NewStore(),
		fs.NewHasher(),
		fs.NewVerifier(),
		tel,
		log,
	)
	inst.SetClock(
		func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) },
		func() string { return "run-0001" },
	)

	prefix := filepath.Join(t.TempDir(), "prefix")
	return &harness{
		installer: inst,
		executor:  exec,
		telemetry: tel,
		missing:   missing,
		source:    newSourceTree(t),
		prefix:    prefix,
		layout:    domain.NewInstallLayout(prefix),
	}
}

func (h *harness) options() installer.Options {
	return installer.Options{SourceDir: h.source, Prefix: h.prefix}
}

// newSourceTree lays out an unpacked release without examples/.
func newSourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"src/std/a.txt":             "X",
		"src/std/core/math.omega":   "blockchain Math {}",
		"contracts/token.omega":     "blockchain Token {}",
		"README.md":                 "# OMEGA",
		"LANGUAGE_SPECIFICATION.md": "grammar",
		"docs/guide.md":             "guide",
		"Cargo.toml":                "[package]\nname = \"omega\"\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func defaultRecipe() *domain.Recipe {
	return &domain.Recipe{
		Release: domain.Release{
			Name:    "omega-lang",
			Version: "1.2.0",
			Prerequisites: []domain.Prerequisite{
				domain.NewPrerequisite("rust", domain.PrerequisiteBuild, ""),
				domain.NewPrerequisite("node", domain.PrerequisiteBuild, ""),
				domain.NewPrerequisite("make", domain.PrerequisiteBuild, ""),
			},
		},
	}
}

// metadata returns the key-value pairs attached to err.
func metadata(err error) map[string]any {
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		return zErr.Metadata()
	}
	return nil
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
