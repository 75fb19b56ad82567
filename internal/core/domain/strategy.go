package domain

import (
	"maps"

	"go.trai.ch/zerr"
)

// StrategyKind names a build strategy variant.
type StrategyKind string

const (
	// StrategyCargo builds with the Rust toolchain.
	StrategyCargo StrategyKind = "cargo"
	// StrategyMake builds with the generic make target.
	StrategyMake StrategyKind = "make"
)

// toolchainPrerequisites and automationPrerequisites are the prerequisite
// names that select each strategy.
var (
	toolchainPrerequisites  = []string{"rust", "cargo"}
	automationPrerequisites = []string{"make"}
)

// BuildStrategy is one of the mutually exclusive ways to compile the toolchain.
// The set of variants is closed: CargoStrategy and MakeStrategy.
type BuildStrategy interface {
	// Kind returns the variant name.
	Kind() StrategyKind
	// Command returns the build invocation rooted at sourceDir.
	Command(sourceDir string) *Command
	// ArtifactPath returns the produced executable relative to the source tree.
	ArtifactPath() string

	buildStrategy()
}

// CargoStrategy runs a release-mode cargo build of a single binary target.
type CargoStrategy struct {
	Binary      string
	Artifact    string
	Environment map[string]string
}

// Kind implements BuildStrategy.
func (s CargoStrategy) Kind() StrategyKind { return StrategyCargo }

// Command implements BuildStrategy.
func (s CargoStrategy) Command(sourceDir string) *Command {
	return &Command{
		Label:       "cargo build",
		Args:        []string{"cargo", "build", "--release", "--bin", s.Binary},
		Environment: maps.Clone(s.Environment),
		WorkingDir:  sourceDir,
	}
}

// ArtifactPath implements BuildStrategy.
func (s CargoStrategy) ArtifactPath() string { return artifactOrDefault(s.Artifact, s.Binary) }

func (CargoStrategy) buildStrategy() {}

// MakeStrategy runs the top-level make target and trusts it to produce the binary.
type MakeStrategy struct {
	Binary      string
	Artifact    string
	Environment map[string]string
}

// Kind implements BuildStrategy.
func (s MakeStrategy) Kind() StrategyKind { return StrategyMake }

// Command implements BuildStrategy.
func (s MakeStrategy) Command(sourceDir string) *Command {
	return &Command{
		Label:       "make",
		Args:        []string{"make"},
		Environment: maps.Clone(s.Environment),
		WorkingDir:  sourceDir,
	}
}

// ArtifactPath implements BuildStrategy.
func (s MakeStrategy) ArtifactPath() string { return artifactOrDefault(s.Artifact, s.Binary) }

func (MakeStrategy) buildStrategy() {}

func artifactOrDefault(artifact, binary string) string {
	if artifact != "" {
		return artifact
	}
	return DefaultArtifactPath(binary)
}

// SelectStrategy picks the build strategy for a recipe.
// A toolchain prerequisite wins over a build-automation one; the two are never combined.
func SelectStrategy(recipe Recipe) (BuildStrategy, error) {
	kind, err := selectKind(recipe)
	if err != nil {
		return nil, err
	}

	binary := recipe.BinaryName()
	switch kind {
	case StrategyCargo:
		return CargoStrategy{Binary: binary, Artifact: recipe.Artifact, Environment: recipe.Environment}, nil
	case StrategyMake:
		return MakeStrategy{Binary: binary, Artifact: recipe.Artifact, Environment: recipe.Environment}, nil
	default:
		return nil, zerr.With(ErrUnknownBuildStrategy, "strategy", string(kind))
	}
}

func selectKind(recipe Recipe) (StrategyKind, error) {
	release := recipe.Release
	if recipe.Strategy != "" {
		kind := StrategyKind(recipe.Strategy)
		var required []string
		switch kind {
		case StrategyCargo:
			required = toolchainPrerequisites
		case StrategyMake:
			required = automationPrerequisites
		default:
			return "", zerr.With(ErrUnknownBuildStrategy, "strategy", recipe.Strategy)
		}
		if !declaresBuild(release, required) {
			return "", zerr.With(ErrStrategyPrerequisiteUndeclared, "strategy", recipe.Strategy)
		}
		return kind, nil
	}

	switch {
	case declaresBuild(release, toolchainPrerequisites):
		return StrategyCargo, nil
	case declaresBuild(release, automationPrerequisites):
		return StrategyMake, nil
	default:
		return "", zerr.With(ErrNoBuildStrategy, "release", release.Name)
	}
}

func declaresBuild(release Release, names []string) bool {
	return Release{Prerequisites: release.BuildPrerequisites()}.Declares(names...)
}
