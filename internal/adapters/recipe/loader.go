// Package recipe loads install recipes from YAML.
package recipe

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed default_recipe.yaml
var defaultRecipe []byte

// Loader implements ports.RecipeLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the recipe at path, or the built-in recipe when path is empty.
func (l *Loader) Load(path string) (*domain.Recipe, error) {
	if path == "" {
		return Parse(defaultRecipe)
	}

	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrRecipeReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("loaded recipe " + r.Release.Name + " " + r.Release.Version + " from " + path)
	}
	return r, nil
}

// Default returns the built-in recipe.
func Default() (*domain.Recipe, error) {
	return Parse(defaultRecipe)
}

// Parse decodes and validates a recipe document.
func Parse(data []byte) (*domain.Recipe, error) {
	var file Recipefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRecipeParseFailed.Error())
	}
	return toDomain(&file)
}

func toDomain(file *Recipefile) (*domain.Recipe, error) {
	if file.Release.Name == "" {
		return nil, zerr.With(domain.ErrInvalidRecipe, "missing_field", "release.name")
	}
	if file.Release.Version == "" {
		return nil, zerr.With(domain.ErrInvalidRecipe, "missing_field", "release.version")
	}

	prereqs, err := toPrerequisites(file.Prerequisites)
	if err != nil {
		return nil, err
	}

	if err := validateArtifact(file.Build.Artifact); err != nil {
		return nil, err
	}

	if err := validateBinary(file.Build.Binary); err != nil {
		return nil, err
	}

	return &domain.Recipe{
		Release: domain.Release{
			Name:    file.Release.Name,
			Version: file.Release.Version,
			Source: domain.SourceArchive{
				URL:    file.Release.Source.URL,
				SHA256: file.Release.Source.SHA256,
			},
			Prerequisites: prereqs,
		},
		Strategy:    file.Build.Strategy,
		Binary:      file.Build.Binary,
		Artifact:    file.Build.Artifact,
		Environment: file.Build.Environment,
	}, nil
}

func toPrerequisites(dtos []PrerequisiteDTO) ([]domain.Prerequisite, error) {
	seen := make(map[string]struct{}, len(dtos))
	out := make([]domain.Prerequisite, 0, len(dtos))

	for _, dto := range dtos {
		if dto.Name == "" {
			return nil, zerr.With(domain.ErrInvalidRecipe, "missing_field", "prerequisites.name")
		}
		if _, dup := seen[dto.Name]; dup {
			err := zerr.With(domain.ErrInvalidRecipe, "duplicate_prerequisite", dto.Name)
			return nil, err
		}
		seen[dto.Name] = struct{}{}

		kind := domain.PrerequisiteKind(dto.Kind)
		switch kind {
		case "", domain.PrerequisiteBuild, domain.PrerequisiteRuntime:
		default:
			err := zerr.With(domain.ErrInvalidPrerequisiteKind, "kind", dto.Kind)
			return nil, zerr.With(err, "prerequisite", dto.Name)
		}

		out = append(out, domain.NewPrerequisite(dto.Name, kind, dto.Executable))
	}
	return out, nil
}

// validateArtifact rejects artifact paths that leave the source tree.
func validateArtifact(artifact string) error {
	if artifact == "" {
		return nil
	}
	clean := filepath.Clean(artifact)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return zerr.With(domain.ErrInvalidRecipe, "artifact", artifact)
	}
	return nil
}

// validateBinary rejects binary names that do not name a single file in bin.
// An empty name selects the default.
func validateBinary(binary string) error {
	if binary == "" {
		return nil
	}
	if binary == "." || binary == ".." || strings.ContainsAny(binary, `/\`) {
		return zerr.With(domain.ErrInvalidRecipe, "binary", binary)
	}
	return nil
}
