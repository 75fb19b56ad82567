package recipe

// Recipefile represents the structure of a recipe YAML file.
type Recipefile struct {
	Version       string            `yaml:"version"`
	Release       ReleaseDTO        `yaml:"release"`
	Prerequisites []PrerequisiteDTO `yaml:"prerequisites"`
	Build         BuildDTO          `yaml:"build"`
}

// ReleaseDTO identifies the source release.
type ReleaseDTO struct {
	Name    string    `yaml:"name"`
	Version string    `yaml:"version"`
	Source  SourceDTO `yaml:"source"`
}

// SourceDTO references the release archive.
type SourceDTO struct {
	URL    string `yaml:"url"`
	SHA256 string `yaml:"sha256"`
}

// PrerequisiteDTO declares an external tool.
type PrerequisiteDTO struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	Executable string `yaml:"executable"`
}

// BuildDTO holds the build settings.
type BuildDTO struct {
	Strategy    string            `yaml:"strategy"`
	Binary      string            `yaml:"binary"`
	Artifact    string            `yaml:"artifact"`
	Environment map[string]string `yaml:"environment"`
}
