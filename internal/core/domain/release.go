package domain

import (
	"path/filepath"
	"slices"
)

// PrerequisiteKind tells whether a tool is needed to build or to run the toolchain.
type PrerequisiteKind string

const (
	// PrerequisiteBuild marks a tool needed only while building.
	PrerequisiteBuild PrerequisiteKind = "build"
	// PrerequisiteRuntime marks a tool needed by the installed toolchain.
	PrerequisiteRuntime PrerequisiteKind = "runtime"
)

// Prerequisite is an external tool a Release declares it needs.
type Prerequisite struct {
	// Name is the package name of the tool (e.g. "rust").
	Name string
	// Kind is build or runtime.
	Kind PrerequisiteKind
	// Executable is the program proving the tool is available (e.g. "cargo").
	Executable string
}

// well-known package names and the executable that proves each is present.
var knownExecutables = map[string]string{
	"rust":  "cargo",
	"cargo": "cargo",
	"node":  "node",
	"make":  "make",
	"cmake": "cmake",
	"go":    "go",
}

// NewPrerequisite builds a Prerequisite, inferring the executable from the name
// when executable is empty.
func NewPrerequisite(name string, kind PrerequisiteKind, executable string) Prerequisite {
	if kind == "" {
		kind = PrerequisiteBuild
	}
	if executable == "" {
		executable = knownExecutables[name]
	}
	if executable == "" {
		executable = name
	}
	return Prerequisite{Name: name, Kind: kind, Executable: executable}
}

// SourceArchive references the archive a Release was unpacked from.
type SourceArchive struct {
	URL    string
	SHA256 string
}

// Release is a versioned source distribution of the toolchain.
type Release struct {
	Name          string
	Version       string
	Source        SourceArchive
	Prerequisites []Prerequisite
}

// BuildPrerequisites returns the prerequisites declared with the build kind.
func (r Release) BuildPrerequisites() []Prerequisite {
	var out []Prerequisite
	for _, p := range r.Prerequisites {
		if p.Kind == PrerequisiteBuild {
			out = append(out, p)
		}
	}
	return out
}

// Declares reports whether any prerequisite carries one of the given names.
func (r Release) Declares(names ...string) bool {
	return slices.ContainsFunc(r.Prerequisites, func(p Prerequisite) bool {
		return slices.Contains(names, p.Name)
	})
}

// Recipe is a Release together with the settings needed to build and install it.
type Recipe struct {
	Release Release

	// Strategy pins a build strategy by name. Empty means select from prerequisites.
	Strategy string

	// Binary is the name of the executable the build produces.
	Binary string

	// Artifact overrides the artifact path relative to the source tree.
	Artifact string

	// Environment holds extra variables passed to the build command.
	Environment map[string]string
}

// DefaultBinaryName is the executable the toolchain build produces.
const DefaultBinaryName = PackageName

// BinaryName returns the configured binary name or the default.
func (r Recipe) BinaryName() string {
	if r.Binary == "" {
		return DefaultBinaryName
	}
	return r.Binary
}

// DefaultArtifactPath returns where release builds leave the named binary.
func DefaultArtifactPath(binary string) string {
	return filepath.Join("target", "release", binary)
}
