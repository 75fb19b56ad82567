package domain

import "path/filepath"

// StepKind tells the copy routine how to treat a step's source.
type StepKind string

const (
	// StepFile copies a single file to Dest, which names the destination file.
	StepFile StepKind = "file"
	// StepContents copies the children of a source directory into the Dest directory.
	StepContents StepKind = "contents"
)

// InstallStep describes one copy from the source tree into the install layout.
type InstallStep struct {
	// Name identifies the step in logs and reports.
	Name string
	// Source is relative to the source tree root.
	Source string
	// Dest is an absolute destination path.
	Dest string
	Kind StepKind
	// Required steps fail the install when Source is absent; optional ones are skipped.
	Required bool
	// Mode is the permission applied to copied files. Zero keeps FilePerm.
	Mode uint32
	// PreserveExisting leaves an existing Dest untouched and installs the
	// new copy beside it with ConfigDefaultSuffix.
	PreserveExisting bool
}

// DocumentFiles are the named top-level documents shipped with a release.
var DocumentFiles = []string{
	"README.md",
	"LANGUAGE_SPECIFICATION.md",
	"COMPILER_ARCHITECTURE.md",
}

// InstallSteps returns the copy descriptors for installing a built release.
// artifact is the binary path relative to the source tree.
func InstallSteps(layout InstallLayout, binary, artifact string) []InstallStep {
	steps := []InstallStep{
		{
			Name:     "binary",
			Source:   artifact,
			Dest:     layout.BinaryPath(binary),
			Kind:     StepFile,
			Required: true,
			Mode:     ExecPerm,
		},
		{Name: "stdlib", Source: filepath.Join("src", "std"), Dest: layout.LibDir, Kind: StepContents},
		{Name: "examples", Source: "examples", Dest: layout.ExamplesDir, Kind: StepContents},
		{Name: "contracts", Source: "contracts", Dest: layout.ContractsDir, Kind: StepContents},
	}

	for _, doc := range DocumentFiles {
		steps = append(steps, InstallStep{
			Name:   "doc:" + doc,
			Source: doc,
			Dest:   filepath.Join(layout.DocDir, doc),
			Kind:   StepFile,
		})
	}

	return append(steps,
		InstallStep{Name: "docs", Source: "docs", Dest: layout.DocDir, Kind: StepContents},
		InstallStep{
			Name:             "config",
			Source:           ConfigFileName,
			Dest:             layout.ConfigPath(),
			Kind:             StepFile,
			PreserveExisting: true,
		},
	)
}
