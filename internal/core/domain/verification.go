package domain

// SampleFileName is the scratch source file compiled by the smoke test.
const SampleFileName = "test.omega"

// VersionFlag is the argument that makes the compiler print its version.
const VersionFlag = "--version"

// BuildSubcommand is the compiler subcommand that compiles a source file.
const BuildSubcommand = "build"

// SampleProgram is a minimal valid OMEGA program: one typed state field,
// a constructor assigning it, and a read-only accessor.
const SampleProgram = `blockchain SimpleTest {
    state {
        uint256 value;
    }

    constructor() {
        value = 42;
    }

    function get_value() public view returns (uint256) {
        return value;
    }
}
`

// VerificationCheck is the smoke test of one install attempt. It lives only
// for the duration of that attempt.
type VerificationCheck struct {
	// Binary is the absolute path of the installed executable.
	Binary string
	// Workspace is the scratch directory the sample is built in.
	Workspace string
	// OutputDir is the directory name the build must create inside Workspace.
	OutputDir string
}

// VersionCommand returns the version probe invocation.
func (v VerificationCheck) VersionCommand() *Command {
	return &Command{
		Label:      "version probe",
		Args:       []string{v.Binary, VersionFlag},
		WorkingDir: v.Workspace,
	}
}

// BuildCommand returns the sample build invocation.
func (v VerificationCheck) BuildCommand() *Command {
	return &Command{
		Label:      "sample build",
		Args:       []string{v.Binary, BuildSubcommand, SampleFileName},
		WorkingDir: v.Workspace,
	}
}
