package domain

import "time"

// Phase is one stage of an install run.
type Phase string

// Install phases in execution order.
const (
	PhasePrerequisites Phase = "prerequisites"
	PhaseBuild         Phase = "build"
	PhaseLayout        Phase = "layout"
	PhaseProvision     Phase = "provision"
	PhaseVerify        Phase = "verify"
)

// Phases lists every phase in execution order.
var Phases = []Phase{PhasePrerequisites, PhaseBuild, PhaseLayout, PhaseProvision, PhaseVerify}

// StepOutcome records what happened to one InstallStep.
type StepOutcome string

const (
	// StepInstalled means the source was copied.
	StepInstalled StepOutcome = "installed"
	// StepSkipped means an optional source was absent.
	StepSkipped StepOutcome = "skipped"
	// StepPreserved means Dest already existed and the copy went beside it.
	StepPreserved StepOutcome = "preserved"
)

// StepResult is the result of one InstallStep.
type StepResult struct {
	Step    string
	Outcome StepOutcome
	// Files are the absolute paths written by the step.
	Files []string
}

// ConfigOutcome records what the provisioner did with the config document.
type ConfigOutcome string

const (
	// ConfigWritten means the default document was created.
	ConfigWritten ConfigOutcome = "written"
	// ConfigPreserved means an existing document was left untouched.
	ConfigPreserved ConfigOutcome = "preserved"
)

// VerifyStatus is the result of the verification phase.
type VerifyStatus string

const (
	// VerifyPassed means every smoke test step succeeded.
	VerifyPassed VerifyStatus = "passed"
	// VerifyFailed means a smoke test step failed.
	VerifyFailed VerifyStatus = "failed"
	// VerifySkipped means verification was not requested.
	VerifySkipped VerifyStatus = "skipped"
)

// InstallReport summarizes an install run.
type InstallReport struct {
	RunID    string
	Release  Release
	Strategy StrategyKind
	Layout   InstallLayout
	Steps    []StepResult
	Config   ConfigOutcome
	// CompilerVersion is the output of the version probe.
	CompilerVersion string
	Verify          VerifyStatus
	Started         time.Time
	Finished        time.Time
}

// InstalledFiles returns every file written by the layout phase.
func (r *InstallReport) InstalledFiles() []string {
	var files []string
	for _, s := range r.Steps {
		files = append(files, s.Files...)
	}
	return files
}

// Step returns the result for the named step.
func (r *InstallReport) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Step == name {
			return s, true
		}
	}
	return StepResult{}, false
}
