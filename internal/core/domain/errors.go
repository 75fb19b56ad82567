package domain

import "go.trai.ch/zerr"

var (
	// ErrPrerequisiteMissing is returned when a declared prerequisite tool cannot be found.
	ErrPrerequisiteMissing = zerr.New("required build prerequisite is not available")

	// ErrNoBuildStrategy is returned when no build strategy matches the declared prerequisites.
	ErrNoBuildStrategy = zerr.New("no build strategy matches the declared prerequisites")

	// ErrUnknownBuildStrategy is returned when a recipe pins a strategy name that does not exist.
	ErrUnknownBuildStrategy = zerr.New("unknown build strategy")

	// ErrStrategyPrerequisiteUndeclared is returned when a pinned strategy's toolchain is not declared.
	ErrStrategyPrerequisiteUndeclared = zerr.New("pinned build strategy requires an undeclared prerequisite")

	// ErrBuildFailed is returned when the external build command fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrRequiredSourceMissing is returned when a required install source is absent.
	ErrRequiredSourceMissing = zerr.New("required install source is missing")

	// ErrInstallStepFailed is returned when copying an install step fails.
	ErrInstallStepFailed = zerr.New("install step failed")

	// ErrProvisionFailed is returned when post-install provisioning fails.
	ErrProvisionFailed = zerr.New("post-install provisioning failed")

	// ErrVerificationFailed is returned when the post-install smoke test fails.
	// The installation itself is left in place.
	ErrVerificationFailed = zerr.New("post-install verification failed")

	// ErrVersionProbeFailed is returned when the installed binary fails its version query.
	ErrVersionProbeFailed = zerr.New("version probe failed")

	// ErrSampleBuildFailed is returned when the installed binary fails to build the sample program.
	ErrSampleBuildFailed = zerr.New("sample build failed")

	// ErrOutputDirMissing is returned when the sample build did not produce its output directory.
	ErrOutputDirMissing = zerr.New("expected build output directory is missing")

	// ErrRecipeReadFailed is returned when the recipe file cannot be read.
	ErrRecipeReadFailed = zerr.New("failed to read recipe file")

	// ErrRecipeParseFailed is returned when the recipe file cannot be parsed.
	ErrRecipeParseFailed = zerr.New("failed to parse recipe file")

	// ErrInvalidRecipe is returned when a recipe is missing required fields.
	ErrInvalidRecipe = zerr.New("invalid recipe")

	// ErrInvalidPrerequisiteKind is returned when a prerequisite kind is not 'build' or 'runtime'.
	ErrInvalidPrerequisiteKind = zerr.New("invalid prerequisite kind, expected 'build' or 'runtime'")

	// ErrConfigReadFailed is returned when the config document cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config document cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEncodeFailed is returned when the config document cannot be encoded.
	ErrConfigEncodeFailed = zerr.New("failed to encode config file")

	// ErrConfigWriteFailed is returned when the config document cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrInvalidConfig is returned when a config document holds out-of-range values.
	ErrInvalidConfig = zerr.New("invalid config")

	// ErrReceiptReadFailed is returned when the install receipt cannot be read.
	ErrReceiptReadFailed = zerr.New("failed to read install receipt")

	// ErrReceiptUnmarshalFailed is returned when the install receipt cannot be unmarshaled.
	ErrReceiptUnmarshalFailed = zerr.New("failed to unmarshal install receipt")

	// ErrReceiptMarshalFailed is returned when the install receipt cannot be marshaled.
	ErrReceiptMarshalFailed = zerr.New("failed to marshal install receipt")

	// ErrReceiptWriteFailed is returned when the install receipt cannot be written.
	ErrReceiptWriteFailed = zerr.New("failed to write install receipt")

	// ErrNotInstalled is returned when an operation needs an install receipt and none exists.
	ErrNotInstalled = zerr.New("no installation found at prefix")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when a path cannot be stat'ed.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFailedToGetPrefix is returned when the install prefix cannot be made absolute.
	ErrFailedToGetPrefix = zerr.New("failed to get absolute path of install prefix")
)
