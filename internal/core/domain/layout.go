package domain

import "path/filepath"

const (
	// PackageName is the name the toolchain is installed under.
	PackageName = "omega"

	// ConfigFileName is the name of the system config document.
	ConfigFileName = "omega.toml"

	// ConfigDefaultSuffix is appended to an archive-provided config that would
	// otherwise overwrite an existing one.
	ConfigDefaultSuffix = ".default"

	// MetaDirName is the name of the installer's private directory under the prefix.
	MetaDirName = ".omegaup"

	// ReceiptDirName is the name of the receipt directory inside MetaDirName.
	ReceiptDirName = "receipts"

	// DefaultPrefix is the install prefix used when none is configured.
	DefaultPrefix = "/usr/local"

	// PrefixEnvVar overrides DefaultPrefix.
	PrefixEnvVar = "OMEGAUP_PREFIX"

	// DirPerm is the default permission for directories (rwxr-xr-x).
	DirPerm = 0o755

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for installed executables (rwxr-xr-x).
	ExecPerm = 0o755

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// InstallLayout is the set of destination directories populated by an install.
type InstallLayout struct {
	Prefix       string
	BinDir       string
	LibDir       string
	ExamplesDir  string
	ContractsDir string
	DocDir       string
	ConfigDir    string
	StateDir     string
}

// NewInstallLayout returns the layout for the toolchain under prefix.
func NewInstallLayout(prefix string) InstallLayout {
	prefix = filepath.Clean(prefix)
	share := filepath.Join(prefix, "share")
	return InstallLayout{
		Prefix:       prefix,
		BinDir:       filepath.Join(prefix, "bin"),
		LibDir:       filepath.Join(prefix, "lib", PackageName),
		ExamplesDir:  filepath.Join(share, PackageName, "examples"),
		ContractsDir: filepath.Join(share, PackageName, "contracts"),
		DocDir:       filepath.Join(share, "doc", PackageName),
		ConfigDir:    filepath.Join(prefix, "etc", PackageName),
		StateDir:     filepath.Join(prefix, "var", PackageName),
	}
}

// ConfigPath returns the path of the system config document.
func (l InstallLayout) ConfigPath() string {
	return filepath.Join(l.ConfigDir, ConfigFileName)
}

// BinaryPath returns the path of the installed executable with the given name.
func (l InstallLayout) BinaryPath(binary string) string {
	return filepath.Join(l.BinDir, binary)
}

// ReceiptDir returns the directory holding install receipts.
func (l InstallLayout) ReceiptDir() string {
	return filepath.Join(l.Prefix, MetaDirName, ReceiptDirName)
}

// PreservedDirs returns the directories an uninstall must leave alone.
func (l InstallLayout) PreservedDirs() []string {
	return []string{l.ConfigDir, l.StateDir}
}
