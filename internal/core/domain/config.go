package domain

import "go.trai.ch/zerr"

// DefaultTargetDir is the build output directory the compiler uses unless configured.
const DefaultTargetDir = "build"

// MaxOptimizationLevel is the highest optimization level the compiler accepts.
const MaxOptimizationLevel = 3

// ConfigDocument is the system configuration of the installed toolchain.
type ConfigDocument struct {
	Compiler    CompilerConfig    `toml:"compiler"`
	Targets     TargetsConfig     `toml:"targets"`
	Security    SecurityConfig    `toml:"security"`
	Development DevelopmentConfig `toml:"development"`
}

// CompilerConfig holds compiler defaults.
type CompilerConfig struct {
	OptimizationLevel int    `toml:"optimization_level"`
	TargetDir         string `toml:"target_dir"`
}

// TargetsConfig enables deployment targets.
type TargetsConfig struct {
	EVM    bool `toml:"evm"`
	Solana bool `toml:"solana"`
	Cosmos bool `toml:"cosmos"`
}

// SecurityConfig holds security checks.
type SecurityConfig struct {
	StrictMode bool `toml:"strict_mode"`
	AuditMode  bool `toml:"audit_mode"`
}

// DevelopmentConfig holds developer conveniences.
type DevelopmentConfig struct {
	DebugSymbols  bool `toml:"debug_symbols"`
	VerboseOutput bool `toml:"verbose_output"`
}

// DefaultConfig returns the config written when none exists.
func DefaultConfig() ConfigDocument {
	return ConfigDocument{
		Compiler: CompilerConfig{
			OptimizationLevel: 2,
			TargetDir:         DefaultTargetDir,
		},
		Targets: TargetsConfig{
			EVM:    true,
			Solana: true,
			Cosmos: false,
		},
		Security: SecurityConfig{
			StrictMode: true,
			AuditMode:  false,
		},
		Development: DevelopmentConfig{
			DebugSymbols:  true,
			VerboseOutput: false,
		},
	}
}

// Validate checks value ranges the compiler relies on.
func (c ConfigDocument) Validate() error {
	if c.Compiler.OptimizationLevel < 0 || c.Compiler.OptimizationLevel > MaxOptimizationLevel {
		return zerr.With(ErrInvalidConfig, "optimization_level", c.Compiler.OptimizationLevel)
	}
	if c.Compiler.TargetDir == "" {
		return zerr.With(ErrInvalidConfig, "target_dir", "")
	}
	return nil
}

// TargetDir returns the configured build output directory, or DefaultTargetDir.
func (c *ConfigDocument) TargetDir() string {
	if c == nil || c.Compiler.TargetDir == "" {
		return DefaultTargetDir
	}
	return c.Compiler.TargetDir
}
