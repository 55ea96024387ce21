package domain

import "strings"

// BuildMode selects the toolchain and generator pair used to configure the build.
type BuildMode string

const (
	// ModeDefault builds with GCC through the Ninja generator.
	ModeDefault BuildMode = ""
	// ModeMSVC builds with MSVC through the Visual Studio generator.
	ModeMSVC BuildMode = "msvc"
)

// ParseBuildMode normalizes a user supplied mode token.
// The match is case-insensitive and every unknown token maps to ModeDefault.
func ParseBuildMode(token string) BuildMode {
	if strings.ToLower(token) == string(ModeMSVC) {
		return ModeMSVC
	}
	return ModeDefault
}

// String returns a human readable name for the mode.
func (m BuildMode) String() string {
	if m == ModeDefault {
		return "default"
	}
	return string(m)
}

// Toolchain is the pair of configure arguments derived from a BuildMode.
type Toolchain struct {
	CompilerFlag string
	Generator    string
}

var (
	gccToolchain = Toolchain{
		CompilerFlag: "-DVOLT_USE_GCC=ON",
		Generator:    "Ninja",
	}
	msvcToolchain = Toolchain{
		CompilerFlag: "-DVOLT_USE_MSVC=ON",
		Generator:    "Visual Studio 17",
	}
)

// SelectToolchain maps a mode to its toolchain. The mapping is total.
func SelectToolchain(mode BuildMode) Toolchain {
	if mode == ModeMSVC {
		return msvcToolchain
	}
	return gccToolchain
}

// ConfigureArgs returns the toolchain as extra arguments for the configure step.
func (t Toolchain) ConfigureArgs() []string {
	return []string{t.CompilerFlag, "-G", t.Generator}
}
