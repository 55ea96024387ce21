package domain

// Platform describes the host operating system a pipeline run targets.
// It is computed once per invocation by the caller and never read from ambient state here.
type Platform struct {
	OS string
}

// NewPlatform returns the profile for the given GOOS value.
func NewPlatform(goos string) Platform {
	return Platform{OS: goos}
}

// IsWindows reports whether the profile belongs to the Windows family.
func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

// BinarySuffix is appended to executables built on this platform.
func (p Platform) BinarySuffix() string {
	if p.IsWindows() {
		return ".exe"
	}
	return ""
}

// ObjectExt is the extension of object files produced for this platform.
func (p Platform) ObjectExt() string {
	if p.IsWindows() {
		return ".obj"
	}
	return ".o"
}

// ClearCommand returns the command that clears the console.
func (p Platform) ClearCommand() Command {
	if p.IsWindows() {
		return Command{Name: "cmd", Args: []string{"/c", "cls"}}
	}
	return Command{Name: "clear"}
}
