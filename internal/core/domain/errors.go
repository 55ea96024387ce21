package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildExecutionFailed is returned when the configure or build step of the build system fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrConfigureFailed is returned when the build system configure step exits unsuccessfully.
	ErrConfigureFailed = zerr.New("configure step failed")

	// ErrBuildFailed is returned when the build system build step exits unsuccessfully.
	ErrBuildFailed = zerr.New("build step failed")

	// ErrBuildDirCreateFailed is returned when the build output directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrCacheNotFound is returned when the build system cache file is missing or unreadable.
	ErrCacheNotFound = zerr.New("build cache file not found")

	// ErrCacheParseFailed is returned when the build system cache file cannot be scanned.
	ErrCacheParseFailed = zerr.New("failed to scan build cache file")

	// ErrCompilerFailed is returned in strict mode when the compiler under test exits unsuccessfully.
	ErrCompilerFailed = zerr.New("compiler invocation failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvParseFailed is returned when environment overrides cannot be parsed.
	ErrEnvParseFailed = zerr.New("failed to parse environment overrides")

	// ErrInvalidArgs is returned when a configured argument string cannot be split into words.
	ErrInvalidArgs = zerr.New("invalid argument string")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWalkFailed is returned when the source tree cannot be traversed.
	ErrWalkFailed = zerr.New("failed to walk source tree")

	// ErrDirUnreadable is reported for a directory below the walk root that cannot be listed.
	ErrDirUnreadable = zerr.New("directory could not be read")
)
