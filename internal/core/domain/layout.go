package domain

import "path/filepath"

// Default locations, relative to the project root.
const (
	DefaultSourceDir  = "."
	DefaultBuildDir   = "build"
	DefaultCacheFile  = "CMakeCache.txt"
	DefaultTestInput  = "test/test.volt"
	DefaultOutputStem = "test"
)

// Layout holds every path a pipeline run touches.
// Root is absolute; the remaining fields are relative to Root.
type Layout struct {
	Root       string
	SourceDir  string
	BuildDir   string
	CacheFile  string
	TestInput  string
	OutputStem string
}

// DefaultLayout returns the layout rooted at root.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:       root,
		SourceDir:  DefaultSourceDir,
		BuildDir:   DefaultBuildDir,
		CacheFile:  DefaultCacheFile,
		TestInput:  DefaultTestInput,
		OutputStem: DefaultOutputStem,
	}
}

// BuildPath returns the absolute build output directory.
func (l Layout) BuildPath() string {
	return filepath.Join(l.Root, l.BuildDir)
}

// CachePath returns the absolute path of the build system cache file.
func (l Layout) CachePath() string {
	return filepath.Join(l.Root, l.BuildDir, l.CacheFile)
}

// BinaryPath returns the absolute path of the compiled project binary.
func (l Layout) BinaryPath(project string, p Platform) string {
	return filepath.Join(l.Root, l.BuildDir, project+p.BinarySuffix())
}

// ArtifactName returns the object file name requested from the compiler.
func (l Layout) ArtifactName(p Platform) string {
	return l.OutputStem + p.ObjectExt()
}

// DefaultProjectName is the project name used when the cache does not carry one.
func DefaultProjectName(root string) string {
	return filepath.Base(filepath.Clean(root))
}
