package domain

// RunReport describes a completed pipeline run.
type RunReport struct {
	Mode        BuildMode
	Toolchain   Toolchain
	Platform    Platform
	ProjectName string
	Binary      string
	Artifact    string
	// Compile is the result of invoking the built compiler. It is reported, not enforced,
	// unless the run was strict.
	Compile ExecResult
	// ArtifactDigest is the xxhash of the produced artifact, empty when it was not produced.
	ArtifactDigest string
}
