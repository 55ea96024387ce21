// Package build carries values stamped into the voltdev binary at link time.
package build

// Version is reported by `voltdev version` and `voltdev --version`.
// Release builds set it with -ldflags "-X go.trai.ch/voltdev/internal/build.Version=<tag>".
var Version = "dev"
