// Package version carries the build version, set with
// -ldflags "-X selffold/internal/version.Version=...".
package version

var Version = "dev"
