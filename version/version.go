// Package version holds the version of the pki tool.
package version

// Version is replaced at build time, see task/build.go:
//
//	go build -ldflags "-X bazil.org/pki/version.Version=1.2.3"
var Version = "dev"
