// Package version provides version metadata for the library and CLI.
package version

import "fmt"

// These variables are typically injected at build time using -ldflags.
var (
	// Version holds the current version of baseplate.
	Version = "dev"
	// Commit holds the current version commit of baseplate.
	Commit = "none"
	// BuildDate holds the build date of baseplate.
	BuildDate = "unknown"
)

// Struct returns version information in a structured format.
type Struct struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
}

// Info returns a formatted version string.
func Info() string {
	return fmt.Sprintf("baseplate %s (commit: %s, date: %s)", Version, Commit, BuildDate)
}

// Get returns version information as a Struct.
func Get() Struct {
	return Struct{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	}
}
