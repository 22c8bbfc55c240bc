// Package constants defines global constants used throughout arnlink.
// It includes version information, config paths, and parser limits.
package constants

var version = "0.0.0-development" // Updated by CI/CD pipeline at build time

// GetVersion returns the current version of arnlink.
func GetVersion() *string {
	return &version
}

// ProjectName is the name of the CLI tool and library.
const ProjectName = "arnlink"

// MaxArnLength is the maximum accepted ARN length in characters.
// Loosely modeled on the IAM documented ARN length limit; longer
// inputs are rejected before any further processing.
const MaxArnLength = 2048
