// Package arnlink parses AWS Amazon Resource Name strings and resolves
// them to deep links into the AWS web console.
//
// The package is a thin facade over the parser and the link table; the CLI
// and any UI consume only this surface. All operations are pure and safe
// for concurrent use: there is no I/O and no mutable shared state.
package arnlink

import (
	"github.com/arnlink/arnlink/internal/arn"
	"github.com/arnlink/arnlink/internal/console"
)

// ARN is a parsed Amazon Resource Name. See Parse.
type ARN = arn.ARN

// Parse parses text into an ARN, validating length, character set, token
// count and region safety. The returned ARN is immutable.
func Parse(text string) (*ARN, error) {
	return arn.Parse(text)
}

// ParseAny parses inputs of unknown dynamic type; non-string inputs fail
// with a type mismatch error.
func ParseAny(v any) (*ARN, error) {
	return arn.ParseAny(v)
}

// ConsoleLink resolves a parsed ARN to its AWS console URL. It fails when
// the partition has no public console or the (service, resource type) pair
// has no modeled link. Resolution never performs network calls and does not
// check that the resource exists.
func ConsoleLink(a *ARN) (string, error) {
	return console.Link(a)
}

// LinkFor parses text and resolves it to a console URL in one step.
func LinkFor(text string) (string, error) {
	a, err := arn.Parse(text)
	if err != nil {
		return "", err
	}
	return console.Link(a)
}

// Services returns the sorted list of AWS services the link table knows.
func Services() []string {
	return console.Services()
}

// ResourceTypes returns the known resource types for a service, including
// types with no modeled link, and whether the service is known at all.
func ResourceTypes(service string) ([]string, bool) {
	return console.ResourceTypes(service)
}

// Supported reports whether a (service, resource type) pair has a modeled
// console link.
func Supported(service, resourceType string) bool {
	return console.Supported(service, resourceType)
}
