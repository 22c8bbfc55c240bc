// Package console resolves parsed ARNs into AWS web console deep links.
// Resolution is a two-level dispatch: service name, then resource type,
// into a table of per-type link builders. The table is read-only, built
// once at init, and shared by all callers.
package console

import (
	"sort"

	"github.com/arnlink/arnlink/internal/arn"
	"github.com/arnlink/arnlink/internal/errors"
)

// consoleHosts maps an ARN partition to the hostname of that partition's
// web console. Partitions outside this set have no public console.
var consoleHosts = map[string]string{
	"aws":        "console.aws.amazon.com",
	"aws-us-gov": "console.amazonaws-us-gov.com",
	"aws-cn":     "console.amazonaws.cn",
}

// Target bundles a parsed ARN with the partition console hostname so link
// builders can assemble absolute URLs. Builders receive everything through
// the Target; there is no hidden shared context.
type Target struct {
	*arn.ARN

	// Console is the console hostname for the ARN's partition.
	Console string
}

// LinkFunc builds a console URL for one resource type. Returning "" means
// the builder recognizes the ARN but cannot produce a link for this
// sub-case; callers treat that the same as an unmodeled resource type.
type LinkFunc func(t Target) string

// Link resolves a parsed ARN to its console URL.
func Link(a *arn.ARN) (string, error) {
	if a.Prefix != arn.Prefix {
		return "", errors.ErrNotAnArn(a.Prefix)
	}

	host, ok := consoleHosts[a.Partition]
	if !ok {
		return "", errors.ErrUnsupportedPartition(a.Partition)
	}

	service, ok := templates[a.Service]
	if !ok {
		return "", errors.ErrUnknownService(a.Service)
	}

	// A nil builder is a known resource type with no modeled link. The
	// distinction from an absent key is internal only; both mean no link.
	build, ok := service[a.ResourceType]
	if !ok || build == nil {
		return "", errors.ErrUnsupportedResourceType(a.Service, a.ResourceType)
	}

	link := build(Target{ARN: a, Console: host})
	if link == "" {
		return "", errors.ErrUnsupportedResourceType(a.Service, a.ResourceType)
	}
	return link, nil
}

// Services returns the sorted list of services present in the link table.
func Services() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResourceTypes returns the sorted resource types known for a service and
// whether the service is present at all. The list includes types with no
// modeled link; the table doubles as a coverage artifact.
func ResourceTypes(service string) ([]string, bool) {
	entries, ok := templates[service]
	if !ok {
		return nil, false
	}
	types := make([]string, 0, len(entries))
	for name := range entries {
		types = append(types, name)
	}
	sort.Strings(types)
	return types, true
}

// Supported reports whether a (service, resource type) pair has a modeled
// link builder. A known type with a nil builder is not supported.
func Supported(service, resourceType string) bool {
	entries, ok := templates[service]
	if !ok {
		return false
	}
	return entries[resourceType] != nil
}

// url builds an absolute URL on the partition console host.
func (t Target) url(path string) string {
	return "https://" + t.Console + path
}

// home returns the console home URL for a service slug, carrying the
// region as a query parameter the way most consoles route.
func (t Target) home(slug string) string {
	return t.url("/" + slug + "/home?region=" + t.Region)
}

// globalHome is home for global services (IAM, Route 53) whose consoles
// take no region parameter.
func (t Target) globalHome(slug string) string {
	return t.url("/" + slug + "/home")
}
