// Package arn parses Amazon Resource Name strings into structured records.
// ARNs are not a single unambiguous grammar: the resource portion may itself
// contain colons or slashes and AWS services do not agree on which. The
// parser resolves the ambiguity with an ordered set of positional rules that
// must be preserved exactly for compatibility with existing callers.
package arn

import (
	"regexp"
	"strings"

	"github.com/arnlink/arnlink/internal/constants"
	"github.com/arnlink/arnlink/internal/errors"
)

// Prefix is the literal first segment every ARN starts with.
const Prefix = "arn"

var (
	// allowedChars defends against injection: parsed fields are later
	// interpolated into console URLs. Covers letters, digits and the
	// characters AWS permits in resource ids.
	allowedChars = regexp.MustCompile(`^[a-zA-Z0-9 :/+=,.@_*#-]*$`)

	// regionPattern is a hostname-safety check. The region is embedded
	// unescaped as a DNS subdomain component in generated links, so it
	// must never contain anything but lowercase alphanumerics and hyphens.
	regionPattern = regexp.MustCompile(`^[a-z0-9-]*$`)
)

// ARN is a parsed Amazon Resource Name. It is immutable once constructed;
// all accessors are pure.
type ARN struct {
	// Raw is the original trimmed input, used verbatim by some link templates.
	Raw string
	// Prefix must equal "arn" for a console link to be produced.
	Prefix string
	// Partition is the AWS partition (aws, aws-us-gov, aws-cn).
	Partition string
	// Service is the AWS service namespace, e.g. "s3" or "ec2".
	Service string
	// Region is the AWS region code; empty for global resources.
	Region string
	// Account is the account id, passed through unvalidated.
	Account string
	// ResourceType is the resource type segment; empty for services
	// with no type segment (e.g. s3 buckets, sns topics).
	ResourceType string
	// Resource is the resource identifier. It may itself contain colons
	// or slashes (Lambda version qualifiers, CloudWatch Logs group names).
	Resource string
	// ResourceRevision is the trailing qualifier of the "type/id:revision"
	// form (ECS task-definition revisions); empty when absent.
	ResourceRevision string
	// HasPath records whether resource type and id were joined by "/"
	// rather than ":", so String can reconstruct the original delimiter.
	HasPath bool
}

// Parse parses text into an ARN.
//
// Validation happens in a fixed order, each step a distinct failure mode:
// whitespace is trimmed, length is bounded, the character set is checked,
// the string is split on ":" into at least six positional tokens, the
// resource segment shape is resolved, and finally the region is checked
// against the hostname-safe pattern.
func Parse(text string) (*ARN, error) {
	text = strings.TrimSpace(text)

	if len(text) > constants.MaxArnLength {
		return nil, errors.ErrTooLong(len(text), constants.MaxArnLength)
	}
	if !allowedChars.MatchString(text) {
		return nil, errors.ErrInvalidCharacters()
	}

	tokens := strings.Split(text, ":")
	if len(tokens) < 6 {
		return nil, errors.ErrMalformedArn("bad number of tokens")
	}

	a := &ARN{
		Raw:       text,
		Prefix:    tokens[0],
		Partition: tokens[1],
		Service:   tokens[2],
		Region:    tokens[3],
		Account:   tokens[4],
	}

	// Resource-segment shape resolution, tried in order:
	//   a. type:id[:revision] — a 7th token exists; if the 6th token also
	//      contains "/", it is really type/id with a trailing revision.
	//   b. type/id — no extra colon, 6th token split at the first "/".
	//   c. bare id — the whole 6th token is the resource.
	sixth := tokens[5]
	switch {
	case len(tokens) > 6:
		if rtype, rest, found := strings.Cut(sixth, "/"); found {
			a.ResourceType = rtype
			a.Resource = rest
			a.ResourceRevision = strings.Join(tokens[6:], ":")
			a.HasPath = true
		} else {
			a.ResourceType = sixth
			a.Resource = strings.Join(tokens[6:], ":")
		}
	case strings.Contains(sixth, "/"):
		rtype, rest, _ := strings.Cut(sixth, "/")
		a.ResourceType = rtype
		a.Resource = rest
		a.HasPath = true
	default:
		a.Resource = sixth
	}

	if a.Region != "" && !regionPattern.MatchString(a.Region) {
		return nil, errors.ErrInvalidRegion(a.Region)
	}

	return a, nil
}

// ParseAny parses inputs of unknown dynamic type, e.g. values decoded from
// JSON. Non-string inputs fail with a type mismatch before Parse runs.
func ParseAny(v any) (*ARN, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.ErrTypeMismatch(v)
	}
	return Parse(s)
}

// String reconstructs the canonical ARN text. For any accepted input the
// original delimiter shape round-trips: Parse(x).String() == trimmed x.
func (a *ARN) String() string {
	var b strings.Builder
	b.WriteString(a.Prefix)
	b.WriteByte(':')
	b.WriteString(a.Partition)
	b.WriteByte(':')
	b.WriteString(a.Service)
	b.WriteByte(':')
	b.WriteString(a.Region)
	b.WriteByte(':')
	b.WriteString(a.Account)
	b.WriteByte(':')
	b.WriteString(a.resourcePortion())
	return b.String()
}

// resourcePortion rebuilds everything after the fifth colon in the
// original delimiter style.
func (a *ARN) resourcePortion() string {
	switch {
	case a.HasPath:
		s := a.ResourceType + "/" + a.Resource
		if a.ResourceRevision != "" {
			s += ":" + a.ResourceRevision
		}
		return s
	case a.ResourceType != "":
		return a.ResourceType + ":" + a.Resource
	default:
		return a.Resource
	}
}

// Qualifiers splits the resource id on ":". Services whose resource id is a
// colon-delimited tuple (a Lambda function name and version, for example)
// address the pieces by position.
func (a *ARN) Qualifiers() []string {
	return strings.Split(a.Resource, ":")
}

// PathAllButLast returns everything before the final "/" of the resource id,
// or empty string when the resource has no path. Only meaningful for
// resources known to be path-shaped, such as ECS cluster/service pairs.
func (a *ARN) PathAllButLast() string {
	idx := strings.LastIndex(a.Resource, "/")
	if idx < 0 {
		return ""
	}
	return a.Resource[:idx]
}

// PathLast returns the final "/"-delimited segment of the resource id, or
// the whole resource id when it has no path.
func (a *ARN) PathLast() string {
	idx := strings.LastIndex(a.Resource, "/")
	if idx < 0 {
		return a.Resource
	}
	return a.Resource[idx+1:]
}
