// Package identifier splits package identifiers such as
// "glibc-2.12-1.47.el6.x86_64" into their name, version, release and
// architecture fields.
package identifier

import (
	"strings"
)

const rpmSuffix = ".rpm"

// Fields holds the identifying parts of a package identifier
type Fields struct {
	Name         string
	Version      string
	Release      string
	Architecture string
}

// Parse splits identifier into its fields.
//
// The identifier is split from the right on "-" into name, version and a
// release tail. With assumeTrailingTag the tail must be release.arch.tag and
// the tag is dropped. Without it, the tail is release.arch unless knownArch is
// given, in which case the whole tail is the release.
//
// The boolean result is false when the identifier does not have the expected
// shape or any field would be empty.
func Parse(identifier string, assumeTrailingTag bool, knownArch string) (Fields, bool) {
	parts := rsplit(identifier, "-", 2)
	if len(parts) < 3 {
		return Fields{}, false
	}

	f := Fields{
		Name:    parts[0],
		Version: parts[1],
	}
	tail := parts[2]

	switch {
	case assumeTrailingTag:
		rel := rsplit(tail, ".", 2)
		if len(rel) != 3 {
			return Fields{}, false
		}
		f.Release, f.Architecture = rel[0], rel[1]
	case knownArch == "":
		rel := rsplit(tail, ".", 1)
		if len(rel) != 2 {
			return Fields{}, false
		}
		f.Release, f.Architecture = rel[0], rel[1]
	default:
		f.Release, f.Architecture = tail, knownArch
	}

	if f.Name == "" || f.Version == "" || f.Release == "" || f.Architecture == "" {
		return Fields{}, false
	}
	return f, true
}

// ParseLine parses one line of `rpm -qa` output. Surrounding whitespace is
// ignored and a trailing ".rpm" is treated as the format tag.
func ParseLine(line string) (Fields, bool) {
	line = strings.TrimSpace(line)
	return Parse(line, strings.HasSuffix(line, rpmSuffix), "")
}

// rsplit splits s around sep from the right, at most n times
func rsplit(s, sep string, n int) []string {
	var tail []string
	for i := 0; i < n; i++ {
		idx := strings.LastIndex(s, sep)
		if idx < 0 {
			break
		}
		tail = append(tail, s[idx+len(sep):])
		s = s[:idx]
	}

	parts := make([]string, 0, len(tail)+1)
	parts = append(parts, s)
	for i := len(tail) - 1; i >= 0; i-- {
		parts = append(parts, tail[i])
	}
	return parts
}
