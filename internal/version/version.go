// Package version compares dotted RPM version and release strings such as
// "2.12" or "1.47.el6".
//
// The comparison is not a total order. Two strings whose components all
// compare equal are neither greater nor smaller than each other.
package version

import "strings"

// distTag marks the distribution part of a release, as in "el6"
const distTag = "el"

// IsGreater reports whether a is strictly greater than b.
//
// Both strings are split on "." and walked component by component:
//   - if one string runs out of components first, the longer one is greater;
//   - if only one component contains "el", the other one is greater;
//   - components made of digits only are compared numerically, anything
//     else lexicographically.
//
// The first component that differs decides.
func IsGreater(a, b string) bool {
	return walk(a, b) > 0
}

// Compare returns 1 if a is greater than b, -1 if b is greater than a and 0
// when neither is.
func Compare(a, b string) int {
	return walk(a, b)
}

func walk(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		if i >= len(as) {
			return -1
		}
		if i >= len(bs) {
			return 1
		}
		if c := compareComponent(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareComponent decides a single component.
// The "el" check is a plain substring test and must stay that way.
func compareComponent(a, b string) int {
	aTag := strings.Contains(a, distTag)
	bTag := strings.Contains(b, distTag)
	switch {
	case aTag && !bTag:
		return -1
	case bTag && !aTag:
		return 1
	}

	if isNumeric(a) && isNumeric(b) {
		return compareNumeric(a, b)
	}
	return strings.Compare(a, b)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compareNumeric compares two digit strings by value without converting them,
// so components longer than an int64 are still ordered correctly.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}
	return strings.Compare(a, b)
}
