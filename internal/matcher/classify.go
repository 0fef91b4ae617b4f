package matcher

import (
	"github.com/ralt/rpmupdates/internal/models"
	"github.com/ralt/rpmupdates/internal/version"
)

// Classification is the verdict for an installed/candidate pair
type Classification int

const (
	// Indeterminate is used for pairs that are not eligible for comparison
	Indeterminate Classification = iota
	Upgrade
	Downgrade
	Equal
)

// String returns the string representation of Classification
func (c Classification) String() string {
	switch c {
	case Upgrade:
		return "upgrade"
	case Downgrade:
		return "downgrade"
	case Equal:
		return "equal"
	default:
		return "indeterminate"
	}
}

// Sign returns the one-character marker used in narration
func (c Classification) Sign() string {
	switch c {
	case Upgrade:
		return "+"
	case Downgrade:
		return "-"
	case Equal:
		return "="
	default:
		return "?"
	}
}

// MatchResult is one evaluated installed/candidate pair
type MatchResult struct {
	Installed models.Package
	Candidate models.Package
	Class     Classification
}

// Classify compares candidate against the installed package. Versions are
// compared first; releases only break a version tie. A pair that ties on
// both is Equal, which is an approximation for schemes carrying build
// metadata outside the dotted form.
func Classify(installed, candidate models.Package) Classification {
	if !installed.Matches(candidate) {
		return Indeterminate
	}

	cmp := version.Compare(candidate.Version, installed.Version)
	if cmp == 0 {
		cmp = version.Compare(candidate.Release, installed.Release)
	}

	switch {
	case cmp > 0:
		return Upgrade
	case cmp < 0:
		return Downgrade
	default:
		return Equal
	}
}
