// Package matcher pairs installed packages with candidate updates from feed
// catalogs and collects the names of packages that can be upgraded.
package matcher

import (
	"github.com/ralt/rpmupdates/internal/models"
)

// Narrator receives every eligible pair evaluated during a merge
type Narrator interface {
	Narrate(result MatchResult)
}

// NarratorFunc adapts a function to the Narrator interface
type NarratorFunc func(result MatchResult)

// Narrate calls f(result)
func (f NarratorFunc) Narrate(result MatchResult) {
	f(result)
}

// Options controls a merge
type Options struct {
	// UpgradesOnly drops downgrade and equal pairs from the answers
	UpgradesOnly bool

	// Narrator is optional
	Narrator Narrator
}

// Summary counts what a merge saw
type Summary struct {
	Eligible   int
	Upgrades   int
	Downgrades int
	Equal      int
	Recorded   int
}

// Result is the outcome of a merge
type Result struct {
	Answers *AnswerSet
	Summary Summary
}

// Merge compares every candidate of every feed catalog against every
// installed package. Catalogs are only read.
func Merge(feeds []models.Catalog, installed models.Catalog, opts Options) *Result {
	res := &Result{Answers: NewAnswerSet()}

	for _, feed := range feeds {
		for _, candidate := range feed.Packages {
			for _, existing := range installed.Packages {
				if !existing.Matches(candidate) {
					continue
				}

				class := Classify(existing, candidate)
				res.Summary.Eligible++
				switch class {
				case Upgrade:
					res.Summary.Upgrades++
				case Downgrade:
					res.Summary.Downgrades++
				case Equal:
					res.Summary.Equal++
				}

				if opts.Narrator != nil {
					opts.Narrator.Narrate(MatchResult{Installed: existing, Candidate: candidate, Class: class})
				}

				if class != Upgrade && opts.UpgradesOnly {
					continue
				}

				res.Answers.Add(existing.Name)
				res.Summary.Recorded++
			}
		}
	}

	return res
}
