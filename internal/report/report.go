// Package report renders merge results.
package report

import (
	"fmt"
	"io"

	"github.com/ralt/rpmupdates/internal/matcher"
	"github.com/ralt/rpmupdates/internal/models"
	"github.com/sirupsen/logrus"
)

// Write prints one package name per line
func Write(w io.Writer, answers *matcher.AnswerSet) error {
	for _, name := range answers.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// Narrator logs every evaluated pair at debug level
func Narrator(logger logrus.FieldLogger) matcher.Narrator {
	return matcher.NarratorFunc(func(r matcher.MatchResult) {
		logger.Debug(FormatMatch(r))
	})
}

// FormatMatch renders a pair as a single narration line
func FormatMatch(r matcher.MatchResult) string {
	return fmt.Sprintf("%s %s available for %s %s %s %s to %s %s (%s)",
		r.Class.Sign(),
		r.Candidate.UpdateClass,
		r.Installed.Name,
		r.Installed.Architecture,
		r.Installed.Version,
		r.Installed.Release,
		r.Candidate.Version,
		r.Candidate.Release,
		r.Candidate.Origin,
	)
}

// LogCatalog logs how many records a catalog holds and how many were skipped
func LogCatalog(logger logrus.FieldLogger, c models.Catalog) {
	logger.Debugf("Found %d packages in %s", c.Len(), c.Origin)
	if c.Skipped > 0 {
		logger.Debugf("Could not read %d entries in %s", c.Skipped, c.Origin)
	}
}

// LogSummary logs the totals of a merge
func LogSummary(logger logrus.FieldLogger, s matcher.Summary) {
	logger.Debugf("Found %d updates for the installed packages", s.Eligible)
	logger.Debugf("%d seem to be of a lower release, %d are already installed", s.Downgrades, s.Equal)
	logger.Debugf("%d updates recorded", s.Recorded)
}
