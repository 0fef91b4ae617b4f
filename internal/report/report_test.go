package report

import (
	"bytes"
	"testing"

	"github.com/ralt/rpmupdates/internal/matcher"
	"github.com/ralt/rpmupdates/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	answers := matcher.NewAnswerSet()
	answers.Add("openssl")
	answers.Add("glibc")
	answers.Add("glibc")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, answers))
	assert.Equal(t, "glibc\nopenssl\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, matcher.NewAnswerSet()))
	assert.Empty(t, buf.String())
}

func TestFormatMatch(t *testing.T) {
	r := matcher.MatchResult{
		Installed: models.Package{Name: "glibc", Version: "2.12", Release: "1.47.el6", Architecture: "x86_64"},
		Candidate: models.Package{Name: "glibc", Version: "2.12", Release: "1.46.el6", Architecture: "x86_64",
			UpdateClass: "security", Origin: "updateinfo.xml"},
		Class: matcher.Downgrade,
	}

	assert.Equal(t,
		"- security available for glibc x86_64 2.12 1.47.el6 to 2.12 1.46.el6 (updateinfo.xml)",
		FormatMatch(r))
}

func TestNarratorLogsAtDebug(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	Narrator(logger).Narrate(matcher.MatchResult{Class: matcher.Upgrade})

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "+ ")
}

func TestLogSummary(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	LogCatalog(logger, models.Catalog{Origin: "installed", Packages: make([]models.Package, 3), Skipped: 1})
	LogSummary(logger, matcher.Summary{Eligible: 4, Downgrades: 1, Equal: 1, Recorded: 2})

	require.Len(t, hook.AllEntries(), 5)
	assert.Equal(t, "Found 3 packages in installed", hook.AllEntries()[0].Message)
	assert.Equal(t, "2 updates recorded", hook.LastEntry().Message)
}
