// Package catalog turns an installed package inventory and update feed
// documents into catalogs of package records.
package catalog

import (
	"strings"

	"github.com/ralt/rpmupdates/internal/identifier"
	"github.com/ralt/rpmupdates/internal/models"
	"github.com/sirupsen/logrus"
)

// BuildInstalled builds the installed catalog from inventory lines as printed
// by `rpm -qa`. Blank lines are ignored; lines that cannot be parsed are
// counted in Skipped.
func BuildInstalled(lines []string) models.Catalog {
	c := models.Catalog{Origin: models.OriginInstalled}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		f, ok := identifier.ParseLine(line)
		if !ok {
			logrus.Debugf("Skipping unparseable inventory line: %q", line)
			c.Skipped++
			continue
		}

		c.Packages = append(c.Packages, newPackage(f, models.ClassExisting, models.OriginInstalled))
	}

	return c
}

func newPackage(f identifier.Fields, class, origin string) models.Package {
	return models.Package{
		Name:         f.Name,
		Version:      f.Version,
		Release:      f.Release,
		Architecture: f.Architecture,
		UpdateClass:  class,
		Origin:       origin,
	}
}
