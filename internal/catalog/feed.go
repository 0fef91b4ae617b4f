package catalog

import (
	"fmt"
	"strings"

	"github.com/ralt/rpmupdates/internal/document"
	"github.com/ralt/rpmupdates/internal/identifier"
	"github.com/ralt/rpmupdates/internal/models"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// classMarkers are the substrings looked for in an advisory's type attribute.
// Matching is case sensitive, and each dialect spells its classes differently.
type classMarkers struct {
	bugfix   string
	security string
}

var (
	errataListMarkers = classMarkers{bugfix: "Bug", security: "Security"}
	updateInfoMarkers = classMarkers{bugfix: "bugfix", security: "security"}
)

func (m classMarkers) selected(class string, filters models.Filters) bool {
	if filters.IncludeAll {
		return true
	}
	return (filters.IncludeBugfix && strings.Contains(class, m.bugfix)) ||
		(filters.IncludeSecurity && strings.Contains(class, m.security))
}

// BuildFeed builds a candidate catalog from a feed document. The document's
// root decides how it is read; an unknown root is an ErrFeedFormat error.
// The document is not modified.
func BuildFeed(root *document.Node, filters models.Filters, origin string) (models.Catalog, error) {
	dialect := document.DetectDialect(root)
	logrus.Debugf("Feed %s detected as %s", origin, dialect)

	switch dialect {
	case document.DialectErrataList:
		return buildErrataList(root, filters, origin), nil
	case document.DialectUpdateInfo:
		return buildUpdateInfo(root, filters, origin), nil
	}

	tag := "<nil>"
	if root != nil {
		tag = root.Tag
	}
	return models.Catalog{}, &models.UpdateError{
		Type:   models.ErrFeedFormat,
		Source: origin,
		Err:    fmt.Errorf("unrecognized document root %q", tag),
	}
}

// buildErrataList reads an <opt> document: one child per advisory carrying a
// type attribute and <packages> entries naming package files. Entries are
// usually file names ending in ".rpm"; bare identifiers are accepted too.
func buildErrataList(root *document.Node, filters models.Filters, origin string) models.Catalog {
	c := models.Catalog{Origin: origin}

	for _, advisory := range root.Children {
		if advisory.Tag == "meta" {
			c.Skipped++
			continue
		}

		class, _ := advisory.Attr("type")
		if !errataListMarkers.selected(class, filters) {
			continue
		}

		entries := lo.Filter(advisory.Children, func(n *document.Node, _ int) bool {
			return n.Tag == "packages"
		})
		for _, entry := range entries {
			f, ok := identifier.ParseLine(entry.Text)
			if !ok {
				logrus.Debugf("Skipping unparseable package %q in %s", entry.Text, advisory.Tag)
				c.Skipped++
				continue
			}
			c.Packages = append(c.Packages, newPackage(f, class, origin))
		}
	}

	return c
}

// buildUpdateInfo reads an <updates> document. Packages already carry their
// fields as attributes of pkglist/collection/package.
func buildUpdateInfo(root *document.Node, filters models.Filters, origin string) models.Catalog {
	c := models.Catalog{Origin: origin}

	for _, update := range root.Children {
		if update.Tag != "update" {
			continue
		}

		class, _ := update.Attr("type")
		if !updateInfoMarkers.selected(class, filters) {
			continue
		}

		pkglist := update.Child("pkglist")
		if pkglist == nil {
			continue
		}

		// modular updates carry one collection per module stream
		for _, collection := range pkglist.Children {
			if collection.Tag != "collection" {
				continue
			}
			readCollection(&c, collection, class, origin)
		}
	}

	return c
}

func readCollection(c *models.Catalog, collection *document.Node, class, origin string) {
	for _, entry := range collection.Children {
		if entry.Tag != "package" {
			continue
		}

		pkg := models.Package{
			Name:         entry.Attrs["name"],
			Version:      entry.Attrs["version"],
			Release:      entry.Attrs["release"],
			Architecture: entry.Attrs["arch"],
			UpdateClass:  class,
			Origin:       origin,
		}
		if !pkg.Valid() {
			logrus.Debugf("Skipping incomplete package entry %+v", entry.Attrs)
			c.Skipped++
			continue
		}
		c.Packages = append(c.Packages, pkg)
	}
}
