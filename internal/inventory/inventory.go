// Package inventory reads the list of installed packages.
package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/ralt/rpmupdates/internal/models"
	"github.com/ralt/rpmupdates/internal/scanner"
	"github.com/ralt/rpmupdates/internal/utils"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ReadInstalled reads an inventory file as produced by `rpm -qa`
func ReadInstalled(path string) ([]string, error) {
	lines, err := utils.ReadLines(path)
	if err != nil {
		return nil, &models.UpdateError{
			Type:   models.ErrInventoryRead,
			Source: path,
			Err:    err,
		}
	}

	logrus.Debugf("Read %d inventory lines from %s", len(lines), path)
	return lines, nil
}

// FromRPMFiles builds an inventory from the binary .rpm files found under dir.
// Source packages are ignored, files that cannot be read are logged and
// skipped. The result is sorted and free of duplicates.
func FromRPMFiles(ctx context.Context, sc scanner.Scanner, dir string) ([]models.Package, error) {
	scanned, err := sc.Scan(ctx, dir)
	if err != nil {
		return nil, &models.UpdateError{
			Type:   models.ErrInventoryRead,
			Source: dir,
			Err:    err,
		}
	}

	var packages []models.Package
	for _, s := range scanned {
		if s.Type != scanner.TypeRpm {
			logrus.Debugf("Ignoring %s package: %s", s.Type, s.Path)
			continue
		}

		pkg, parseErr := ParsePackage(s.Path)
		if parseErr != nil {
			logrus.Warnf("Failed to parse %s: %v", s.Path, parseErr)
			continue
		}
		packages = append(packages, *pkg)
	}

	packages = lo.UniqBy(packages, func(p models.Package) string {
		return p.String()
	})
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].String() < packages[j].String()
	})

	return packages, nil
}

// Lines renders packages the way `rpm -qa` prints them
func Lines(packages []models.Package) []string {
	return lo.Map(packages, func(p models.Package, _ int) string {
		return p.String()
	})
}

func invalidHeader(path string, pkg models.Package) error {
	return &models.UpdateError{
		Type:   models.ErrPackageParse,
		Source: path,
		Err:    fmt.Errorf("incomplete header: %q", pkg.String()),
	}
}
