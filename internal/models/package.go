package models

import "fmt"

const (
	// ArchNoarch matches any architecture when it appears on a candidate
	ArchNoarch = "noarch"

	// ClassExisting is the update class given to installed packages
	ClassExisting = "existing"

	// OriginInstalled identifies records read from the installed inventory
	OriginInstalled = "installed"
)

// Package represents one package occurrence, either installed or a candidate update
type Package struct {
	Name         string
	Version      string
	Release      string
	Architecture string

	// UpdateClass is the feed-provided class ("security", "bugfix", ...)
	// or ClassExisting for installed packages.
	UpdateClass string

	// Origin names the feed that produced this record. Diagnostics only.
	Origin string
}

// Matches reports whether candidate is eligible as an update for the installed
// package p. Versions are deliberately not compared here so that updates across
// major versions are still detected.
func (p Package) Matches(candidate Package) bool {
	if p.Name != candidate.Name {
		return false
	}
	return p.Architecture == candidate.Architecture || candidate.Architecture == ArchNoarch
}

// Valid reports whether all identifying fields are populated
func (p Package) Valid() bool {
	return p.Name != "" && p.Version != "" && p.Release != "" && p.Architecture != ""
}

// String renders the package as name-version-release.arch
func (p Package) String() string {
	return fmt.Sprintf("%s-%s-%s.%s", p.Name, p.Version, p.Release, p.Architecture)
}

// Catalog is an ordered list of packages coming from one source.
// It is not modified once built.
type Catalog struct {
	Origin   string
	Packages []Package

	// Skipped counts records that could not be parsed
	Skipped int
}

// Len returns the number of packages in the catalog
func (c Catalog) Len() int {
	return len(c.Packages)
}
