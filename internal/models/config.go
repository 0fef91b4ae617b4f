package models

import "time"

// Filters selects which update classes a feed contributes
type Filters struct {
	IncludeBugfix   bool
	IncludeSecurity bool

	// IncludeAll overrides both other filters
	IncludeAll bool
}

// DefaultFilters returns the filters used when nothing is configured:
// security updates only.
func DefaultFilters() Filters {
	return Filters{IncludeSecurity: true}
}

// CheckConfig contains configuration for an update check
type CheckConfig struct {
	// Inputs
	InventoryPath string
	Feeds         []string // Local files or repository base URLs

	// Filtering
	Filters      Filters
	UpgradesOnly bool

	// Repository fetching
	GPGKeyPath string // Public key used to verify repomd.xml.asc
	Retries    int
	Timeout    time.Duration

	Verbose bool
}
