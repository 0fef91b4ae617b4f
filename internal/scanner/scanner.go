package scanner

import "context"

// PackageType tells binary RPM packages from source packages
type PackageType int

const (
	TypeUnknown PackageType = iota
	TypeRpm
	TypeSourceRpm
)

// String returns the string representation of PackageType
func (pt PackageType) String() string {
	switch pt {
	case TypeRpm:
		return "rpm"
	case TypeSourceRpm:
		return "srpm"
	default:
		return "unknown"
	}
}

// ScannedPackage is an RPM file found below the scanned directory
type ScannedPackage struct {
	Path string
	Type PackageType
	Size int64
}

// Scanner finds package files for the inventory command
type Scanner interface {
	// Scan returns the RPM files found below dir
	Scan(ctx context.Context, dir string) ([]ScannedPackage, error)

	// DetectType determines the package type of a file
	DetectType(path string) (PackageType, error)
}
