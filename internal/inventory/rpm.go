package inventory

import (
	"fmt"
	"os"

	"github.com/ralt/rpmupdates/internal/models"
	"github.com/sassoftware/go-rpmutils"
)

// headerReader is the part of an RPM header used here
type headerReader interface {
	Get(tag int) (interface{}, error)
}

// ParsePackage reads the header of an RPM file
func ParsePackage(path string) (*models.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rpm, err := rpmutils.ReadRpm(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read RPM: %w", err)
	}

	pkg := packageFromHeader(rpm.Header, path)
	if !pkg.Valid() {
		return nil, invalidHeader(path, pkg)
	}
	return &pkg, nil
}

func packageFromHeader(h headerReader, origin string) models.Package {
	return models.Package{
		Name:         getStringTag(h, rpmutils.NAME),
		Version:      getStringTag(h, rpmutils.VERSION),
		Release:      getStringTag(h, rpmutils.RELEASE),
		Architecture: getStringTag(h, rpmutils.ARCH),
		UpdateClass:  models.ClassExisting,
		Origin:       origin,
	}
}

// getStringTag safely gets a string tag from an RPM header
func getStringTag(h headerReader, tag int) string {
	val, err := h.Get(tag)
	if err != nil {
		return ""
	}

	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	default:
		return fmt.Sprintf("%v", v)
	}

	return ""
}
