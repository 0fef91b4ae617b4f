package scanner

import (
	"bytes"
	"os"
	"strings"
)

// RPM packages start with 0xED 0xAB 0xEE 0xDB
var rpmMagic = []byte{0xED, 0xAB, 0xEE, 0xDB}

// rpmLeadSize is the size of the legacy lead; bytes 6-7 hold the package
// type, 0 for binary and 1 for source packages.
const rpmLeadSize = 96

// DetectPackageType determines the package type based on magic bytes and file extension
func DetectPackageType(path string) (PackageType, error) {
	f, err := os.Open(path)
	if err != nil {
		return TypeUnknown, err
	}
	defer f.Close()

	header := make([]byte, rpmLeadSize)
	n, err := f.Read(header)
	if err != nil && n == 0 {
		return TypeUnknown, err
	}
	header = header[:n]

	return detect(path, header), nil
}

func detect(path string, header []byte) PackageType {
	if strings.HasSuffix(path, ".src.rpm") {
		return TypeSourceRpm
	}

	if bytes.HasPrefix(header, rpmMagic) {
		if len(header) >= 8 && header[6] == 0 && header[7] == 1 {
			return TypeSourceRpm
		}
		return TypeRpm
	}

	if strings.HasSuffix(path, ".rpm") {
		return TypeRpm
	}

	return TypeUnknown
}
