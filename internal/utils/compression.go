package utils

import (
	"bytes"
	"compress/bzip2"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Magic bytes for compressed metadata detection
var (
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	xzMagic   = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
	bzipMagic = []byte("BZh")
)

// GzipDecompress decompresses gzip data
func GzipDecompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// XzDecompress decompresses xz data
func XzDecompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return io.ReadAll(r)
}

// ZstdDecompress decompresses zstd data
func ZstdDecompress(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// Bzip2Decompress decompresses bzip2 data, as still published by EL7 era
// repositories
func Bzip2Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(bzip2.NewReader(bytes.NewReader(data)))
}

// Decompress returns data uncompressed. The format is taken from the file
// name extension, then from the magic bytes; anything else is returned as is.
func Decompress(name string, data []byte) ([]byte, error) {
	switch {
	case strings.HasSuffix(name, ".gz") || bytes.HasPrefix(data, gzipMagic):
		return GzipDecompress(data)
	case strings.HasSuffix(name, ".xz") || bytes.HasPrefix(data, xzMagic):
		return XzDecompress(data)
	case strings.HasSuffix(name, ".zst") || bytes.HasPrefix(data, zstdMagic):
		return ZstdDecompress(data)
	case strings.HasSuffix(name, ".bz2") || bytes.HasPrefix(data, bzipMagic):
		return Bzip2Decompress(data)
	default:
		return data, nil
	}
}
