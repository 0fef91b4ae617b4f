package utils

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// CalculateChecksum calculates a specific checksum for data. hashType uses
// the names found in repomd.xml ("sha" is an old spelling of sha1).
func CalculateChecksum(data []byte, hashType string) (string, error) {
	var h hash.Hash

	switch hashType {
	case "md5":
		h = md5.New()
	case "sha", "sha1":
		h = sha1.New()
	case "sha256":
		h = sha256.New()
	case "sha512":
		h = sha512.New()
	default:
		return "", fmt.Errorf("unsupported checksum type %q", hashType)
	}

	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyChecksum checks data against an expected hex digest
func VerifyChecksum(data []byte, hashType, expected string) error {
	sum, err := CalculateChecksum(data, hashType)
	if err != nil {
		return err
	}
	if !strings.EqualFold(sum, strings.TrimSpace(expected)) {
		return fmt.Errorf("%s checksum mismatch: expected %s, got %s", hashType, expected, sum)
	}
	return nil
}
