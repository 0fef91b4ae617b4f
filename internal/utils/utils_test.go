package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const payload = "<updates></updates>\n"

// payloadBzip2 is payload compressed with bzip2 -9
var payloadBzip2 = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0x00, 0x6c,
	0xda, 0xe1, 0x00, 0x00, 0x01, 0xd9, 0x80, 0x00, 0x10, 0x00, 0x00, 0x80,
	0x05, 0x26, 0x00, 0x4e, 0x00, 0x20, 0x00, 0x31, 0x00, 0xd3, 0x4d, 0x02,
	0x54, 0x34, 0xc2, 0x7e, 0xa9, 0x11, 0xbe, 0x61, 0x46, 0x1e, 0x11, 0x11,
	0x7e, 0x2e, 0xe4, 0x8a, 0x70, 0xa1, 0x20, 0x00, 0xd9, 0xb5, 0xc2,
}

func gzipCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func xzCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func TestDecompress(t *testing.T) {
	gz := gzipCompress(t, []byte(payload))

	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"gzip by extension", "updateinfo.xml.gz", gz},
		{"gzip by magic", "updateinfo", gz},
		{"xz by extension", "updateinfo.xml.xz", xzCompress(t, []byte(payload))},
		{"xz by magic", "updateinfo", xzCompress(t, []byte(payload))},
		{"zstd by extension", "updateinfo.xml.zst", zstdCompress(t, []byte(payload))},
		{"zstd by magic", "updateinfo", zstdCompress(t, []byte(payload))},
		{"bzip2 by extension", "updateinfo.xml.bz2", payloadBzip2},
		{"bzip2 by magic", "updateinfo", payloadBzip2},
		{"plain", "updateinfo.xml", []byte(payload)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Decompress(tt.file, tt.data)
			require.NoError(t, err)
			assert.Equal(t, payload, string(out))
		})
	}
}

func TestDecompressCorrupt(t *testing.T) {
	_, err := Decompress("updateinfo.xml.gz", []byte("not gzip"))
	assert.Error(t, err)

	_, err = Decompress("updateinfo.xml.bz2", []byte("not bzip2"))
	assert.Error(t, err)
}

func TestChecksum(t *testing.T) {
	sum, err := CalculateChecksum([]byte("abc"), "sha256")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)

	sha, err := CalculateChecksum([]byte("abc"), "sha")
	require.NoError(t, err)
	sha1, err := CalculateChecksum([]byte("abc"), "sha1")
	require.NoError(t, err)
	assert.Equal(t, sha1, sha)

	_, err = CalculateChecksum([]byte("abc"), "crc32")
	assert.Error(t, err)

	assert.NoError(t, VerifyChecksum([]byte("abc"), "sha256", "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"))
	assert.Error(t, VerifyChecksum([]byte("abd"), "sha256", sum))
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpms.txt")
	require.NoError(t, os.WriteFile(path, []byte("glibc-2.12-1.47.el6.x86_64\r\n\nbash-4.1.2-15.el6_4.x86_64"), 0644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"glibc-2.12-1.47.el6.x86_64", "", "bash-4.1.2-15.el6_4.x86_64"}, lines)

	_, err = ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	gz := gzipCompress(t, []byte(payload))

	path := filepath.Join(t.TempDir(), "updateinfo.xml.gz")
	require.NoError(t, os.WriteFile(path, gz, 0644))

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))
}
