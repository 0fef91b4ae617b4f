package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lead(sourceFlag byte) []byte {
	header := make([]byte, rpmLeadSize)
	copy(header, rpmMagic)
	header[4] = 3
	header[7] = sourceFlag
	return header
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		header []byte
		want   PackageType
	}{
		{"binary lead", "pkg", lead(0), TypeRpm},
		{"source lead", "pkg", lead(1), TypeSourceRpm},
		{"source by name", "bash-4.1.2-15.el6_4.src.rpm", []byte("junk"), TypeSourceRpm},
		{"rpm by extension", "bash-4.1.2-15.el6_4.x86_64.rpm", []byte("junk"), TypeRpm},
		{"unrelated file", "README", []byte("hello"), TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detect(tt.path, tt.header))
		})
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "Packages")
	require.NoError(t, os.MkdirAll(sub, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(sub, "a"), lead(0), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.src.rpm"), lead(1), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("notes"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), nil, 0644))

	found, err := NewFileSystemScanner().Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, found, 2)

	types := map[string]PackageType{}
	for _, p := range found {
		types[filepath.Base(p.Path)] = p.Type
	}
	assert.Equal(t, TypeRpm, types["a"])
	assert.Equal(t, TypeSourceRpm, types["b.src.rpm"])
}

func TestScanCancelled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.rpm"), lead(0), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSystemScanner().Scan(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanSkipsHiddenDirectories(t *testing.T) {
	dir := t.TempDir()
	hidden := filepath.Join(dir, ".cache")
	require.NoError(t, os.MkdirAll(hidden, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(hidden, "a.rpm"), lead(0), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.rpm"), lead(0), 0644))

	found, err := NewFileSystemScanner().Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "b.rpm", filepath.Base(found[0].Path))
	assert.Equal(t, int64(rpmLeadSize), found[0].Size)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := NewFileSystemScanner().Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
