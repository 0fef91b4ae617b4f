package signer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntity(t *testing.T) *openpgp.Entity {
	t.Helper()
	entity, err := openpgp.NewEntity("rpmupdates test", "", "test@example.com", nil)
	require.NoError(t, err)
	return entity
}

func writePublicKey(t *testing.T, entity *openpgp.Entity) string {
	t.Helper()

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	require.NoError(t, err)
	require.NoError(t, entity.Serialize(w))
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "RPM-GPG-KEY-test")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestVerifyDetached(t *testing.T) {
	entity := newEntity(t)
	data := []byte("<repomd></repomd>")

	var armored bytes.Buffer
	require.NoError(t, openpgp.ArmoredDetachSign(&armored, entity, bytes.NewReader(data), nil))

	var binary bytes.Buffer
	require.NoError(t, openpgp.DetachSign(&binary, entity, bytes.NewReader(data), nil))

	v, err := NewGPGVerifier(writePublicKey(t, entity))
	require.NoError(t, err)

	assert.NoError(t, v.VerifyDetached(data, armored.Bytes()))
	assert.NoError(t, v.VerifyDetached(data, binary.Bytes()))
	assert.Error(t, v.VerifyDetached([]byte("<repomd>tampered</repomd>"), armored.Bytes()))
}

func TestVerifyDetachedWrongKey(t *testing.T) {
	signer := newEntity(t)
	data := []byte("<repomd></repomd>")

	var sig bytes.Buffer
	require.NoError(t, openpgp.ArmoredDetachSign(&sig, signer, bytes.NewReader(data), nil))

	v := NewGPGVerifierFromEntities(openpgp.EntityList{newEntity(t)})
	assert.Error(t, v.VerifyDetached(data, sig.Bytes()))
}

func TestNewGPGVerifierErrors(t *testing.T) {
	_, err := NewGPGVerifier("")
	assert.Error(t, err)

	_, err = NewGPGVerifier(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage")
	require.NoError(t, os.WriteFile(path, []byte("not a key"), 0644))
	_, err = NewGPGVerifier(path)
	assert.Error(t, err)
}
