package signer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/sirupsen/logrus"
)

var armorPrefix = []byte("-----BEGIN")

// GPGVerifier implements Verifier using an OpenPGP keyring
type GPGVerifier struct {
	keyring openpgp.EntityList
}

// NewGPGVerifier creates a verifier from a public key file, armored or binary
func NewGPGVerifier(keyPath string) (*GPGVerifier, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("key path is empty")
	}

	keyFile, err := os.Open(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer keyFile.Close()

	// Try to parse as armored key first
	entityList, err := openpgp.ReadArmoredKeyRing(keyFile)
	if err != nil {
		// Try as binary key
		if _, seekErr := keyFile.Seek(0, 0); seekErr != nil {
			return nil, fmt.Errorf("failed to rewind key file: %w", seekErr)
		}
		entityList, err = openpgp.ReadKeyRing(keyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entityList) == 0 {
		return nil, fmt.Errorf("no keys found in key file")
	}

	for _, entity := range entityList {
		logrus.Debugf("Loaded verification key %X", entity.PrimaryKey.Fingerprint)
	}

	return NewGPGVerifierFromEntities(entityList), nil
}

// NewGPGVerifierFromEntities creates a verifier from keys already in memory
func NewGPGVerifierFromEntities(entities openpgp.EntityList) *GPGVerifier {
	return &GPGVerifier{keyring: entities}
}

// VerifyDetached checks an armored or binary detached signature over data
func (v *GPGVerifier) VerifyDetached(data, signature []byte) error {
	var (
		entity *openpgp.Entity
		err    error
	)

	if bytes.HasPrefix(bytes.TrimSpace(signature), armorPrefix) {
		entity, err = openpgp.CheckArmoredDetachedSignature(v.keyring, bytes.NewReader(data), bytes.NewReader(signature), nil)
	} else {
		entity, err = openpgp.CheckDetachedSignature(v.keyring, bytes.NewReader(data), bytes.NewReader(signature), nil)
	}
	if err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}

	logrus.Debugf("Signature made by key %X", entity.PrimaryKey.Fingerprint)
	return nil
}
