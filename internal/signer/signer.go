package signer

// Verifier checks signatures over repository metadata
type Verifier interface {
	// VerifyDetached checks a detached signature (repomd.xml.asc) over data
	VerifyDetached(data, signature []byte) error
}
