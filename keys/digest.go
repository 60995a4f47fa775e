package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
)

// Digest is the hash algorithm used for signatures.
type Digest int

const (
	SHA256 Digest = iota
	SHA384
	SHA512
)

func (d Digest) String() string {
	switch d {
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	}
	return fmt.Sprintf("Digest(%d)", int(d))
}

func (d *Digest) Set(value string) error {
	switch value {
	case "sha256":
		*d = SHA256
	case "sha384":
		*d = SHA384
	case "sha512":
		*d = SHA512
	default:
		return fmt.Errorf("invalid digest: %q", value)
	}
	return nil
}

// SignatureAlgorithm picks the X.509 signature algorithm for signing
// with a key of the given public half. Ed25519 ignores the digest.
func (d Digest) SignatureAlgorithm(pub crypto.PublicKey) (x509.SignatureAlgorithm, error) {
	switch pub.(type) {
	case *rsa.PublicKey:
		return [...]x509.SignatureAlgorithm{
			SHA256: x509.SHA256WithRSA,
			SHA384: x509.SHA384WithRSA,
			SHA512: x509.SHA512WithRSA,
		}[d], nil
	case *ecdsa.PublicKey:
		return [...]x509.SignatureAlgorithm{
			SHA256: x509.ECDSAWithSHA256,
			SHA384: x509.ECDSAWithSHA384,
			SHA512: x509.ECDSAWithSHA512,
		}[d], nil
	case ed25519.PublicKey:
		return x509.PureEd25519, nil
	}
	return x509.UnknownSignatureAlgorithm, fmt.Errorf("cannot sign with %T", pub)
}
