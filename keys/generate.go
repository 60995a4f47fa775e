package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"fmt"
	"io"

	agl "github.com/agl/ed25519"
)

// Algorithm is a key generation algorithm.
type Algorithm int

const (
	RSA Algorithm = iota
	ECDSA
	Ed25519
)

func (a Algorithm) String() string {
	switch a {
	case RSA:
		return "rsa"
	case ECDSA:
		return "ecdsa"
	case Ed25519:
		return "ed25519"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a *Algorithm) Set(value string) error {
	switch value {
	case "rsa":
		*a = RSA
	case "ecdsa":
		*a = ECDSA
	case "ed25519":
		*a = Ed25519
	default:
		return fmt.Errorf("invalid key type: %q", value)
	}
	return nil
}

// DefaultSize returns the key size used when none is given.
func (a Algorithm) DefaultSize() int {
	switch a {
	case RSA:
		return 2048
	case ECDSA:
		return 384
	}
	return 256
}

// MinRSASize is the smallest RSA modulus Generate accepts.
const MinRSASize = 1024

// Generate creates a new private key. A size of 0 picks the default
// for the algorithm.
func Generate(alg Algorithm, size int, rand io.Reader) (crypto.Signer, error) {
	if size == 0 {
		size = alg.DefaultSize()
	}
	switch alg {
	case RSA:
		if size < MinRSASize {
			return nil, fmt.Errorf("RSA key size %d too small", size)
		}
		return rsa.GenerateKey(rand, size)

	case ECDSA:
		var curve elliptic.Curve
		switch size {
		case 256:
			curve = elliptic.P256()
		case 384:
			curve = elliptic.P384()
		case 521:
			curve = elliptic.P521()
		default:
			return nil, fmt.Errorf("invalid ECDSA key size %d", size)
		}
		return ecdsa.GenerateKey(curve, rand)

	case Ed25519:
		if size != 256 {
			return nil, fmt.Errorf("invalid Ed25519 key size %d", size)
		}
		_, priv, err := agl.GenerateKey(rand)
		if err != nil {
			return nil, err
		}
		// same layout: 32 bytes seed followed by the public key
		return ed25519.PrivateKey(priv[:]), nil
	}
	return nil, fmt.Errorf("unsupported key type: %v", alg)
}
