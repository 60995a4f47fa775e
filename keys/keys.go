// Package keys reads, writes and identifies key material for the pki
// commands.
package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// Kind is the type of object read as input.
type Kind int

const (
	PrivateKey Kind = iota
	PublicKey
	Certificate
	Request
)

var kindNames = map[string]Kind{
	"priv":    PrivateKey,
	"rsa":     PrivateKey,
	"ecdsa":   PrivateKey,
	"ed25519": PrivateKey,
	"pub":     PublicKey,
	"x509":    Certificate,
	"pkcs10":  Request,
}

func (k Kind) String() string {
	switch k {
	case PrivateKey:
		return "priv"
	case PublicKey:
		return "pub"
	case Certificate:
		return "x509"
	case Request:
		return "pkcs10"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k *Kind) Set(value string) error {
	kind, ok := kindNames[value]
	if !ok {
		return fmt.Errorf("invalid input type: %q", value)
	}
	*k = kind
	return nil
}

// Form is an output encoding.
type Form int

const (
	DER Form = iota
	PEM
	SSHKey
)

func (f Form) String() string {
	switch f {
	case DER:
		return "der"
	case PEM:
		return "pem"
	case SSHKey:
		return "sshkey"
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

func (f *Form) Set(value string) error {
	switch value {
	case "der":
		*f = DER
	case "pem":
		*f = PEM
	case "sshkey", "ssh":
		*f = SSHKey
	default:
		return fmt.Errorf("invalid output format: %q", value)
	}
	return nil
}

// ErrNotFound means the input held nothing of the requested kind.
var ErrNotFound = errors.New("no matching object found in input")

var pemTypes = map[Kind][]string{
	PrivateKey:  {"PRIVATE KEY", "RSA PRIVATE KEY", "EC PRIVATE KEY"},
	PublicKey:   {"PUBLIC KEY"},
	Certificate: {"CERTIFICATE"},
	Request:     {"CERTIFICATE REQUEST", "NEW CERTIFICATE REQUEST"},
}

// der returns the DER bytes of the first PEM block of the right
// type, or data itself if it is not PEM encoded.
func der(data []byte, kind Kind) ([]byte, error) {
	rest := data
	sawPEM := false
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		sawPEM = true
		for _, t := range pemTypes[kind] {
			if block.Type == t {
				return block.Bytes, nil
			}
		}
	}
	if sawPEM {
		return nil, ErrNotFound
	}
	return data, nil
}

// Decode parses data, DER or PEM, as an object of the given kind. It
// returns a crypto.Signer, a crypto.PublicKey, a
// *x509.Certificate or a *x509.CertificateRequest.
func Decode(data []byte, kind Kind) (interface{}, error) {
	buf, err := der(data, kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case PrivateKey:
		return parsePrivateKey(buf)
	case PublicKey:
		pub, err := x509.ParsePKIXPublicKey(buf)
		if err != nil {
			return nil, fmt.Errorf("parsing public key: %v", err)
		}
		return pub, nil
	case Certificate:
		cert, err := x509.ParseCertificate(buf)
		if err != nil {
			return nil, fmt.Errorf("parsing certificate: %v", err)
		}
		return cert, nil
	case Request:
		req, err := x509.ParseCertificateRequest(buf)
		if err != nil {
			return nil, fmt.Errorf("parsing certificate request: %v", err)
		}
		return req, nil
	}
	return nil, fmt.Errorf("unsupported input type: %v", kind)
}

func parsePrivateKey(buf []byte) (crypto.Signer, error) {
	if key, err := x509.ParsePKCS8PrivateKey(buf); err == nil {
		signer, ok := key.(crypto.Signer)
		if !ok {
			return nil, fmt.Errorf("unsupported private key: %T", key)
		}
		return signer, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(buf); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(buf); err == nil {
		return key, nil
	}
	return nil, errors.New("parsing private key: unrecognized encoding")
}

// Public returns the public key of a decoded object.
func Public(obj interface{}) (crypto.PublicKey, error) {
	switch o := obj.(type) {
	case crypto.Signer:
		return o.Public(), nil
	case *x509.Certificate:
		return o.PublicKey, nil
	case *x509.CertificateRequest:
		return o.PublicKey, nil
	case *rsa.PublicKey, *ecdsa.PublicKey, ed25519.PublicKey:
		return o, nil
	}
	return nil, fmt.Errorf("no public key in %T", obj)
}

// Describe names the algorithm and strength of a public key.
func Describe(pub crypto.PublicKey) string {
	switch k := pub.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("RSA %d bits", k.N.BitLen())
	case *ecdsa.PublicKey:
		return fmt.Sprintf("ECDSA %d bits", k.Curve.Params().BitSize)
	case ed25519.PublicKey:
		return "ED25519 256 bits"
	}
	return fmt.Sprintf("%T", pub)
}
