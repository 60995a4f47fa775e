package clitest

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/x509/pkix"
	"testing"
	"time"

	"bazil.org/pki/certs"
	"bazil.org/pki/keys"
)

// Key returns a fresh Ed25519 private key and its PEM encoding.
func Key(t testing.TB) (crypto.Signer, []byte) {
	key, err := keys.Generate(keys.Ed25519, 0, rand.Reader)
	if err != nil {
		t.Fatalf("cannot generate key: %v", err)
	}
	var buf bytes.Buffer
	if err := keys.WritePrivate(&buf, key, keys.PEM); err != nil {
		t.Fatalf("cannot encode key: %v", err)
	}
	return key, buf.Bytes()
}

// SelfSigned returns a PEM encoded CA certificate for key, named cn
// and valid for a day starting at now.
func SelfSigned(t testing.TB, key crypto.Signer, cn string, now time.Time) []byte {
	tmpl := &certs.Template{
		Subject:  pkix.Name{CommonName: cn},
		Lifetime: 24 * time.Hour,
		CA:       true,
		PathLen:  certs.Unconstrained,
	}
	der, err := certs.SelfSign(rand.Reader, key, tmpl, now)
	if err != nil {
		t.Fatalf("cannot create certificate: %v", err)
	}
	var buf bytes.Buffer
	if err := keys.WriteCertificate(&buf, der, keys.PEM); err != nil {
		t.Fatalf("cannot encode certificate: %v", err)
	}
	return buf.Bytes()
}
