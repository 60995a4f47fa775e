package keys

import (
	"crypto"
	"crypto/sha1"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strings"

	"github.com/codahale/blake2"
	"github.com/tv42/zbase32"
)

type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

func spki(pub crypto.PublicKey) ([]byte, subjectPublicKeyInfo, error) {
	var info subjectPublicKeyInfo
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, info, err
	}
	if _, err := asn1.Unmarshal(der, &info); err != nil {
		return nil, info, err
	}
	return der, info, nil
}

// SubjectKeyID is the SHA-1 hash of the public key bits, as used for
// the subjectKeyIdentifier extension.
func SubjectKeyID(pub crypto.PublicKey) ([]byte, error) {
	_, info, err := spki(pub)
	if err != nil {
		return nil, err
	}
	sum := sha1.Sum(info.PublicKey.Bytes)
	return sum[:], nil
}

// InfoHash is the SHA-1 hash of the complete DER encoded
// SubjectPublicKeyInfo.
func InfoHash(pub crypto.PublicKey) ([]byte, error) {
	der, _, err := spki(pub)
	if err != nil {
		return nil, err
	}
	sum := sha1.Sum(der)
	return sum[:], nil
}

const fingerprintPersonal = "pki:spki"

// FingerprintSize is the length of the digest behind Fingerprint.
const FingerprintSize = 32

// Fingerprint is a short, copy-pasteable name for a public key: a
// personalized BLAKE2b digest of its SubjectPublicKeyInfo, zbase32
// encoded.
func Fingerprint(pub crypto.PublicKey) (string, error) {
	der, _, err := spki(pub)
	if err != nil {
		return "", err
	}
	var pers [blake2.PersonalSize]byte
	copy(pers[:], fingerprintPersonal)
	h := blake2.New(&blake2.Config{
		Size:     FingerprintSize,
		Personal: pers[:],
	})
	_, _ = h.Write(der)
	return zbase32.EncodeToString(h.Sum(nil)), nil
}

// Hex formats b as colon separated hex bytes.
func Hex(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, ":")
}
