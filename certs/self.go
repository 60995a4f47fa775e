package certs

import (
	"crypto"
	crand "crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net"
	"net/url"
	"strings"
	"time"

	"bazil.org/pki/keys"
)

// Unconstrained is the PathLen of a CA without path length limit.
const Unconstrained = -1

// Template holds the choices for a new certificate.
type Template struct {
	Subject  pkix.Name
	SANs     []string
	Lifetime time.Duration
	// Serial is random when nil.
	Serial *big.Int
	CA     bool
	// PathLen is Unconstrained or the maximum number of intermediate
	// CAs below this one. Only used with CA.
	PathLen int
	Digest  keys.Digest
}

// DefaultLifetime is used for templates without a Lifetime.
const DefaultLifetime = 3 * 365 * 24 * time.Hour

var maxSerial = new(big.Int).Lsh(big.NewInt(1), 64)

func addSAN(cert *x509.Certificate, san string) error {
	if ip := net.ParseIP(san); ip != nil {
		cert.IPAddresses = append(cert.IPAddresses, ip)
		return nil
	}
	if strings.Contains(san, "://") {
		u, err := url.Parse(san)
		if err != nil {
			return fmt.Errorf("invalid URI SAN: %v", err)
		}
		cert.URIs = append(cert.URIs, u)
		return nil
	}
	if strings.Contains(san, "@") {
		cert.EmailAddresses = append(cert.EmailAddresses, san)
		return nil
	}
	if san == "" {
		return errors.New("empty subjectAltName")
	}
	cert.DNSNames = append(cert.DNSNames, san)
	return nil
}

// SelfSign creates a certificate for signer's public key, signed by
// signer itself, valid from now. It returns the DER encoding.
func SelfSign(rand io.Reader, signer crypto.Signer, t *Template, now time.Time) ([]byte, error) {
	pub := signer.Public()
	sigAlg, err := t.Digest.SignatureAlgorithm(pub)
	if err != nil {
		return nil, err
	}
	skid, err := keys.SubjectKeyID(pub)
	if err != nil {
		return nil, fmt.Errorf("subject key identifier: %v", err)
	}

	serial := t.Serial
	if serial == nil {
		serial, err = randSerial(rand)
		if err != nil {
			return nil, err
		}
	}
	lifetime := t.Lifetime
	if lifetime == 0 {
		lifetime = DefaultLifetime
	}

	cert := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               t.Subject,
		NotBefore:             now,
		NotAfter:              now.Add(lifetime),
		SignatureAlgorithm:    sigAlg,
		SubjectKeyId:          skid,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageDigitalSignature,
	}
	if t.CA {
		cert.IsCA = true
		cert.KeyUsage |= x509.KeyUsageCertSign | x509.KeyUsageCRLSign
		cert.MaxPathLen = -1
		if t.PathLen != Unconstrained {
			cert.MaxPathLen = t.PathLen
			cert.MaxPathLenZero = t.PathLen == 0
		}
	}
	for _, san := range t.SANs {
		if err := addSAN(cert, san); err != nil {
			return nil, err
		}
	}

	der, err := x509.CreateCertificate(rand, cert, cert, pub, signer)
	if err != nil {
		return nil, fmt.Errorf("creating certificate: %v", err)
	}
	return der, nil
}

func randSerial(rand io.Reader) (*big.Int, error) {
	for {
		n, err := crand.Int(rand, maxSerial)
		if err != nil {
			return nil, fmt.Errorf("random serial: %v", err)
		}
		if n.Sign() > 0 {
			return n, nil
		}
	}
}
