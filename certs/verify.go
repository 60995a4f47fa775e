package certs

import (
	"bytes"
	"crypto/x509"
	"fmt"
	"time"
)

// UntrustedError explains why Verify rejected a certificate.
type UntrustedError struct {
	Reason string
}

func (e *UntrustedError) Error() string {
	return "certificate untrusted: " + e.Reason
}

// Verify checks that cert is currently valid and signed by ca. A nil
// ca means cert must be self-signed.
func Verify(cert, ca *x509.Certificate, now time.Time) error {
	if ca == nil {
		ca = cert
	}
	if !bytes.Equal(cert.RawIssuer, ca.RawSubject) {
		return &UntrustedError{Reason: "issuer does not match CA subject"}
	}
	if ca != cert && !ca.IsCA {
		return &UntrustedError{Reason: "issuer is not a CA"}
	}
	if err := ca.CheckSignature(cert.SignatureAlgorithm, cert.RawTBSCertificate, cert.Signature); err != nil {
		return &UntrustedError{Reason: fmt.Sprintf("signature: %v", err)}
	}
	for _, c := range []*x509.Certificate{cert, ca} {
		if now.Before(c.NotBefore) {
			return &UntrustedError{Reason: fmt.Sprintf("%s not valid before %s", c.Subject, c.NotBefore.Format(time.RFC3339))}
		}
		if now.After(c.NotAfter) {
			return &UntrustedError{Reason: fmt.Sprintf("%s expired at %s", c.Subject, c.NotAfter.Format(time.RFC3339))}
		}
	}
	return nil
}
