package certs

import (
	"crypto"
	"crypto/x509"
	"fmt"
	"io"
	"strings"
	"time"

	"bazil.org/pki/keys"
)

const timeFormat = "Jan 02 15:04:05 2006"

// PrintKey describes a public key.
func PrintKey(w io.Writer, pub crypto.PublicKey) error {
	skid, err := keys.SubjectKeyID(pub)
	if err != nil {
		return err
	}
	info, err := keys.InfoHash(pub)
	if err != nil {
		return err
	}
	fp, err := keys.Fingerprint(pub)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  pubkey:    %s\n", keys.Describe(pub))
	fmt.Fprintf(w, "  keyid:     %s\n", keys.Hex(info))
	fmt.Fprintf(w, "  subjkey:   %s\n", keys.Hex(skid))
	fmt.Fprintf(w, "  fprint:    %s\n", fp)
	return nil
}

func validity(t time.Time, now time.Time, after bool) string {
	switch {
	case !after && now.Before(t):
		return "not valid yet"
	case after && now.After(t):
		return "expired"
	}
	return "ok"
}

// Print describes cert the way an operator wants to read it.
func Print(w io.Writer, cert *x509.Certificate, now time.Time) error {
	fmt.Fprintf(w, "  subject:  \"%s\"\n", cert.Subject)
	fmt.Fprintf(w, "  issuer:   \"%s\"\n", cert.Issuer)

	var sans []string
	sans = append(sans, cert.DNSNames...)
	sans = append(sans, cert.EmailAddresses...)
	for _, ip := range cert.IPAddresses {
		sans = append(sans, ip.String())
	}
	for _, u := range cert.URIs {
		sans = append(sans, u.String())
	}
	if len(sans) > 0 {
		fmt.Fprintf(w, "  altNames: %s\n", strings.Join(sans, ", "))
	}

	if cert.IsCA {
		fmt.Fprintf(w, "  flags:    CA\n")
		if cert.MaxPathLen > 0 || cert.MaxPathLenZero {
			fmt.Fprintf(w, "  pathlen:  %d\n", cert.MaxPathLen)
		}
	}
	fmt.Fprintf(w, "  validity: not before %s, %s\n",
		cert.NotBefore.UTC().Format(timeFormat), validity(cert.NotBefore, now, false))
	fmt.Fprintf(w, "            not after  %s, %s\n",
		cert.NotAfter.UTC().Format(timeFormat), validity(cert.NotAfter, now, true))
	fmt.Fprintf(w, "  serial:   %s\n", keys.Hex(cert.SerialNumber.Bytes()))
	return PrintKey(w, cert.PublicKey)
}
