package keys

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/ssh"
)

// ErrFormNotSupported means an object cannot be written in the
// requested form.
var ErrFormNotSupported = errors.New("output format not supported for this object")

func write(w io.Writer, der []byte, pemType string, form Form) error {
	switch form {
	case DER:
		_, err := w.Write(der)
		return err
	case PEM:
		return pem.Encode(w, &pem.Block{Type: pemType, Bytes: der})
	}
	return ErrFormNotSupported
}

// WritePrivate writes key as PKCS#8.
func WritePrivate(w io.Writer, key crypto.Signer, form Form) error {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return fmt.Errorf("encoding private key: %v", err)
	}
	return write(w, der, "PRIVATE KEY", form)
}

// WritePublic writes pub as a SubjectPublicKeyInfo, or in OpenSSH
// authorized_keys format.
func WritePublic(w io.Writer, pub crypto.PublicKey, form Form) error {
	if form == SSHKey {
		sshPub, err := ssh.NewPublicKey(pub)
		if err != nil {
			return fmt.Errorf("encoding ssh key: %v", err)
		}
		_, err = w.Write(ssh.MarshalAuthorizedKey(sshPub))
		return err
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return fmt.Errorf("encoding public key: %v", err)
	}
	return write(w, der, "PUBLIC KEY", form)
}

// WriteCertificate writes a DER encoded certificate.
func WriteCertificate(w io.Writer, der []byte, form Form) error {
	return write(w, der, "CERTIFICATE", form)
}
