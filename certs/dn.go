// Package certs builds, checks and describes X.509 certificates for
// the pki commands.
package certs

import (
	"crypto/x509/pkix"
	"fmt"
	"strings"
)

// ParseDN parses a distinguished name written as comma separated
// attributes, most significant first: "C=CH, O=example, CN=host".
func ParseDN(s string) (pkix.Name, error) {
	var name pkix.Name
	if strings.TrimSpace(s) == "" {
		return name, fmt.Errorf("empty distinguished name")
	}
	for _, rdn := range strings.Split(s, ",") {
		kv := strings.SplitN(rdn, "=", 2)
		if len(kv) != 2 {
			return name, fmt.Errorf("invalid RDN %q", strings.TrimSpace(rdn))
		}
		key := strings.ToUpper(strings.TrimSpace(kv[0]))
		value := strings.TrimSpace(kv[1])
		if value == "" {
			return name, fmt.Errorf("empty value for %s", key)
		}
		switch key {
		case "C":
			name.Country = append(name.Country, value)
		case "ST":
			name.Province = append(name.Province, value)
		case "L":
			name.Locality = append(name.Locality, value)
		case "O":
			name.Organization = append(name.Organization, value)
		case "OU":
			name.OrganizationalUnit = append(name.OrganizationalUnit, value)
		case "CN":
			if name.CommonName != "" {
				return name, fmt.Errorf("more than one CN")
			}
			name.CommonName = value
		case "SN", "SERIALNUMBER":
			name.SerialNumber = value
		default:
			return name, fmt.Errorf("unsupported attribute %q", key)
		}
	}
	return name, nil
}
