package flagx

import (
	"errors"
	"flag"
	"fmt"
	"math/big"
	"strings"
)

// Serial is a flag.Value for a certificate serial number written in
// hex, optionally with a "0x" prefix or colon separated bytes.
type Serial struct {
	Int *big.Int
}

var _ flag.Value = (*Serial)(nil)

var BadSerialError = errors.New("serial must be a positive hex number")

func (s Serial) String() string {
	if s.Int == nil {
		return ""
	}
	return fmt.Sprintf("%x", s.Int)
}

func (s *Serial) Set(value string) error {
	value = strings.TrimPrefix(strings.ToLower(value), "0x")
	value = strings.Replace(value, ":", "", -1)
	n, ok := new(big.Int).SetString(value, 16)
	if !ok || n.Sign() <= 0 {
		return BadSerialError
	}
	s.Int = n
	return nil
}
