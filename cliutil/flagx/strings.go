package flagx

import (
	"flag"
	"strings"
)

// Strings is a flag.Value collecting every value of a repeated flag.
type Strings []string

var _ flag.Value = (*Strings)(nil)

func (s Strings) String() string {
	return strings.Join(s, ",")
}

func (s *Strings) Set(value string) error {
	*s = append(*s, value)
	return nil
}
