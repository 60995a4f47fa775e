package flagx

import (
	"errors"
	"flag"
	"strconv"
	"time"
)

const day = 24 * time.Hour

// Days is a flag.Value for a duration given as a whole number of
// days.
type Days time.Duration

var _ flag.Value = (*Days)(nil)

var ZeroDaysError = errors.New("lifetime must be at least one day")

func (d Days) String() string {
	return strconv.FormatInt(int64(time.Duration(d)/day), 10)
}

func (d *Days) Set(value string) error {
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return err
	}
	if n == 0 {
		return ZeroDaysError
	}
	*d = Days(time.Duration(n) * day)
	return nil
}

// Duration returns d as a time.Duration.
func (d Days) Duration() time.Duration {
	return time.Duration(d)
}
