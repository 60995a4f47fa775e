// Package getopt iterates over command-line options the way
// getopt_long(3) does: the accepted options are described by a short
// option string ("ab:c::") and a table of long names, and each call to
// Next returns the code of the next option found.
//
// The actual argument scanning is done by github.com/spf13/pflag.
// Arguments are first rewritten into pflag's syntax, so the accepted
// forms are getopt's: "--name value", "--name=value", "-cvalue",
// "-c value", combined short flags ("-ab"), long names abbreviated to
// a unique prefix, interspersed positional arguments and "--" to end
// option processing. Optional values must be attached ("--name=value"
// or "-cvalue"); everything after the code is the value, so "-c=x"
// gives "=x".
package getopt

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/spf13/pflag"
)

// ArgMode tells whether an option takes a value.
type ArgMode int

const (
	NoArgument ArgMode = iota
	RequiredArgument
	OptionalArgument
)

func (m ArgMode) String() string {
	switch m {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	}
	return fmt.Sprintf("ArgMode(%d)", int(m))
}

// Option is one entry of a long option table.
type Option struct {
	Name string
	Has  ArgMode
	Code byte
}

const (
	// EOF is returned by Next when there are no more options.
	EOF int = -1
	// Unknown is returned by Next for an unrecognized option or an
	// option with a missing or superfluous value.
	Unknown int = '?'
)

// noValue marks an option given without a value. pflag only leaves
// the next argument alone when NoOptDefVal is non-empty.
const noValue = "\x00"

type match struct {
	code byte
	arg  string
}

// Parser walks the options of one argument vector.
type Parser struct {
	matches []match
	pos     int
	args    []string

	// Optarg is the value of the option last returned by Next.
	Optarg string
	// Err describes why Next returned Unknown.
	Err error

	err error
}

// ShortOption is a parsed element of an option string.
type ShortOption struct {
	Code byte
	Has  ArgMode
}

// ParseOptstring splits an option string into its options. A code
// followed by one colon requires a value, by two colons takes an
// optional value. Colons that do not follow a code are ignored.
func ParseOptstring(optstring string) []ShortOption {
	var opts []ShortOption
	for i := 0; i < len(optstring); i++ {
		c := optstring[i]
		if c == ':' {
			continue
		}
		opt := ShortOption{Code: c, Has: NoArgument}
		if i+1 < len(optstring) && optstring[i+1] == ':' {
			i++
			opt.Has = RequiredArgument
			if i+1 < len(optstring) && optstring[i+1] == ':' {
				i++
				opt.Has = OptionalArgument
			}
		}
		opts = append(opts, opt)
	}
	return opts
}

type placeholder struct {
	mode ArgMode
}

var _ pflag.Value = placeholder{}

func (placeholder) String() string   { return "" }
func (placeholder) Set(string) error { return nil }
func (p placeholder) Type() string {
	if p.mode == NoArgument {
		return "bool"
	}
	return "string"
}

// New scans args, where args[0] is the program name, against the
// given option string and long option table.
//
// The option string decides which codes exist and how they take
// values. Long names are attached by code; a code without a long
// name is also accepted as "--c". When a code appears more than
// once, the first declaration wins.
func New(args []string, optstring string, longopts []Option) *Parser {
	fs := pflag.NewFlagSet("getopt", pflag.ContinueOnError)
	// errors are reported through Parser.Err
	fs.SetOutput(ioutil.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	modes := make(map[string]ArgMode)
	codes := make(map[string]byte)
	seen := make(map[byte]ArgMode)
	for _, short := range ParseOptstring(optstring) {
		if _, dup := seen[short.Code]; dup {
			continue
		}
		seen[short.Code] = short.Has

		name := string(short.Code)
		for _, long := range longopts {
			if long.Code == short.Code && long.Name != "" {
				name = long.Name
				break
			}
		}
		if _, dup := modes[name]; dup {
			continue
		}
		modes[name] = short.Has
		codes[name] = short.Code

		f := fs.VarPF(placeholder{mode: short.Has}, name, string(short.Code), "")
		if short.Has != RequiredArgument {
			f.NoOptDefVal = noValue
		}
	}

	p := &Parser{}
	if len(args) > 0 {
		args = args[1:]
	}
	err := fs.ParseAll(normalize(args, modes, seen), func(f *pflag.Flag, value string) error {
		mode := modes[f.Name]
		switch {
		case mode == NoArgument && value != noValue:
			return fmt.Errorf("option --%s does not take a value", f.Name)
		case value == noValue:
			value = ""
		}
		p.matches = append(p.matches, match{code: codes[f.Name], arg: value})
		return nil
	})
	p.err = err
	p.args = fs.Args()
	return p
}

// normalize rewrites args so that pflag reads them the way getopt
// does. Long names are expanded from unique prefixes, and a value
// attached to a short code is separated by "=", which pflag strips.
func normalize(args []string, long map[string]ArgMode, short map[byte]ArgMode) []string {
	r := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		takesNext := false
		switch {
		case a == "--":
			return append(r, args[i:]...)
		case strings.HasPrefix(a, "--"):
			a, takesNext = longArg(a, long)
		case len(a) > 1 && a[0] == '-':
			a, takesNext = shortGroup(a, short)
		}
		r = append(r, a)
		if takesNext && i+1 < len(args) {
			i++
			r = append(r, args[i])
		}
	}
	return r
}

// longArg expands an abbreviated long option. It reports whether the
// option consumes the next argument as its value.
func longArg(a string, long map[string]ArgMode) (string, bool) {
	name, value := a[2:], ""
	eq := strings.IndexByte(name, '=')
	if eq >= 0 {
		name, value = name[:eq], name[eq:]
	}
	if _, exact := long[name]; !exact && name != "" {
		var found []string
		for n := range long {
			if strings.HasPrefix(n, name) {
				found = append(found, n)
			}
		}
		if len(found) == 1 {
			name = found[0]
		}
	}
	mode, known := long[name]
	return "--" + name + value, known && mode == RequiredArgument && eq < 0
}

// shortGroup rewrites "-abcvalue" to "-abc=value" when c takes a
// value. It reports whether the last code consumes the next argument.
func shortGroup(a string, short map[byte]ArgMode) (string, bool) {
	for j := 1; j < len(a); j++ {
		mode, ok := short[a[j]]
		if !ok {
			return a, false
		}
		if mode == NoArgument {
			continue
		}
		rest := a[j+1:]
		if rest == "" {
			return a, mode == RequiredArgument
		}
		return a[:j+1] + "=" + rest, false
	}
	return a, false
}

// Next returns the code of the next option, Unknown once if scanning
// stopped at a bad option, and EOF after that.
func (p *Parser) Next() int {
	p.Optarg = ""
	if p.pos < len(p.matches) {
		m := p.matches[p.pos]
		p.pos++
		p.Optarg = m.arg
		return int(m.code)
	}
	if p.err != nil {
		p.Err = p.err
		p.err = nil
		return Unknown
	}
	return EOF
}

// Args returns the positional arguments seen while scanning.
func (p *Parser) Args() []string {
	return p.args
}

// FirstOption returns the index in args of the argument the first
// call to Next looks at, or -1 if args hold no options. args[0] is
// the program name.
func FirstOption(args []string) int {
	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return -1
		}
		if len(a) > 1 && a[0] == '-' {
			return i
		}
	}
	return -1
}
