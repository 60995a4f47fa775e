package command

import (
	"fmt"
	"io"
	"os"

	"bazil.org/pki/cliutil/getopt"
)

// Shell dispatches command lines to the commands of a finalized
// Registry.
type Shell struct {
	Registry *Registry
	// Name is the program name shown in usage messages.
	Name string
	// Banner is the first line of every usage message.
	Banner string
	Stdout io.Writer
	Stderr io.Writer
	// Debug receives events describing the dispatch decisions.
	Debug func(msg interface{})
}

// NewShell finalizes reg and returns a Shell for it. Output defaults
// to the standard streams.
func NewShell(reg *Registry, name string) (*Shell, error) {
	if err := reg.Finalize(); err != nil {
		return nil, err
	}
	s := &Shell{
		Registry: reg,
		Name:     name,
		Banner:   name,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
	return s, nil
}

func (s *Shell) debug(msg interface{}) {
	if s.Debug != nil {
		s.Debug(msg)
	}
}

type resolved struct {
	Command string
	Code    string
}

func (r resolved) String() string {
	return fmt.Sprintf("resolved --%s (-%s)", r.Command, r.Code)
}

type unmatched struct {
	Code  int
	Error string `json:",omitempty"`
}

func (u unmatched) String() string {
	var s string
	switch u.Code {
	case getopt.EOF:
		s = "no option"
	case getopt.Unknown:
		s = "invalid option"
	default:
		s = fmt.Sprintf("no command for option -%c", rune(u.Code))
	}
	if u.Error != "" {
		s += ": " + u.Error
	}
	return s
}

type scoped struct {
	Command   string
	Optstring string
}

func (s scoped) String() string {
	return fmt.Sprintf("options for --%s: %q", s.Command, s.Optstring)
}

// Resolve finds the command selected by args, where args[0] is the
// program name. Only the first option is examined.
func (s *Shell) Resolve(args []string) (Selection, bool) {
	opts := s.Registry.Options(TopLevel)
	p := getopt.New(args, opts.Optstring, opts.Table)
	code := p.Next()
	if code == getopt.EOF || code == getopt.Unknown {
		ev := unmatched{Code: code}
		if p.Err != nil {
			ev.Error = p.Err.Error()
		}
		s.debug(ev)
		return TopLevel, false
	}
	i, ok := s.Registry.Lookup(byte(code))
	if !ok {
		s.debug(unmatched{Code: code})
		return TopLevel, false
	}
	s.debug(resolved{Command: s.Registry.Command(i).Name, Code: string(rune(code))})
	return Selection(i), true
}

// Dispatch runs the command sel with the complete argument vector and
// returns its exit status. sel must name a registered command, as
// returned by Resolve; TopLevel is not a command.
func (s *Shell) Dispatch(sel Selection, args []string) int {
	if sel < 0 || int(sel) >= s.Registry.Len() {
		panic(fmt.Errorf("command selection out of range: %d", sel))
	}
	cmd := s.Registry.Command(int(sel))
	opts := s.Registry.Options(sel)
	s.debug(scoped{Command: cmd.Name, Optstring: opts.Optstring})
	ctx := &Context{
		Shell:     s,
		Selection: sel,
		Args:      args,
		Options:   opts,
		Stdout:    s.Stdout,
		Stderr:    s.Stderr,
		scoped:    consume(args, cmd),
	}
	return cmd.Handler(ctx)
}

// Run resolves and dispatches args. A command line that selects no
// command gets the top level usage message and a failure status.
func (s *Shell) Run(args []string) int {
	sel, ok := s.Resolve(args)
	if !ok {
		return s.Usage(TopLevel, "invalid operation")
	}
	return s.Dispatch(sel, args)
}
