package command_test

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/cliutil/getopt"
)

type testShell struct {
	*command.Shell
	stdout bytes.Buffer
	stderr bytes.Buffer
	events []interface{}
}

func newShell(t testing.TB, cmds ...command.Command) *testShell {
	reg := &command.Registry{}
	mustAdd(t, reg, cmds...)
	sh, err := command.NewShell(reg, "pki")
	if err != nil {
		t.Fatalf("cannot create shell: %v", err)
	}
	ts := &testShell{Shell: sh}
	sh.Banner = "pki test tool"
	sh.Stdout = &ts.stdout
	sh.Stderr = &ts.stderr
	sh.Debug = func(msg interface{}) { ts.events = append(ts.events, msg) }
	return ts
}

const topUsage = `pki test tool
usage:
  pki --sign (-s)    sign things
  pki --verify (-v)  verify things
  pki --help (-h)    show usage information
`

func TestRunInvalidOperation(t *testing.T) {
	called := false
	handler := func(*command.Context) int {
		called = true
		return 0
	}
	for _, args := range [][]string{
		{"pki", "--bogus"},
		{"pki", "-q"},
		{"pki"},
		{"pki", "positional"},
		{"pki", "--in", "file", "--sign"},
	} {
		sh := newShell(t, signCommand(handler), verifyCommand(handler))
		if g, e := sh.Run(args), 1; g != e {
			t.Errorf("%q: unexpected exit status: %d != %d", args, g, e)
		}
		if g, e := sh.stderr.String(), "Error: invalid operation\n"+topUsage; g != e {
			t.Errorf("%q: unexpected usage:\n%s", args, g)
			t.Logf("got: %q", g)
			t.Logf("exp: %q", e)
		}
		if sh.stdout.Len() != 0 {
			t.Errorf("%q: unexpected stdout: %q", args, sh.stdout.String())
		}
		if len(sh.events) == 0 {
			t.Errorf("%q: no debug events", args)
		}
	}
	if called {
		t.Errorf("handler called for invalid operation")
	}
}

func TestRunHelp(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		sh := newShell(t, signCommand(noop), verifyCommand(noop))
		if g, e := sh.Run([]string{"pki", flag}), 0; g != e {
			t.Errorf("%s: unexpected exit status: %d != %d", flag, g, e)
		}
		if g, e := sh.stdout.String(), topUsage; g != e {
			t.Errorf("%s: unexpected usage:\n%s", flag, g)
			t.Logf("got: %q", g)
			t.Logf("exp: %q", e)
		}
		if sh.stderr.Len() != 0 {
			t.Errorf("%s: unexpected stderr: %q", flag, sh.stderr.String())
		}
	}
}

func TestResolveHelp(t *testing.T) {
	sh := newShell(t, signCommand(noop))
	sel, ok := sh.Resolve([]string{"pki", "--help"})
	if !ok {
		t.Fatalf("help not resolved")
	}
	if g, e := int(sel), sh.Registry.HelpIndex(); g != e {
		t.Errorf("unexpected selection: %d != %d", g, e)
	}
}

func TestRunForwardsArguments(t *testing.T) {
	var got []string
	handler := func(ctx *command.Context) int {
		got = ctx.Args
		return 42
	}
	args := []string{"pki", "--sign", "--body", "text", "file"}
	sh := newShell(t, signCommand(handler), verifyCommand(noop))
	if g, e := sh.Run(args), 42; g != e {
		t.Errorf("unexpected exit status: %d != %d", g, e)
	}
	if !reflect.DeepEqual(got, args) {
		t.Errorf("unexpected arguments: %q != %q", got, args)
	}
}

func TestRunShortSelector(t *testing.T) {
	var which string
	sign := func(*command.Context) int { which = "sign"; return 3 }
	verify := func(*command.Context) int { which = "verify"; return 5 }
	sh := newShell(t, signCommand(sign), verifyCommand(verify))
	if g, e := sh.Run([]string{"pki", "-v"}), 5; g != e {
		t.Errorf("unexpected exit status: %d != %d", g, e)
	}
	if g, e := which, "verify"; g != e {
		t.Errorf("unexpected command: %q != %q", g, e)
	}
}

type seenOpt struct {
	Code   int
	Optarg string
}

func recordingHandler(seen *[]seenOpt, rest *[]string) command.Handler {
	return func(ctx *command.Context) int {
		p := ctx.Getopt()
		for {
			switch code := p.Next(); code {
			case getopt.Unknown:
				return ctx.Usage("invalid --sign option")
			case getopt.EOF:
				*rest = p.Args()
				return 0
			default:
				*seen = append(*seen, seenOpt{code, p.Optarg})
			}
		}
	}
}

func TestDispatchScopedParse(t *testing.T) {
	for _, c := range []struct {
		args []string
		seen []seenOpt
		rest []string
	}{
		{
			args: []string{"pki", "--sign", "-a", "--body", "text", "--color=red", "file"},
			seen: []seenOpt{{'a', ""}, {'b', "text"}, {'c', "red"}},
			rest: []string{"file"},
		},
		{
			args: []string{"pki", "first", "-s", "--color", "second"},
			seen: []seenOpt{{'c', ""}},
			rest: []string{"first", "second"},
		},
		{
			args: []string{"pki", "-sab", "text"},
			seen: []seenOpt{{'a', ""}, {'b', "text"}},
		},
		{
			args: []string{"pki", "--si", "-c2", "--bo", "text"},
			seen: []seenOpt{{'c', "2"}, {'b', "text"}},
		},
		{
			args: []string{"pki", "-sc2", "file"},
			seen: []seenOpt{{'c', "2"}},
			rest: []string{"file"},
		},
	} {
		var seen []seenOpt
		var rest []string
		sh := newShell(t, signCommand(recordingHandler(&seen, &rest)))
		if g, e := sh.Run(c.args), 0; g != e {
			t.Errorf("%q: unexpected exit status: %d != %d", c.args, g, e)
			t.Logf("stderr: %s", sh.stderr.String())
			continue
		}
		if !reflect.DeepEqual(seen, c.seen) {
			t.Errorf("%q: unexpected options: %v != %v", c.args, seen, c.seen)
		}
		if len(rest) != len(c.rest) || (len(rest) > 0 && !reflect.DeepEqual(rest, c.rest)) {
			t.Errorf("%q: unexpected positional arguments: %q != %q", c.args, rest, c.rest)
		}
	}
}

func TestDispatchScopedUnknown(t *testing.T) {
	var seen []seenOpt
	var rest []string
	sh := newShell(t, signCommand(recordingHandler(&seen, &rest)), verifyCommand(noop))
	if g, e := sh.Run([]string{"pki", "--sign", "--verify"}), 1; g != e {
		t.Fatalf("unexpected exit status: %d != %d", g, e)
	}
	if !strings.HasPrefix(sh.stderr.String(), "Error: invalid --sign option\n") {
		t.Errorf("unexpected stderr: %q", sh.stderr.String())
	}
}

func TestDispatchScopedOptions(t *testing.T) {
	var opts command.Options
	var args []string
	handler := func(ctx *command.Context) int {
		opts = ctx.Options
		p := ctx.Getopt()
		for {
			code := p.Next()
			if code == getopt.EOF {
				break
			}
			if code == 'b' {
				args = append(args, p.Optarg)
			}
		}
		return 0
	}
	sh := newShell(t, signCommand(handler))
	sel, ok := sh.Resolve([]string{"pki", "--sign"})
	if !ok {
		t.Fatalf("sign not resolved")
	}
	if g, e := sh.Dispatch(sel, []string{"pki", "--body", "one", "-btwo"}), 0; g != e {
		t.Fatalf("unexpected exit status: %d != %d", g, e)
	}
	if g, e := opts.Optstring, "hab:c::"; g != e {
		t.Errorf("unexpected optstring: %q != %q", g, e)
	}
	if g, e := args, []string{"one", "two"}; !reflect.DeepEqual(g, e) {
		t.Errorf("unexpected values: %q != %q", g, e)
	}
}

func TestContextUsage(t *testing.T) {
	handler := func(ctx *command.Context) int {
		return ctx.Usage("bad")
	}
	sh := newShell(t, signCommand(handler))
	if g, e := sh.Run([]string{"pki", "--sign"}), 1; g != e {
		t.Errorf("unexpected exit status: %d != %d", g, e)
	}
	if g, e := sh.stderr.String(), `Error: bad
pki test tool
usage:
  pki --sign --in file
              [--out file]
        --help (-h)     show usage information
        --all (-a)      include everything
        --body (-b)     body text
        --color (-c)    paint it
`; g != e {
		t.Errorf("unexpected usage:\n%s", g)
		t.Logf("got: %q", g)
		t.Logf("exp: %q", e)
	}
}

func TestContextUsageHelp(t *testing.T) {
	handler := func(ctx *command.Context) int {
		return ctx.Usage("")
	}
	sh := newShell(t, verifyCommand(handler))
	if g, e := sh.Run([]string{"pki", "--verify"}), 0; g != e {
		t.Errorf("unexpected exit status: %d != %d", g, e)
	}
	if g, e := sh.stdout.String(), "pki test tool\nusage:\n"; g != e {
		t.Errorf("unexpected usage: %q != %q", g, e)
	}
}

func TestDispatchTopLevelPanics(t *testing.T) {
	sh := newShell(t, signCommand(noop))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		err, ok := r.(error)
		if !ok || !strings.Contains(err.Error(), "command selection out of range: -1") {
			t.Errorf("unexpected panic: %v", r)
		}
	}()
	sh.Dispatch(command.TopLevel, []string{"pki"})
}

func TestRunDebugEvents(t *testing.T) {
	for _, c := range []struct {
		args  []string
		event string
	}{
		{[]string{"pki"}, "no option"},
		{[]string{"pki", "--bogus"}, "invalid option: unknown flag: --bogus"},
		{[]string{"pki", "--sign"}, "resolved --sign (-s)"},
	} {
		sh := newShell(t, signCommand(noop))
		sh.Run(c.args)
		if len(sh.events) == 0 {
			t.Errorf("%q: no debug events", c.args)
			continue
		}
		ev, ok := sh.events[0].(fmt.Stringer)
		if !ok {
			t.Errorf("%q: event is not a Stringer: %T", c.args, sh.events[0])
			continue
		}
		if g, e := ev.String(), c.event; g != e {
			t.Errorf("%q: unexpected event: %q != %q", c.args, g, e)
		}
	}
}
