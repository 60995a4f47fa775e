package command_test

import (
	"reflect"
	"strings"
	"testing"

	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/cliutil/getopt"
)

func signCommand(handler command.Handler) command.Command {
	return command.Command{
		Name:        "sign",
		Code:        's',
		Description: "sign things",
		Handler:     handler,
		Synopses: []string{
			"--in file",
			"[--out file]",
		},
		Flags: []command.Flag{
			{Name: "help", Code: 'h', Arg: getopt.NoArgument, Help: "show usage information"},
			{Name: "all", Code: 'a', Arg: getopt.NoArgument, Help: "include everything"},
			{Name: "body", Code: 'b', Arg: getopt.RequiredArgument, Help: "body text"},
			{Name: "color", Code: 'c', Arg: getopt.OptionalArgument, Help: "paint it"},
		},
	}
}

func verifyCommand(handler command.Handler) command.Command {
	return command.Command{
		Name:        "verify",
		Code:        'v',
		Description: "verify things",
		Handler:     handler,
	}
}

func finalized(t testing.TB, cmds ...command.Command) *command.Registry {
	reg := &command.Registry{}
	mustAdd(t, reg, cmds...)
	if err := reg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	return reg
}

func TestOptionsTopLevel(t *testing.T) {
	reg := finalized(t, signCommand(noop), verifyCommand(noop))
	opts := reg.Options(command.TopLevel)
	if g, e := len(opts.Table), reg.Len(); g != e {
		t.Fatalf("unexpected table size: %d != %d", g, e)
	}
	for _, o := range opts.Table {
		if o.Has != getopt.NoArgument {
			t.Errorf("top level option --%s takes a value: %v", o.Name, o.Has)
		}
	}
	if g, e := opts.Optstring, "svh"; g != e {
		t.Errorf("unexpected optstring: %q != %q", g, e)
	}
	if g, e := len(opts.Optstring), reg.Len(); g != e {
		t.Errorf("unexpected optstring length: %d != %d", g, e)
	}
	if strings.Contains(opts.Optstring, ":") {
		t.Errorf("top level optstring has values: %q", opts.Optstring)
	}
	e := []getopt.Option{
		{Name: "sign", Has: getopt.NoArgument, Code: 's'},
		{Name: "verify", Has: getopt.NoArgument, Code: 'v'},
		{Name: "help", Has: getopt.NoArgument, Code: 'h'},
	}
	if !reflect.DeepEqual(opts.Table, e) {
		t.Errorf("unexpected table: %+v != %+v", opts.Table, e)
	}
}

func TestOptionsScoped(t *testing.T) {
	var reg command.Registry
	mustAdd(t, &reg, command.Command{
		Name:    "abc",
		Code:    'x',
		Handler: noop,
		Flags: []command.Flag{
			{Name: "a", Code: 'a', Arg: getopt.NoArgument},
			{Name: "b", Code: 'b', Arg: getopt.RequiredArgument},
			{Name: "c", Code: 'c', Arg: getopt.OptionalArgument},
		},
	})
	opts := reg.Options(0)
	if g, e := opts.Optstring, "ab:c::"; g != e {
		t.Errorf("unexpected optstring: %q != %q", g, e)
	}
	e := []getopt.Option{
		{Name: "a", Has: getopt.NoArgument, Code: 'a'},
		{Name: "b", Has: getopt.RequiredArgument, Code: 'b'},
		{Name: "c", Has: getopt.OptionalArgument, Code: 'c'},
	}
	if !reflect.DeepEqual(opts.Table, e) {
		t.Errorf("unexpected table: %+v != %+v", opts.Table, e)
	}
}

func TestOptionsHelpIsTopLevel(t *testing.T) {
	reg := finalized(t, signCommand(noop))
	g := reg.Options(command.Selection(reg.HelpIndex()))
	e := reg.Options(command.TopLevel)
	if !reflect.DeepEqual(g, e) {
		t.Errorf("help options differ from top level: %+v != %+v", g, e)
	}
}

func TestOptionsRebuilt(t *testing.T) {
	reg := finalized(t, signCommand(noop), verifyCommand(noop))
	scoped := reg.Options(0)
	top := reg.Options(command.TopLevel)
	if g, e := len(top.Table), 3; g != e {
		t.Errorf("scoped build leaked into top level: %d != %d", g, e)
	}
	if g, e := scoped.Optstring, "hab:c::"; g != e {
		t.Errorf("unexpected optstring: %q != %q", g, e)
	}
	if g, e := reg.Options(1).Optstring, ""; g != e {
		t.Errorf("unexpected optstring: %q != %q", g, e)
	}
}

func TestOptionsIdempotent(t *testing.T) {
	reg := finalized(t, signCommand(noop), verifyCommand(noop))
	for _, sel := range []command.Selection{command.TopLevel, 0, 1} {
		a := reg.Options(sel)
		b := reg.Options(sel)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("options for %d differ: %+v != %+v", sel, a, b)
		}
	}
}

func TestOptionsOutOfRange(t *testing.T) {
	reg := finalized(t, signCommand(noop))
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		}
	}()
	reg.Options(command.Selection(reg.Len()))
}
