package command

import (
	"fmt"
	"strings"

	"bazil.org/pki/cliutil/getopt"
)

// Selection tells which command an option table or usage message is
// for. It is either TopLevel or the index of a registered command.
type Selection int

// TopLevel selects the table of all commands, used before a command
// has been chosen.
const TopLevel Selection = -1

// Options is an option table in the form the getopt package accepts.
type Options struct {
	Table     []getopt.Option
	Optstring string
}

// Options builds the option table for sel.
//
// At top level, every command is a flag without value. For a
// selected command, its flags are listed in declaration order, and
// in Optstring each code is followed by ":" if it requires a value
// or "::" if the value is optional. The help command uses the top
// level table.
func (r *Registry) Options(sel Selection) Options {
	r.lock.Lock()
	defer r.lock.Unlock()
	sel = r.scope(sel)

	var opts Options
	var optstring strings.Builder
	if sel == TopLevel {
		opts.Table = make([]getopt.Option, 0, len(r.commands))
		for _, cmd := range r.commands {
			opts.Table = append(opts.Table, getopt.Option{
				Name: cmd.Name,
				Has:  getopt.NoArgument,
				Code: cmd.Code,
			})
			optstring.WriteByte(cmd.Code)
		}
		opts.Optstring = optstring.String()
		return opts
	}

	cmd := r.commands[sel]
	opts.Table = make([]getopt.Option, 0, len(cmd.Flags))
	for _, f := range cmd.Flags {
		opts.Table = append(opts.Table, getopt.Option{
			Name: f.Name,
			Has:  f.Arg,
			Code: f.Code,
		})
		optstring.WriteByte(f.Code)
		switch f.Arg {
		case getopt.OptionalArgument:
			optstring.WriteString("::")
		case getopt.RequiredArgument:
			optstring.WriteString(":")
		}
	}
	opts.Optstring = optstring.String()
	return opts
}

// scope maps the help command to TopLevel and rejects selections
// that do not exist. Caller must hold r.lock.
func (r *Registry) scope(sel Selection) Selection {
	if sel == TopLevel {
		return sel
	}
	if sel < 0 || int(sel) >= len(r.commands) {
		panic(fmt.Errorf("command selection out of range: %d", sel))
	}
	if r.finalized && int(sel) == r.help {
		return TopLevel
	}
	return sel
}
