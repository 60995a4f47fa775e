package command

import (
	"io"
	"strings"

	"bazil.org/pki/cliutil/getopt"
)

// Flag describes one option accepted by a subcommand.
type Flag struct {
	Name string
	Code byte
	Arg  getopt.ArgMode
	Help string
}

// Handler runs a subcommand and returns the process exit status.
type Handler func(ctx *Context) int

// Command describes a subcommand.
type Command struct {
	// Name is the long option selecting the command, without the
	// leading dashes.
	Name string
	// Code is the short option selecting the command.
	Code        byte
	Description string
	Handler     Handler
	// Synopses are shown in the usage message of the command. The
	// first line follows the command name, the rest are indented
	// below it.
	Synopses []string
	Flags    []Flag
}

// Context is what a Handler gets to work with.
type Context struct {
	Shell     *Shell
	Selection Selection
	// Args is the complete argument vector, program name included,
	// exactly as it was given to the Shell.
	Args []string
	// Options is the option table of the active command.
	Options Options
	Stdout  io.Writer
	Stderr  io.Writer

	// Args minus the option that selected the command
	scoped []string
}

// Getopt returns a parser over Args using the option table of the
// active command. The option that selected the command has already
// been consumed and is not seen again.
func (c *Context) Getopt() *getopt.Parser {
	args := c.scoped
	if args == nil {
		args = c.Args
	}
	return getopt.New(args, c.Options.Optstring, c.Options.Table)
}

// consume removes the option selecting cmd from args. The long form
// may be abbreviated. A selector in a group of short options ("-sa")
// leaves the rest of the group.
func consume(args []string, cmd Command) []string {
	i := getopt.FirstOption(args)
	if i < 0 {
		return args
	}
	var rest string
	switch a := args[i]; {
	case len(a) > 2 && a[:2] == "--":
		if !strings.HasPrefix(cmd.Name, a[2:]) {
			return args
		}
	case a[1] == cmd.Code:
		rest = a[2:]
	default:
		return args
	}
	r := make([]string, 0, len(args))
	r = append(r, args[:i]...)
	if rest != "" {
		r = append(r, "-"+rest)
	}
	r = append(r, args[i+1:]...)
	return r
}

// Usage writes the usage message of the active command, preceded by
// msg as an error if msg is not empty. It returns the exit status to
// use.
func (c *Context) Usage(msg string) int {
	return c.Shell.Usage(c.Selection, msg)
}
