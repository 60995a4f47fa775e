package version

import (
	"fmt"

	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/cliutil/getopt"
	v "bazil.org/pki/version"
)

func run(ctx *command.Context) int {
	p := ctx.Getopt()
loop:
	for {
		switch p.Next() {
		case 'h':
			return ctx.Usage("")
		case getopt.EOF:
			break loop
		default:
			return ctx.Usage("invalid --version option")
		}
	}
	if len(p.Args()) > 0 {
		return ctx.Usage("--version takes no arguments")
	}
	fmt.Fprintln(ctx.Stdout, v.Version)
	return 0
}

var version = command.Command{
	Name:        "version",
	Code:        'V',
	Description: "show version number",
	Handler:     run,
	Flags: []command.Flag{
		{Name: "help", Code: 'h', Arg: getopt.NoArgument, Help: "show usage information"},
	},
}

func init() {
	command.Register(version)
}
