// Package command registers the subcommands of a single-level CLI
// tool and dispatches to one of them.
//
// Every subcommand is selected by a top-level flag: "pki --gen ..."
// or "pki -g ...". Registration happens from init functions of the
// packages implementing the subcommands:
//
//     func init() {
//         command.Register(command.Command{
//             Name:        "gen",
//             Code:        'g',
//             Description: "generate a new private key",
//             Handler:     gen,
//             Flags: []command.Flag{
//                 {Name: "help", Code: 'h', Help: "show usage information"},
//                 {Name: "type", Code: 't', Arg: getopt.RequiredArgument, Help: "type of key"},
//             },
//         })
//     }
//
// Arguments are parsed twice. The Shell first parses against a table
// that holds only the subcommand selectors, to find out which
// subcommand is active. The handler of that subcommand then parses
// the very same argument vector again, against a table built from
// its own flags.
//
// Command codes must be unique, including the "h" of the implicit
// help command. Lookup itself resolves duplicates to the first
// registration; Finalize refuses them.
package command
