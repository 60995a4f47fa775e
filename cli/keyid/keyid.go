package keyid

import (
	"fmt"

	"bazil.org/pki/cli"
	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/cliutil/getopt"
	"bazil.org/pki/keys"
)

func run(ctx *command.Context) int {
	var (
		in   string
		kind = keys.PrivateKey
	)
	p := ctx.Getopt()
loop:
	for {
		switch p.Next() {
		case 'h':
			return ctx.Usage("")
		case 'i':
			in = p.Optarg
		case 't':
			if err := kind.Set(p.Optarg); err != nil {
				return ctx.Usage(err.Error())
			}
		case getopt.EOF:
			break loop
		default:
			return ctx.Usage("invalid --keyid option")
		}
	}

	data, err := cli.ReadInput(in)
	if err != nil {
		return cli.Fail(err)
	}
	obj, err := keys.Decode(data, kind)
	if err != nil {
		return cli.Fail(err)
	}
	pub, err := keys.Public(obj)
	if err != nil {
		return cli.Fail(err)
	}

	skid, err := keys.SubjectKeyID(pub)
	if err != nil {
		return cli.Fail(err)
	}
	info, err := keys.InfoHash(pub)
	if err != nil {
		return cli.Fail(err)
	}
	fp, err := keys.Fingerprint(pub)
	if err != nil {
		return cli.Fail(err)
	}
	fmt.Fprintf(ctx.Stdout, "subjkey (SHA1 of subjectPublicKey): %s\n", keys.Hex(skid))
	fmt.Fprintf(ctx.Stdout, "keyid (SHA1 of SubjectPublicKeyInfo): %s\n", keys.Hex(info))
	fmt.Fprintf(ctx.Stdout, "fingerprint (BLAKE2b of SubjectPublicKeyInfo): %s\n", fp)
	return 0
}

var keyid = command.Command{
	Name:        "keyid",
	Code:        'k',
	Description: "calculate key identifiers of a key/certificate",
	Handler:     run,
	Synopses: []string{
		"[--in file] [--type priv|pub|pkcs10|x509]",
	},
	Flags: []command.Flag{
		{Name: "help", Code: 'h', Arg: getopt.NoArgument, Help: "show usage information"},
		{Name: "in", Code: 'i', Arg: getopt.RequiredArgument, Help: "input file, default: stdin"},
		{Name: "type", Code: 't', Arg: getopt.RequiredArgument, Help: "type of key, default: priv"},
	},
}

func init() {
	command.Register(keyid)
}
