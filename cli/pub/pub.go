package pub

import (
	"bazil.org/pki/cli"
	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/cliutil/getopt"
	"bazil.org/pki/keys"
)

func run(ctx *command.Context) int {
	var (
		in   string
		kind = keys.PrivateKey
		form = keys.DER
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
		case 'f':
			if err := form.Set(p.Optarg); err != nil {
				return ctx.Usage(err.Error())
			}
		case getopt.EOF:
			break loop
		default:
			return ctx.Usage("invalid --pub option")
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
	if err := keys.WritePublic(ctx.Stdout, pub, form); err != nil {
		return cli.Fail(err)
	}
	return 0
}

var pub = command.Command{
	Name:        "pub",
	Code:        'p',
	Description: "extract the public key from a private key/certificate",
	Handler:     run,
	Synopses: []string{
		"[--in file] [--type priv|pub|pkcs10|x509]",
		"[--outform der|pem|sshkey]",
	},
	Flags: []command.Flag{
		{Name: "help", Code: 'h', Arg: getopt.NoArgument, Help: "show usage information"},
		{Name: "in", Code: 'i', Arg: getopt.RequiredArgument, Help: "input file, default: stdin"},
		{Name: "type", Code: 't', Arg: getopt.RequiredArgument, Help: "type of credential, default: priv"},
		{Name: "outform", Code: 'f', Arg: getopt.RequiredArgument, Help: "encoding of extracted public key"},
	},
}

func init() {
	command.Register(pub)
}
