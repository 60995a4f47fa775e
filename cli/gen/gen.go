package gen

import (
	"crypto/rand"
	"strconv"

	"bazil.org/pki/cli"
	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/cliutil/getopt"
	"bazil.org/pki/keys"
)

func run(ctx *command.Context) int {
	var (
		alg  = keys.RSA
		size int
		form = keys.DER
	)
	p := ctx.Getopt()
loop:
	for {
		switch p.Next() {
		case 'h':
			return ctx.Usage("")
		case 't':
			if err := alg.Set(p.Optarg); err != nil {
				return ctx.Usage(err.Error())
			}
		case 's':
			n, err := strconv.Atoi(p.Optarg)
			if err != nil || n <= 0 {
				return ctx.Usage("invalid key size")
			}
			size = n
		case 'f':
			if err := form.Set(p.Optarg); err != nil {
				return ctx.Usage(err.Error())
			}
		case getopt.EOF:
			break loop
		default:
			return ctx.Usage("invalid --gen option")
		}
	}

	key, err := keys.Generate(alg, size, rand.Reader)
	if err != nil {
		return cli.Fail(err)
	}
	if err := keys.WritePrivate(ctx.Stdout, key, form); err != nil {
		return cli.Fail(err)
	}
	return 0
}

var gen = command.Command{
	Name:        "gen",
	Code:        'g',
	Description: "generate a new private key",
	Handler:     run,
	Synopses: []string{
		"[--type rsa|ecdsa|ed25519] [--size bits] [--outform der|pem]",
	},
	Flags: []command.Flag{
		{Name: "help", Code: 'h', Arg: getopt.NoArgument, Help: "show usage information"},
		{Name: "type", Code: 't', Arg: getopt.RequiredArgument, Help: "type of key, default: rsa"},
		{Name: "size", Code: 's', Arg: getopt.RequiredArgument, Help: "keylength in bits, default: rsa 2048, ecdsa 384"},
		{Name: "outform", Code: 'f', Arg: getopt.RequiredArgument, Help: "encoding of generated private key"},
	},
}

func init() {
	command.Register(gen)
}
