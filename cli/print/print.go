package print

import (
	"crypto/x509"
	"fmt"
	"time"

	"bazil.org/pki/certs"
	"bazil.org/pki/cli"
	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/cliutil/getopt"
	"bazil.org/pki/keys"
)

func run(ctx *command.Context) int {
	var (
		in   string
		kind = keys.Certificate
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
			return ctx.Usage("invalid --print option")
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
	switch o := obj.(type) {
	case *x509.Certificate:
		err = certs.Print(ctx.Stdout, o, time.Now())
	case *x509.CertificateRequest:
		fmt.Fprintf(ctx.Stdout, "  subject:  \"%s\"\n", o.Subject)
		err = certs.PrintKey(ctx.Stdout, o.PublicKey)
	default:
		var pub interface{}
		pub, err = keys.Public(obj)
		if err == nil {
			if kind == keys.PrivateKey {
				fmt.Fprintf(ctx.Stdout, "  privkey:   %s\n", keys.Describe(pub))
			}
			err = certs.PrintKey(ctx.Stdout, pub)
		}
	}
	if err != nil {
		return cli.Fail(err)
	}
	return 0
}

var printCommand = command.Command{
	Name:        "print",
	Code:        'a',
	Description: "print a credential in a human readable form",
	Handler:     run,
	Synopses: []string{
		"[--in file] [--type x509|pub|priv|pkcs10]",
	},
	Flags: []command.Flag{
		{Name: "help", Code: 'h', Arg: getopt.NoArgument, Help: "show usage information"},
		{Name: "in", Code: 'i', Arg: getopt.RequiredArgument, Help: "input file, default: stdin"},
		{Name: "type", Code: 't', Arg: getopt.RequiredArgument, Help: "type of credential, default: x509"},
	},
}

func init() {
	command.Register(printCommand)
}
