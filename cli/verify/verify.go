package verify

import (
	"crypto/x509"
	"fmt"
	"io/ioutil"
	"time"

	"bazil.org/pki/certs"
	"bazil.org/pki/cli"
	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/cliutil/getopt"
	"bazil.org/pki/keys"
)

func readCertificate(data []byte) (*x509.Certificate, error) {
	obj, err := keys.Decode(data, keys.Certificate)
	if err != nil {
		return nil, err
	}
	return obj.(*x509.Certificate), nil
}

func run(ctx *command.Context) int {
	var in, cacert string
	p := ctx.Getopt()
loop:
	for {
		switch p.Next() {
		case 'h':
			return ctx.Usage("")
		case 'i':
			in = p.Optarg
		case 'c':
			cacert = p.Optarg
		case getopt.EOF:
			break loop
		default:
			return ctx.Usage("invalid --verify option")
		}
	}

	data, err := cli.ReadInput(in)
	if err != nil {
		return cli.Fail(err)
	}
	cert, err := readCertificate(data)
	if err != nil {
		return cli.Fail(err)
	}
	var ca *x509.Certificate
	if cacert != "" {
		buf, err := ioutil.ReadFile(cacert)
		if err != nil {
			return cli.Fail(err)
		}
		ca, err = readCertificate(buf)
		if err != nil {
			return cli.Fail(fmt.Errorf("CA certificate: %v", err))
		}
	}

	if err := certs.Verify(cert, ca, time.Now()); err != nil {
		fmt.Fprintf(ctx.Stdout, "%v\n", err)
		return 1
	}
	fmt.Fprintf(ctx.Stdout, "certificate trusted, lifetimes valid\n")
	return 0
}

var verify = command.Command{
	Name:        "verify",
	Code:        'v',
	Description: "verify a certificate using the CA certificate",
	Handler:     run,
	Synopses: []string{
		"[--in file] [--cacert file]",
	},
	Flags: []command.Flag{
		{Name: "help", Code: 'h', Arg: getopt.NoArgument, Help: "show usage information"},
		{Name: "in", Code: 'i', Arg: getopt.RequiredArgument, Help: "X.509 certificate to verify, default: stdin"},
		{Name: "cacert", Code: 'c', Arg: getopt.RequiredArgument, Help: "CA certificate, default: verify self signed"},
	},
}

func init() {
	command.Register(verify)
}
