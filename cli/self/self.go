package self

import (
	"crypto"
	"crypto/rand"
	"fmt"
	"strconv"
	"time"

	"bazil.org/pki/certs"
	"bazil.org/pki/cli"
	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/cliutil/flagx"
	"bazil.org/pki/cliutil/getopt"
	"bazil.org/pki/keys"
)

func run(ctx *command.Context) int {
	var (
		in       string
		kind     = keys.PrivateKey
		dn       string
		sans     flagx.Strings
		lifetime flagx.Days
		serial   flagx.Serial
		form     = keys.DER
	)
	tmpl := certs.Template{PathLen: certs.Unconstrained}

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
			if kind != keys.PrivateKey {
				return ctx.Usage("invalid input type, private key required")
			}
		case 'd':
			dn = p.Optarg
		case 'a':
			if err := sans.Set(p.Optarg); err != nil {
				return ctx.Usage(err.Error())
			}
		case 'l':
			if err := lifetime.Set(p.Optarg); err != nil {
				return ctx.Usage(err.Error())
			}
		case 'x':
			if err := serial.Set(p.Optarg); err != nil {
				return ctx.Usage(err.Error())
			}
		case 'b':
			tmpl.CA = true
		case 'p':
			tmpl.PathLen = certs.Unconstrained
			if p.Optarg == "" {
				continue
			}
			n, err := strconv.Atoi(p.Optarg)
			if err != nil || n < 0 {
				return ctx.Usage(fmt.Sprintf("invalid path length: %q", p.Optarg))
			}
			tmpl.PathLen = n
		case 'g':
			if err := tmpl.Digest.Set(p.Optarg); err != nil {
				return ctx.Usage(err.Error())
			}
		case 'f':
			if err := form.Set(p.Optarg); err != nil {
				return ctx.Usage(err.Error())
			}
		case getopt.EOF:
			break loop
		default:
			return ctx.Usage("invalid --self option")
		}
	}
	if dn == "" {
		return ctx.Usage("--dn is required")
	}
	subject, err := certs.ParseDN(dn)
	if err != nil {
		return ctx.Usage(fmt.Sprintf("invalid --dn: %v", err))
	}
	tmpl.Subject = subject
	tmpl.SANs = sans
	tmpl.Lifetime = lifetime.Duration()
	tmpl.Serial = serial.Int

	data, err := cli.ReadInput(in)
	if err != nil {
		return cli.Fail(err)
	}
	obj, err := keys.Decode(data, kind)
	if err != nil {
		return cli.Fail(err)
	}
	der, err := certs.SelfSign(rand.Reader, obj.(crypto.Signer), &tmpl, time.Now())
	if err != nil {
		return cli.Fail(err)
	}
	if err := keys.WriteCertificate(ctx.Stdout, der, form); err != nil {
		return cli.Fail(err)
	}
	return 0
}

var self = command.Command{
	Name:        "self",
	Code:        's',
	Description: "create a self signed certificate",
	Handler:     run,
	Synopses: []string{
		"[--in file] [--type priv] --dn distinguished-name",
		"[--san subjectAltName]+ [--lifetime days] [--serial hex]",
		"[--ca] [--pathlen[=len]] [--digest sha256|sha384|sha512]",
		"[--outform der|pem]",
	},
	Flags: []command.Flag{
		{Name: "help", Code: 'h', Arg: getopt.NoArgument, Help: "show usage information"},
		{Name: "in", Code: 'i', Arg: getopt.RequiredArgument, Help: "private key input file, default: stdin"},
		{Name: "type", Code: 't', Arg: getopt.RequiredArgument, Help: "type of input key, default: priv"},
		{Name: "dn", Code: 'd', Arg: getopt.RequiredArgument, Help: "subject and issuer distinguished name"},
		{Name: "san", Code: 'a', Arg: getopt.RequiredArgument, Help: "subjectAltName to include in certificate"},
		{Name: "lifetime", Code: 'l', Arg: getopt.RequiredArgument, Help: "days the certificate is valid, default: 1095"},
		{Name: "serial", Code: 'x', Arg: getopt.RequiredArgument, Help: "serial number in hex, default: random"},
		{Name: "ca", Code: 'b', Arg: getopt.NoArgument, Help: "include CA basicConstraint"},
		{Name: "pathlen", Code: 'p', Arg: getopt.OptionalArgument, Help: "set path length constraint, alone: none"},
		{Name: "digest", Code: 'g', Arg: getopt.RequiredArgument, Help: "digest for signature creation, default: sha256"},
		{Name: "outform", Code: 'f', Arg: getopt.RequiredArgument, Help: "encoding of generated cert"},
	},
}

func init() {
	command.Register(self)
}
