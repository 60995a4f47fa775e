// Command pki creates and inspects keys and certificates.
package main

import (
	"os"

	"bazil.org/pki/cli"
)

//go:generate go run task/gen-imports.go -o commands.gen.go --exclude clitest ./cli/...

func main() {
	code := cli.Main()
	os.Exit(code)
}
