// Package clitest runs single pki commands in tests.
package clitest

import (
	"bytes"
	"testing"

	"bazil.org/pki/cli"
	"bazil.org/pki/cliutil/command"
)

// Result is what a command run produced.
type Result struct {
	Status int
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

// Run dispatches "pki args..." to a shell holding only cmd, with
// stdin as the input of the command.
func Run(t testing.TB, cmd command.Command, stdin []byte, args ...string) *Result {
	reg := &command.Registry{}
	if err := reg.Add(cmd); err != nil {
		t.Fatalf("cannot add command: %v", err)
	}
	shell, err := command.NewShell(reg, "pki")
	if err != nil {
		t.Fatalf("cannot create shell: %v", err)
	}
	res := &Result{}
	shell.Stdout = &res.Stdout
	shell.Stderr = &res.Stderr

	old := cli.Stdin
	cli.Stdin = bytes.NewReader(stdin)
	defer func() { cli.Stdin = old }()

	res.Status = shell.Run(append([]string{"pki"}, args...))
	return res
}
