//go:build task
// +build task

package main

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

func sourceDir() (dir string, ok bool) {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return "", ok
	}
	dir = filepath.Dir(file)

	// task files live in a subdir
	parent, taskDir := filepath.Split(dir)
	if taskDir == "task" {
		dir = parent
	}
	return dir, ok
}

func goCmd(action string, args ...string) error {
	cmd := exec.Command("go", action)
	cmd.Args = append(cmd.Args, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// gitVersion describes the checkout relative to the last release tag,
// or returns "dev" outside of a tagged git tree.
func gitVersion() string {
	cmd := exec.Command(
		"git", "describe",
		"--match", "v*",
		"--dirty=-edited",
	)
	cmd.Stderr = os.Stderr
	buf, err := cmd.Output()
	if err != nil {
		log.Printf("git describe: %v", err)
		return "dev"
	}
	return strings.TrimSpace(string(buf))
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("# ")
	src, ok := sourceDir()
	if !ok {
		log.Fatal("cannot determine source directory")
	}
	if err := os.Chdir(src); err != nil {
		log.Fatalf("cannot change to source directory: %v", err)
	}

	log.Print("generate")
	if err := goCmd("generate", "bazil.org/pki"); err != nil {
		log.Fatalf("go generate: %v", err)
	}

	version := gitVersion()
	log.Printf("build pki %s", version)
	if err := goCmd("build", "-v",
		"-ldflags", "-X bazil.org/pki/version.Version="+version,
		"-o", "pki",
		"bazil.org/pki",
	); err != nil {
		log.Fatalf("go build of pki: %v", err)
	}
}
