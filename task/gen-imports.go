//go:build task
// +build task

// Generate side effect only import statements, used for registering
// the pki subcommands.
package main

import (
	"fmt"
	"go/build"
	"io/ioutil"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/kisielk/gotool"
	"github.com/spf13/pflag"
)

var (
	genOutput  = pflag.StringP("output", "o", "", "output path")
	genPackage = pflag.String("package", os.Getenv("GOPACKAGE"), "Go package name")
	genExclude = pflag.StringSlice("exclude", nil, "base names of packages to leave out")
)

var gen = template.Must(template.New("gen").Parse(`// Code generated by task/gen-imports.go; DO NOT EDIT.

package {{.Package}}

import (
{{range .Imports}}{{"\t"}}_ "{{.}}"
{{end}})
`))

var prog = filepath.Base(os.Args[0])

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", prog)
	fmt.Fprintf(os.Stderr, "  %s -o PATH PACKAGE..\n", prog)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	pflag.PrintDefaults()
}

func excluded(importPath string) bool {
	base := path.Base(importPath)
	for _, ex := range *genExclude {
		if base == ex {
			return true
		}
	}
	return false
}

func expandPackages(patterns []string) ([]string, error) {
	// expand "..."
	paths := gotool.ImportPaths(patterns)

	var r []string
	for _, p := range paths {
		pkg, err := build.Import(p, ".", 0)
		if _, ok := err.(*build.NoGoError); ok {
			// directory with no Go source files in it
			continue
		}
		if err != nil {
			return nil, err
		}
		if pkg.ImportPath == "" {
			return nil, fmt.Errorf("no import path found: %v", p)
		}
		if excluded(pkg.ImportPath) {
			continue
		}
		r = append(r, pkg.ImportPath)
	}
	sort.Strings(r)
	return r, nil
}

func process(dst string, imports []string) error {
	imports, err := expandPackages(imports)
	if err != nil {
		return fmt.Errorf("listing packages: %v", err)
	}

	tmp, err := ioutil.TempFile(filepath.Dir(dst), "temp-gen-imports-")
	if err != nil {
		return err
	}
	done := false
	defer func() {
		if !done {
			// silence errcheck
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	type state struct {
		Package string
		Imports []string
	}
	s := state{
		Package: *genPackage,
		Imports: imports,
	}
	if err := gen.Execute(tmp, s); err != nil {
		return fmt.Errorf("template error: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write temp file: %v", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("cannot finalize file: %v", err)
	}
	done = true
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(prog + ": ")

	pflag.Usage = usage
	pflag.Parse()
	if pflag.NArg() == 0 || *genOutput == "" {
		pflag.Usage()
		os.Exit(2)
	}
	if *genPackage == "" {
		log.Fatal("$GOPACKAGE must be set or --package passed")
	}

	if err := process(*genOutput, pflag.Args()); err != nil {
		log.Fatal(err)
	}
}
