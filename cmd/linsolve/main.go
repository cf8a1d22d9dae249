// Command linsolve reads a square linear system and prints its solution.
//
// Input is one equation per line, coefficients then right-hand side:
//
//	# 2x + y = 3, x + 3y = 5
//	2 1 | 3
//	1 3 | 5
//
// Usage:
//
//	linsolve [-template report.tpl] [-chart x.png] [system.txt]
//
// With no file argument the system is read from stdin. The exit status is 0
// for a unique solution, 1 for invalid input or a degenerate system, and 2
// for usage and I/O errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/linsolve/form"
	"github.com/katalvlaran/linsolve/report"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	stdinMarker = "-"
)

func main() {
	var (
		tplPath   = flag.String("template", "", "pongo2 template for the report (default built-in)")
		chartPath = flag.String("chart", "", "write a bar chart of the solution to this file (.png, .svg, .pdf)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [system.txt]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("linsolve: ")

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(exitUsage)
	}
	in := stdinMarker
	if flag.NArg() == 1 {
		in = flag.Arg(0)
	}

	tpl, err := loadTemplate(*tplPath)
	if err != nil {
		log.Print(err)
		os.Exit(exitUsage)
	}

	outcome, err := solveFrom(in)
	if err != nil {
		log.Print(err)
		os.Exit(exitUsage)
	}

	text, err := tpl.Render(outcome)
	if err != nil {
		log.Print(err)
		os.Exit(exitUsage)
	}
	fmt.Print(text)

	if !outcome.OK() {
		os.Exit(exitFailed)
	}
	if *chartPath != "" {
		if err = report.SaveChart(outcome.Solution, *chartPath); err != nil {
			log.Print(err)
			os.Exit(exitUsage)
		}
	}
	os.Exit(exitOK)
}

// loadTemplate compiles the template at path, or the built-in one when path is empty.
func loadTemplate(path string) (*report.Template, error) {
	r := report.NewRenderer()
	if path == "" {
		return r.Default()
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}

	return r.FromString(string(src))
}

// solveFrom reads the system from a file or stdin. Read failures are
// returned as errors; malformed or unsolvable systems end up in the Outcome.
func solveFrom(path string) (form.Outcome, error) {
	var src io.Reader = os.Stdin
	if path != stdinMarker {
		f, err := os.Open(path)
		if err != nil {
			return form.Outcome{}, err
		}
		defer f.Close()
		src = f
	}

	a, b, err := form.ReadSystem(src)
	if err != nil {
		return form.Outcome{Err: err, Text: form.Message(err)}, nil
	}

	return form.SolveStrings(a, b), nil
}
