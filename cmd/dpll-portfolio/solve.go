package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kr/pretty"

	solver "github.com/quietvale/dpll-portfolio"
)

// solveCommand runs a single-engine solve with DLIS, the CLI's
// mode-agnostic default heuristic.
type solveCommand struct{}

func (*solveCommand) Help() string {
	return strings.TrimSpace(`
Usage: dpll-portfolio solve [-v] [-debug] <cnf-file>

  Parses a DIMACS CNF file and runs the classical DPLL search engine
  against it with the DLIS heuristic, printing two output records
  (parse-complete, then SAT or UNSAT) on standard output.
`)
}

func (*solveCommand) Synopsis() string { return "Solve a single CNF instance" }

func (c *solveCommand) Run(args []string) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "print solver statistics to stderr")
	debug := fs.Bool("debug", false, "pretty-print final solver statistics to stderr")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "solve: expected exactly one CNF file argument")
		return 1
	}
	path := fs.Arg(0)

	logger := hclog.New(&hclog.LoggerOptions{Name: "dpll", Level: hclog.Warn})
	if *debug {
		logger.SetLevel(hclog.Trace)
	}

	start := time.Now()
	problem, err := parseFile(path)
	if err != nil {
		logger.Error("parse failed", "error", err)
		fmt.Fprintf(os.Stderr, "solve: %s\n", err)
		return 1
	}
	fmt.Println(solver.FormatParseRecord(filepath.Base(path), time.Since(start).Seconds()))

	searchStart := time.Now()
	sol, stats, sat := solver.Solve(problem, solver.NewDLIS())
	elapsed := time.Since(searchStart).Seconds()

	if *verbose {
		fmt.Fprintf(os.Stderr, "stats: %+v\n", stats.Map())
	}
	if *debug {
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(stats))
	}

	if !sat {
		fmt.Println(solver.FormatUNSATRecord(path, elapsed))
		return 0
	}
	fmt.Println(solver.FormatSATRecord(path, elapsed, sol))
	return 0
}
