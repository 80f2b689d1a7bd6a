package main

import (
	"context"
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

// portfolioCommand runs the parallel portfolio driver, Mode A by default
// or Mode B with -assign.
type portfolioCommand struct{}

func (*portfolioCommand) Help() string {
	return strings.TrimSpace(`
Usage: dpll-portfolio portfolio [-assign] [-workers N] [-v] [-debug] <cnf-file>

  Runs the Portfolio Driver against a DIMACS CNF file. By default this is
  Mode A: a heuristic portfolio racing DLIS, DLCS, RandDLIS, RandDLCS, and
  Hybrid workers. With -assign, this is Mode B: an assignment portfolio of
  eight workers, one per corner of the cube formed by three high-degree
  literals.
`)
}

func (*portfolioCommand) Synopsis() string { return "Solve a CNF instance with the portfolio driver" }

func (c *portfolioCommand) Run(args []string) int {
	fs := flag.NewFlagSet("portfolio", flag.ContinueOnError)
	assign := fs.Bool("assign", false, "run Mode B (assignment portfolio) instead of Mode A")
	workers := fs.Int("workers", 5, "worker count for Mode A (5 or 8)")
	verbose := fs.Bool("v", false, "print solver statistics to stderr")
	debug := fs.Bool("debug", false, "pretty-print the winning worker's result to stderr")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "portfolio: expected exactly one CNF file argument")
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
		fmt.Fprintf(os.Stderr, "portfolio: %s\n", err)
		return 1
	}
	fmt.Println(solver.FormatParseRecord(filepath.Base(path), time.Since(start).Seconds()))

	searchStart := time.Now()
	var best *solver.WorkerResult
	if *assign {
		best, err = solver.RunAssignmentPortfolio(context.Background(), logger, problem)
	} else {
		best, err = solver.RunHeuristicPortfolio(context.Background(), logger, problem, *workers)
	}
	elapsed := time.Since(searchStart).Seconds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "portfolio: %s\n", err)
		return 1
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "winning worker: %s stats: %+v\n", best.Label, best.Stats.Map())
	}
	if *debug {
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(best))
	}

	if !best.Sat {
		fmt.Println(solver.FormatUNSATRecord(path, elapsed))
		return 0
	}
	fmt.Println(solver.FormatSATRecord(path, elapsed, best.Solution))
	return 0
}
