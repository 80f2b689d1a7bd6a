// Command dpll-portfolio runs the classical DPLL solver, alone or as a
// parallel portfolio, against a DIMACS CNF file.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

func main() {
	c := cli.NewCLI("dpll-portfolio", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"solve":     func() (cli.Command, error) { return &solveCommand{}, nil },
		"portfolio": func() (cli.Command, error) { return &portfolioCommand{}, nil },
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitStatus)
}
