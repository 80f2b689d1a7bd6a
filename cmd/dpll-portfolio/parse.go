package main

import (
	"fmt"
	"os"

	solver "github.com/quietvale/dpll-portfolio"
)

func parseFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	problem, err := solver.ParseDIMACS(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return problem, nil
}
