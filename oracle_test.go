package solver

import (
	"math/rand"
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// oracleSolve runs a CDCL solver as an independent trusted oracle, used
// only here to cross-check the from-scratch DPLL engine's verdict. This
// import never appears outside a _test.go file: the package itself stays
// classical DPLL, no watched literals, no clause learning.
func oracleSolve(problem [][]int) bool {
	g := gini.New()
	for _, clause := range problem {
		for _, n := range clause {
			g.Add(z.Dimacs2Lit(n))
		}
		g.Add(z.LitNull)
	}
	return g.Solve() == 1
}

func TestOracleAgreementOnFixtures(t *testing.T) {
	for _, tt := range loadFixtures(t) {
		want := oracleSolve(tt.problem)
		if want != tt.sat {
			t.Fatalf("%s: fixture's own label (%v) disagrees with the gini oracle (%v): bad fixture", tt.name, tt.sat, want)
		}
		_, _, got := Solve(tt.problem, NewDLIS())
		if got != want {
			t.Fatalf("%s: DPLL returned sat=%v, oracle says %v", tt.name, got, want)
		}
	}
}

func TestOracleAgreementOnRandomInstances(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 300; i++ {
		numVars := 2 + rng.Intn(5)
		numClauses := 2 + rng.Intn(12)
		problem := make([][]int, numClauses)
		for c := range problem {
			width := 1 + rng.Intn(numVars)
			clause := make([]int, 0, width)
			used := make(map[int]bool, width)
			for len(clause) < width {
				v := 1 + rng.Intn(numVars)
				if used[v] {
					continue
				}
				used[v] = true
				if rng.Intn(2) == 1 {
					v = -v
				}
				clause = append(clause, v)
			}
			problem[c] = clause
		}

		want := oracleSolve(problem)
		for _, h := range allHeuristics() {
			_, _, got := Solve(problem, h)
			if got != want {
				t.Fatalf("[seed=99,iter=%d,heuristic=%s] DPLL sat=%v, oracle sat=%v, problem=%v",
					i, h.Name(), got, want, problem)
			}
		}
	}
}
