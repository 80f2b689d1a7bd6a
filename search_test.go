package solver

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func allHeuristics() []Heuristic {
	return []Heuristic{
		NewDLIS(),
		NewDLCS(),
		NewRandDLIS(1),
		NewRandDLCS(2),
		NewHybrid(3),
	}
}

type fixtureTest struct {
	name    string
	problem [][]int
	sat     bool
}

func loadFixtures(tb testing.TB) []fixtureTest {
	filenames, err := filepath.Glob("testdata/*.cnf")
	if err != nil {
		tb.Fatal(err)
	}
	var tests []fixtureTest
	for _, filename := range filenames {
		f, err := os.Open(filename)
		if err != nil {
			tb.Fatal(err)
		}
		problem, err := ParseDIMACS(f)
		f.Close()
		if err != nil {
			tb.Fatalf("bad fixture %s: %s", filename, err)
		}
		name := filepath.Base(filename)
		switch {
		case strings.HasSuffix(filename, ".sat.cnf"):
			tests = append(tests, fixtureTest{name, problem, true})
		case strings.HasSuffix(filename, ".unsat.cnf"):
			tests = append(tests, fixtureTest{name, problem, false})
		default:
			tb.Fatalf("bad testdata CNF filename: %q", filename)
		}
	}
	return tests
}

// TestFixtures exercises every end-to-end scenario fixture under every
// heuristic: each scenario must reach the correct verdict regardless of
// which heuristic drives the search.
func TestFixtures(t *testing.T) {
	for _, tt := range loadFixtures(t) {
		for _, h := range allHeuristics() {
			t.Run(tt.name+"/"+h.Name(), func(t *testing.T) {
				sol, _, sat := Solve(tt.problem, h)
				if tt.sat {
					if !sat {
						t.Fatalf("got UNSAT; want SAT")
					}
					if !Check(tt.problem, sol.Values) {
						t.Fatalf("solution %v does not satisfy every clause", sol.Values)
					}
				} else if sat {
					t.Fatalf("got SAT with %v; want UNSAT", sol.Values)
				}
			})
		}
	}
}

func TestScenario2Disagreement(t *testing.T) {
	problem := [][]int{{1, 2}, {-1, -2}}
	for _, h := range allHeuristics() {
		sol, _, sat := Solve(problem, h)
		if !sat {
			t.Fatalf("%s: got UNSAT; want SAT", h.Name())
		}
		if sol.Values[1] == sol.Values[2] {
			t.Fatalf("%s: expected disagreement on vars 1 and 2, got %v", h.Name(), sol.Values)
		}
	}
}

func TestBoundaryEmptyFormula(t *testing.T) {
	sol, _, sat := Solve(nil, NewDLIS())
	if !sat {
		t.Fatal("empty formula should be SAT")
	}
	if len(sol.Vars) != 0 {
		t.Fatalf("expected an empty assignment, got %v", sol.Vars)
	}
}

func TestBoundaryEmptyClause(t *testing.T) {
	problem := [][]int{{}}
	_, _, sat := Solve(problem, NewDLIS())
	if sat {
		t.Fatal("a formula containing the empty clause must be UNSAT")
	}
}

func TestBoundarySingleUnitClause(t *testing.T) {
	problem := [][]int{{1}}
	sol, _, sat := Solve(problem, NewDLIS())
	if !sat {
		t.Fatal("expected SAT")
	}
	if !sol.Values[1] {
		t.Fatal("expected var 1 to be true")
	}
}

func TestBoundaryContradictoryUnitClauses(t *testing.T) {
	problem := [][]int{{1}, {-1}}
	_, _, sat := Solve(problem, NewDLIS())
	if sat {
		t.Fatal("contradictory unit clauses must be UNSAT")
	}
}

// TestPortfolioAgreement checks that every heuristic reaches the same
// verdict on a fixed formula.
func TestPortfolioAgreement(t *testing.T) {
	for _, tt := range loadFixtures(t) {
		var first bool
		for i, h := range allHeuristics() {
			_, _, sat := Solve(tt.problem, h)
			if i == 0 {
				first = sat
				continue
			}
			if sat != first {
				t.Fatalf("%s: %s disagreed with %s (%v vs %v)", tt.name, h.Name(), allHeuristics()[0].Name(), sat, first)
			}
		}
	}
}

// TestPLEIdempotent checks that a second PLE pass at fixed point is a
// no-op.
func TestPLEIdempotent(t *testing.T) {
	ins := NewInstanceFromClauses([][]int{{1, 2}, {-1, 2}, {3}})
	ins.pureLiteralEliminate()
	before := copyAssignment(ins.assignment)
	beforeActive := ins.active.Slice()

	ins.pureLiteralEliminate()
	after := ins.assignment
	if len(before) != len(after) {
		t.Fatalf("second PLE pass changed the assignment: %v -> %v", before, after)
	}
	for v, val := range before {
		if after[v] != val {
			t.Fatalf("second PLE pass changed var %d: %v -> %v", v, val, after[v])
		}
	}
	if len(beforeActive) != ins.active.Size() {
		t.Fatalf("second PLE pass changed the active set size")
	}
}

func TestRandomized(t *testing.T) {
	for _, tt := range []struct {
		numVars    int
		numClauses int
		numSeeds   int
	}{
		{2, 2, 10},
		{3, 10, 50},
		{5, 10, 200},
	} {
		for seed := 0; seed < tt.numSeeds; seed++ {
			problem := makeRandomSat(int64(seed), tt.numVars, tt.numClauses)
			sol, _, sat := Solve(problem, NewDLIS())
			if !sat {
				t.Fatalf("[vars=%d,clauses=%d,seed=%d] got UNSAT for a constructed-SAT instance", tt.numVars, tt.numClauses, seed)
			}
			if !Check(problem, sol.Values) {
				t.Fatalf("[vars=%d,clauses=%d,seed=%d] solution %v does not satisfy every clause", tt.numVars, tt.numClauses, seed, sol.Values)
			}
		}
	}
}

// makeRandomSat builds a satisfiable-by-construction CNF problem: a
// hidden assignment is chosen first, and every clause is seeded with at
// least one literal consistent with it.
func makeRandomSat(seed int64, numVars, numClauses int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	assignment := make([]bool, numVars)
	for v := range assignment {
		assignment[v] = rng.Intn(2) == 1
	}
	vars := make([]int, numVars)
	for v := range vars {
		vars[v] = v
	}
	problem := make([][]int, numClauses)
	for i := range problem {
		rng.Shuffle(len(vars), func(a, b int) {
			vars[a], vars[b] = vars[b], vars[a]
		})
		problem[i] = make([]int, rng.Intn(numVars)+1)
		fixed := rng.Intn(len(problem[i]))
		for j := range problem[i] {
			v := vars[j] + 1
			if j == fixed {
				if !assignment[v-1] {
					v = -v
				}
			} else if rng.Intn(2) == 1 {
				v = -v
			}
			problem[i][j] = v
		}
	}
	return problem
}
