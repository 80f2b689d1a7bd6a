package solver

import (
	"fmt"
	"strings"
)

// Stats is the Search Engine's informational counters. They never affect
// solver behavior; wall-clock measurement and other instrumentation stay
// firmly in the external collaborator's hands, but they're worth returning
// alongside a solution as a map[string]interface{} for a verbose CLI dump.
type Stats struct {
	Decisions      int64
	Conflicts      int64
	Propagations   int64
	PLEAssignments int64
}

// Map renders Stats as a map[string]interface{} suitable for a verbose
// CLI dump.
func (st Stats) Map() map[string]interface{} {
	return map[string]interface{}{
		"num decisions":       st.Decisions,
		"num conflicts":       st.Conflicts,
		"num propagations":    st.Propagations,
		"num ple assignments": st.PLEAssignments,
	}
}

// Searcher runs the DPLL recursion over one Instance Store using one
// Heuristic. A Searcher is single-use and not safe for concurrent calls
// to Solve; the Portfolio Driver gives each worker its own Instance and
// its own Searcher.
type Searcher struct {
	ins   *Instance
	h     Heuristic
	stats Stats
}

// NewSearcher builds a Searcher over ins using heuristic h.
func NewSearcher(ins *Instance, h Heuristic) *Searcher {
	return &Searcher{ins: ins, h: h}
}

// Stats returns the counters accumulated so far. Propagations and
// PLEAssignments live on the Instance itself, since both Snapshot and
// Restore leave them untouched across backtracks: they count total work
// done, not state to roll back.
func (s *Searcher) Stats() Stats {
	st := s.stats
	st.Propagations = s.ins.propCount
	st.PLEAssignments = s.ins.pleCount
	return st
}

// Solve runs the DPLL recursion to completion and reports satisfiability.
func (s *Searcher) Solve() bool {
	if s.ins.unsat {
		// Proved false at construction time (empty clause, or two
		// contradictory unit clauses): propagate() would never see this,
		// since it only drains what made it into the Unit Queue.
		s.stats.Conflicts++
		recordConflict()
		return false
	}
	return s.solve()
}

// solve implements the DPLL recursion:
//
//	solve():
//	    if unit_propagate() conflicted: return UNSAT
//	    pure_literal_eliminate()
//	    if Active Set empty: return SAT
//	    l <- Heuristic Oracle -> branch literal (l != 0)
//	    frame <- snapshot()
//	    assign(l); if solve() == SAT: return SAT
//	    restore(frame)
//	    assign(-l); return solve()
func (s *Searcher) solve() bool {
	if !s.ins.propagate() {
		s.stats.Conflicts++
		recordConflict()
		return false
	}

	s.ins.pureLiteralEliminate()

	if s.ins.ActiveEmpty() {
		return true
	}

	lit := s.h.Select(s.ins)
	frame := s.ins.Snapshot()
	s.stats.Decisions++
	recordDecision()

	s.ins.assign(lit)
	if s.solve() {
		return true
	}

	s.ins.Restore(frame)
	s.ins.assign(lit.Complement())
	return s.solve()
}

// Solution is the variable -> truth-value map produced by a successful
// Solve, in the Partial Assignment's iteration order (first-seen, not
// sorted).
type Solution struct {
	Vars   []int
	Values map[int]bool
}

// Pairs renders the solution as one signed int per variable (positive for
// true, negative for false), in Vars order: a convenience form for
// callers working with the same int encoding ParseDIMACS/WriteDIMACS use.
func (sol *Solution) Pairs() []int {
	out := make([]int, 0, len(sol.Vars))
	for _, v := range sol.Vars {
		if sol.Values[v] {
			out = append(out, v)
		} else {
			out = append(out, -v)
		}
	}
	return out
}

// Record renders the solution as "<var> <true|false> <var> ...", the
// exact Solution field of the SAT output record, one pair per variable
// in Vars order.
func (sol *Solution) Record() string {
	var b strings.Builder
	for i, v := range sol.Vars {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d %t", v, sol.Values[v])
	}
	return b.String()
}

// Solve is the library's simplest entry point: build an Instance from a
// parsed CNF problem, run one Searcher with heuristic h, and return the
// solution if satisfiable.
func Solve(problem [][]int, h Heuristic) (sol *Solution, stats Stats, sat bool) {
	ins := NewInstanceFromClauses(problem)
	s := NewSearcher(ins, h)
	if !s.Solve() {
		return nil, s.Stats(), false
	}
	vars := make([]int, len(ins.varOrder))
	copy(vars, ins.varOrder) // first-seen order, the Partial Assignment's iteration order
	values := make(map[int]bool, len(vars))
	for _, v := range vars {
		values[v] = ins.assignment[v] // a variable never forced or branched on defaults false
	}
	return &Solution{Vars: vars, Values: values}, s.Stats(), true
}

// Check re-verifies a Solution against the original clauses, independent
// of however it was produced. An unassigned variable is treated as
// false, matching Instance's own assignment-lookup default.
func Check(problem [][]int, values map[int]bool) bool {
clauseLoop:
	for _, clause := range problem {
		for _, n := range clause {
			v := n
			want := true
			if v < 0 {
				v = -v
				want = false
			}
			if values[v] == want {
				continue clauseLoop
			}
		}
		return false
	}
	return true
}
