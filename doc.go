// Package solver implements a classical DPLL satisfiability solver and a
// parallel portfolio driver that races several branching heuristics (and,
// in its assignment-portfolio mode, several seed assignments) across
// goroutines to decide a CNF formula.
//
// The engine is deliberately not CDCL: there is no clause learning, no
// watched literals, and no restarts. Backtracking is chronological, and
// undone by restoring a whole-structure snapshot taken before each
// decision, because unit propagation mutates clause literal lists in
// place (see Instance.Snapshot).
//
// Parsing DIMACS CNF text, running the CLI, and measuring wall-clock time
// are external concerns; see ParseDIMACS and cmd/dpll-portfolio.
package solver
