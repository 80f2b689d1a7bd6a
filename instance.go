package solver

import (
	"github.com/hashicorp/go-set/v3"
)

// clauseRecord is one entry of the Clause Table. Its literal slice is
// mutated in place by unit propagation (see propagate.go step B), which is
// exactly why Instance.Snapshot must deep-copy it rather than merely
// copying the containing slice.
type clauseRecord struct {
	lits []Literal
}

// Instance is the Instance Store: the mutable CNF state shared by the
// Search Engine and the Heuristic Oracle. Every exported method keeps
// the Clause Table, Occurrence Index, Active Set, and Partial Assignment
// mutually consistent at the call boundary (see package doc).
type Instance struct {
	varOrder []int // variables in first-seen order; also the Partial Assignment's iteration order
	varSeen  map[int]bool

	assignment map[int]bool // Partial Assignment: variable -> value
	occIndex   map[Literal]*set.Set[int]
	active     *set.Set[int]
	clauses    []clauseRecord
	unitQueue  []Literal // LIFO
	propCount  int64     // cumulative units popped across the whole search, for Stats
	pleCount   int64     // cumulative pure-literal assignments, for Stats

	// unsat is set the moment construction proves the formula trivially
	// false: an empty clause was added, or two unit clauses assigned a
	// variable both ways. Neither case is reachable through propagation
	// (propagation only runs once solve() starts), so it can't be folded
	// into the conflict return value of propagate(); solve() checks it
	// directly instead.
	unsat bool
}

// NewInstance returns an empty Instance Store.
func NewInstance() *Instance {
	return &Instance{
		varSeen:    make(map[int]bool),
		assignment: make(map[int]bool),
		occIndex:   make(map[Literal]*set.Set[int]),
		active:     set.New[int](0),
	}
}

// NewInstanceFromClauses builds a fresh Instance Store from a CNF problem,
// the representation ParseDIMACS returns. This is the "parse afresh per
// worker" step of the Portfolio Driver, done without re-tokenizing DIMACS
// text: each worker gets its own deep-copied Clause Table, Occurrence
// Index, and Active Set, so no two workers ever share a clause database.
func NewInstanceFromClauses(problem [][]int) *Instance {
	ins := NewInstance()
	for _, clause := range problem {
		ins.AddClause(clause)
	}
	return ins
}

// AddVariable records |lit| as a known variable. Idempotent.
func (ins *Instance) AddVariable(lit int) {
	v := lit
	if v < 0 {
		v = -v
	}
	if v == 0 {
		panic("solver: 0 is not a valid variable")
	}
	if ins.varSeen[v] {
		return
	}
	ins.varSeen[v] = true
	ins.varOrder = append(ins.varOrder, v)
}

// AddClause installs a clause: unit clauses are forced directly,
// tautologies are discarded, duplicate literals within the clause are
// collapsed, and an empty clause marks the instance permanently
// unsatisfiable.
func (ins *Instance) AddClause(raw []int) {
	for _, n := range raw {
		ins.AddVariable(n)
	}

	seen := make(map[int]bool, len(raw))
	var lits []int
	for _, n := range raw {
		if seen[n] {
			continue
		}
		seen[n] = true
		lits = append(lits, n)
	}

	for _, n := range lits {
		if seen[-n] && -n != n {
			return // tautological clause: discard, never stored
		}
	}

	switch len(lits) {
	case 0:
		ins.unsat = true
		return
	case 1:
		ins.Assign(newLiteral(lits[0]))
		return
	}

	ls := make([]Literal, len(lits))
	for i, n := range lits {
		ls[i] = newLiteral(n)
	}
	id := len(ins.clauses)
	ins.clauses = append(ins.clauses, clauseRecord{lits: ls})
	ins.active.Insert(id)
	for _, l := range ls {
		ins.occIndexInsert(l, id)
	}
}

// Assign binds lit's variable to lit's polarity and enqueues it for
// propagation, if the variable is currently unassigned. A consistent
// repeat assignment is a no-op. An inconsistent one, the variable
// already bound the other way, is reachable only from two contradictory
// unit clauses in the input, since the Search Engine itself never calls
// Assign with a contradictory value; it marks the instance permanently
// unsatisfiable, the same terminal state as an empty input clause. Use
// this form from outside a propagate() call (clause loading, Portfolio
// Driver pre-seeding); inside propagate(), use the unexported assign,
// which reports the conflict to the caller instead of latching it
// globally, since a conflict found mid-search is resolved by
// backtracking, not by poisoning the whole Instance.
func (ins *Instance) Assign(lit Literal) {
	if ins.assign(lit) {
		ins.unsat = true
	}
}

// assign is Assign's conflict-reporting core.
func (ins *Instance) assign(lit Literal) (conflict bool) {
	v := lit.Variable()
	val := !lit.Negated()
	if cur, ok := ins.assignment[v]; ok {
		return cur != val
	}
	ins.assignment[v] = val
	ins.unitQueue = append(ins.unitQueue, lit)
	return false
}

// ActiveEmpty reports whether the Active Set is empty: no clause is left
// unsatisfied, the Search Engine's success signal.
func (ins *Instance) ActiveEmpty() bool { return ins.active.Empty() }

func (ins *Instance) popUnit() (Literal, bool) {
	n := len(ins.unitQueue)
	if n == 0 {
		return 0, false
	}
	l := ins.unitQueue[n-1]
	ins.unitQueue = ins.unitQueue[:n-1]
	return l, true
}

func (ins *Instance) occIndexInsert(l Literal, id int) {
	s, ok := ins.occIndex[l]
	if !ok {
		s = set.New[int](1)
		ins.occIndex[l] = s
	}
	s.Insert(id)
}

// occIndexRemove drops id from l's occurrence entry, and the entry
// itself once it empties out: a literal absent from the index has no
// active occurrence, which is load-bearing for pure-literal detection.
func (ins *Instance) occIndexRemove(l Literal, id int) {
	s, ok := ins.occIndex[l]
	if !ok {
		return
	}
	s.Remove(id)
	if s.Empty() {
		delete(ins.occIndex, l)
	}
}

func (ins *Instance) occCount(l Literal) int {
	s, ok := ins.occIndex[l]
	if !ok {
		return 0
	}
	return s.Size()
}

// Frame is a restore point captured by Snapshot. The snapshot holds the
// PRIOR state; the Instance keeps working on a fresh duplicate from the
// moment Snapshot returns.
type Frame struct {
	assignment map[int]bool
	occIndex   map[Literal]*set.Set[int]
	active     *set.Set[int]
	clauses    []clauseRecord
}

// Snapshot captures a restore point and switches the Instance over to a
// working duplicate of its own state. Clause literal lists participate
// because unit propagation mutates them in place; that's the reason this
// solver copies state on every decision instead of keeping a trail.
func (ins *Instance) Snapshot() *Frame {
	f := &Frame{
		assignment: ins.assignment,
		occIndex:   ins.occIndex,
		active:     ins.active,
		clauses:    ins.clauses,
	}
	ins.assignment = copyAssignment(ins.assignment)
	ins.occIndex = copyOccIndex(ins.occIndex)
	ins.active = ins.active.Copy()
	ins.clauses = copyClauses(ins.clauses)
	return f
}

// Restore atomically replaces the working state with f's contents and
// clears the Unit Queue (always empty at snapshot time).
func (ins *Instance) Restore(f *Frame) {
	ins.assignment = f.assignment
	ins.occIndex = f.occIndex
	ins.active = f.active
	ins.clauses = f.clauses
	ins.unitQueue = ins.unitQueue[:0]
}

func copyAssignment(a map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func copyOccIndex(idx map[Literal]*set.Set[int]) map[Literal]*set.Set[int] {
	out := make(map[Literal]*set.Set[int], len(idx))
	for l, s := range idx {
		out[l] = s.Copy()
	}
	return out
}

func copyClauses(cs []clauseRecord) []clauseRecord {
	out := make([]clauseRecord, len(cs))
	for i, c := range cs {
		if c.lits == nil {
			continue
		}
		lits := make([]Literal, len(c.lits))
		copy(lits, c.lits)
		out[i] = clauseRecord{lits: lits}
	}
	return out
}
