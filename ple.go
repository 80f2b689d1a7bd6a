package solver

import "sort"

// pureLiteralEliminate iterates pure-literal elimination to a fixed
// point. A literal is pure when it keys the Occurrence Index but its
// complement does not; every clause it satisfies is dropped without
// being enqueued for propagation, since there is nothing left to
// propagate, the clauses are simply gone.
//
// Purity is judged from Occurrence Index keys alone, so a variable whose
// both polarities are absent (never assigned, never occurring) is not
// pure in either direction and is left unassigned. This is intentional:
// such a variable needs no assignment for the formula to be satisfied.
func (ins *Instance) pureLiteralEliminate() {
	for {
		var pure []Literal
		for l := range ins.occIndex {
			if _, hasComplement := ins.occIndex[l.Complement()]; !hasComplement {
				pure = append(pure, l)
			}
		}
		if len(pure) == 0 {
			return
		}
		sort.Slice(pure, func(i, j int) bool { return pure[i] < pure[j] })

		for _, l := range pure {
			s, ok := ins.occIndex[l]
			if !ok {
				// Already consumed by an earlier pure literal this pass.
				continue
			}
			ins.assignment[l.Variable()] = !l.Negated()
			ins.pleCount++
			for _, id := range s.Slice() {
				for _, m := range ins.clauses[id].lits {
					ins.occIndexRemove(m, id)
				}
				ins.active.Remove(id)
			}
			delete(ins.occIndex, l)
		}
	}
}
