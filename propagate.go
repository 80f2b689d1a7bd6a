package solver

// propagate drains the Unit Queue to a fixed point. It returns true on
// success (queue empty, no conflict) and false the moment a conflict is
// detected, at which point the caller must treat the node as UNSAT
// without consulting the Instance Store further: its state is left
// partially updated, since a conflict short-circuits and the caller
// backtracks via Restore rather than unwinding in place.
//
// The queue is drained LIFO: any order is sound, but LIFO keeps test
// fixtures deterministic under a fixed heuristic seed.
func (ins *Instance) propagate() bool {
	for {
		p, ok := ins.popUnit()
		if !ok {
			return true
		}
		ins.propCount++

		// Step A: clauses containing p are now satisfied.
		if s, ok := ins.occIndex[p]; ok {
			for _, id := range s.Slice() {
				for _, l := range ins.clauses[id].lits {
					if l != p {
						ins.occIndexRemove(l, id)
					}
				}
				ins.active.Remove(id)
			}
			delete(ins.occIndex, p)
		}

		// Step B: clauses containing -p lose that literal.
		notP := p.Complement()
		if s, ok := ins.occIndex[notP]; ok {
			for _, id := range s.Slice() {
				cls := ins.clauses[id].lits
				newLits := cls[:0:0]
				for _, l := range cls {
					if l != notP {
						newLits = append(newLits, l)
					}
				}
				switch len(newLits) {
				case 0:
					return false // conflict: empty clause
				case 1:
					q := newLits[0]
					if ins.assign(q) {
						return false // conflict: q already bound the other way
					}
					ins.active.Remove(id)
					ins.occIndexRemove(q, id)
				default:
					ins.clauses[id].lits = newLits
				}
			}
			delete(ins.occIndex, notP)
		}
	}
}
