package solver

import (
	"math/rand"
	"sort"
)

// Heuristic is the Heuristic Oracle's interface: given the
// current Occurrence Index, choose a branch literal. Every implementation
// must return a non-zero Literal whenever the Active Set is non-empty;
// returning the zero Literal in that situation is a defect, and every
// Select below panics rather than silently doing so.
type Heuristic interface {
	Name() string
	Select(ins *Instance) Literal
}

func sortedOccKeys(ins *Instance) []Literal {
	keys := make([]Literal, 0, len(ins.occIndex))
	for l := range ins.occIndex {
		keys = append(keys, l)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func candidateVars(ins *Instance) []int {
	seen := make(map[int]bool)
	var vars []int
	for l := range ins.occIndex {
		v := l.Variable()
		if !seen[v] {
			seen[v] = true
			vars = append(vars, v)
		}
	}
	sort.Ints(vars)
	return vars
}

// dlis implements Dynamic Largest Individual Sum: branch on the literal
// appearing in the most active clauses. Ties keep the first literal
// encountered; since keys are scanned in ascending order, that means the
// smallest packed Literal value among the tied candidates.
type dlis struct{}

func NewDLIS() Heuristic { return dlis{} }

func (dlis) Name() string { return "DLIS" }

func (dlis) Select(ins *Instance) Literal {
	best := Literal(0)
	bestCount := -1
	for _, l := range sortedOccKeys(ins) {
		if c := ins.occCount(l); c > bestCount {
			bestCount, best = c, l
		}
	}
	if best == 0 {
		panic("solver: DLIS asked to branch with an empty Occurrence Index")
	}
	return best
}

// dlcs implements Dynamic Largest Combined Sum: branch on the variable
// whose two polarities together occur most; within that variable, prefer
// the polarity with the larger individual count (ties favor positive).
type dlcs struct{}

func NewDLCS() Heuristic { return dlcs{} }

func (dlcs) Name() string { return "DLCS" }

func (dlcs) Select(ins *Instance) Literal {
	best := Literal(0)
	bestSum := -1
	for _, v := range candidateVars(ins) {
		pos := ins.occCount(newLiteral(v))
		neg := ins.occCount(newLiteral(-v))
		if sum := pos + neg; sum > bestSum {
			bestSum = sum
			if pos >= neg {
				best = newLiteral(v)
			} else {
				best = newLiteral(-v)
			}
		}
	}
	if best == 0 {
		panic("solver: DLCS asked to branch with no candidate variables")
	}
	return best
}

// topEntry is one slot of the top-3 scan shared by RandDLIS and RandDLCS.
type topEntry struct {
	lit   Literal
	count int
}

// insertTop inserts (lit, count) into top using a strict greater-than
// comparison (not >=), so earlier-seen candidates survive ties.
func insertTop(top []topEntry, lit Literal, count int) {
	for i := range top {
		if count > top[i].count {
			copy(top[i+1:], top[i:len(top)-1])
			top[i] = topEntry{lit: lit, count: count}
			return
		}
	}
}

func topKByOcc(ins *Instance, k int) []topEntry {
	top := make([]topEntry, k)
	for _, l := range sortedOccKeys(ins) {
		insertTop(top, l, ins.occCount(l))
	}
	return top
}

func topKByCombined(ins *Instance, k int) []topEntry {
	top := make([]topEntry, k)
	for _, v := range candidateVars(ins) {
		pos := ins.occCount(newLiteral(v))
		neg := ins.occCount(newLiteral(-v))
		lit := newLiteral(v)
		if neg > pos {
			lit = newLiteral(-v)
		}
		insertTop(top, lit, pos+neg)
	}
	return top
}

func pickNonZero(rng *rand.Rand, top []topEntry) Literal {
	valid := top[:0:0]
	for _, e := range top {
		if e.lit != 0 {
			valid = append(valid, e)
		}
	}
	if len(valid) == 0 {
		panic("solver: randomized heuristic asked to branch with no candidates")
	}
	return valid[rng.Intn(len(valid))].lit
}

// randDLIS is RandDLIS: the top-3 DLIS scheme, one of the three picked
// uniformly at random.
type randDLIS struct{ rng *rand.Rand }

// NewRandDLIS returns a RandDLIS heuristic seeded independently of any
// other heuristic instance, so two workers running RandDLIS concurrently
// never share an RNG stream.
func NewRandDLIS(seed int64) Heuristic {
	return &randDLIS{rng: rand.New(rand.NewSource(seed))}
}

func (*randDLIS) Name() string { return "RandDLIS" }

func (h *randDLIS) Select(ins *Instance) Literal {
	return pickNonZero(h.rng, topKByOcc(ins, 3))
}

// randDLCS is RandDLCS: the top-3 DLCS scheme, one of the three picked
// uniformly at random.
type randDLCS struct{ rng *rand.Rand }

func NewRandDLCS(seed int64) Heuristic {
	return &randDLCS{rng: rand.New(rand.NewSource(seed))}
}

func (*randDLCS) Name() string { return "RandDLCS" }

func (h *randDLCS) Select(ins *Instance) Literal {
	return pickNonZero(h.rng, topKByCombined(ins, 3))
}

// hybrid flips a fair coin, independently per call, to decide between
// DLIS and DLCS.
type hybrid struct {
	rng        *rand.Rand
	dlis, dlcs Heuristic
}

func NewHybrid(seed int64) Heuristic {
	return &hybrid{rng: rand.New(rand.NewSource(seed)), dlis: NewDLIS(), dlcs: NewDLCS()}
}

func (*hybrid) Name() string { return "Hybrid" }

func (h *hybrid) Select(ins *Instance) Literal {
	if h.rng.Float64() < 0.5 {
		return h.dlis.Select(ins)
	}
	return h.dlcs.Select(ins)
}
