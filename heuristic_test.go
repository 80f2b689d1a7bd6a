package solver

import "testing"

func TestDLISPicksMostFrequentLiteral(t *testing.T) {
	// Literal 2 (positive) occurs in three clauses; everything else occurs
	// in at most two.
	ins := NewInstanceFromClauses([][]int{{1, 2}, {2, 3}, {2, -3}, {1, -2}})
	got := NewDLIS().Select(ins)
	want := newLiteral(2)
	if got != want {
		t.Fatalf("DLIS picked %v, want %v", got, want)
	}
}

func TestDLCSPicksMostFrequentVariableAndPrefersLargerPolarity(t *testing.T) {
	// Variable 2 occurs 3 times total (twice positive, once negative):
	// the largest combined sum, and positive has the larger individual
	// count, so DLCS should pick +2.
	ins := NewInstanceFromClauses([][]int{{1, 2}, {2, 3}, {1, -2}})
	got := NewDLCS().Select(ins)
	want := newLiteral(2)
	if got != want {
		t.Fatalf("DLCS picked %v, want %v", got, want)
	}
}

func TestDLISPanicsOnEmptyOccurrenceIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected DLIS to panic when given no candidates")
		}
	}()
	ins := NewInstance()
	NewDLIS().Select(ins)
}

func TestRandDLISReturnsOneOfTopThree(t *testing.T) {
	ins := NewInstanceFromClauses([][]int{{1, 2}, {2, 3}, {2, -3}, {1, -2}, {4, -5}})
	top := topKByOcc(ins, 3)
	allowed := make(map[Literal]bool)
	for _, e := range top {
		if e.lit != 0 {
			allowed[e.lit] = true
		}
	}
	h := NewRandDLIS(7)
	for i := 0; i < 20; i++ {
		got := h.Select(ins)
		if !allowed[got] {
			t.Fatalf("RandDLIS returned %v, not among the top-3 candidates %v", got, top)
		}
	}
}

func TestInsertTopKeepsEarliestOnTie(t *testing.T) {
	var top []topEntry = make([]topEntry, 2)
	insertTop(top, newLiteral(1), 5)
	insertTop(top, newLiteral(2), 5) // same count, arrives later: must lose the tie
	if top[0].lit != newLiteral(1) {
		t.Fatalf("expected literal 1 to win the tie, got %v", top[0].lit)
	}
}

func TestHybridUsesOnlyDLISOrDLCS(t *testing.T) {
	ins := NewInstanceFromClauses([][]int{{1, 2}, {2, 3}, {2, -3}, {1, -2}})
	dlisPick := NewDLIS().Select(ins)
	dlcsPick := NewDLCS().Select(ins)
	h := NewHybrid(11)
	for i := 0; i < 20; i++ {
		got := h.Select(ins)
		if got != dlisPick && got != dlcsPick {
			t.Fatalf("Hybrid returned %v, neither the DLIS pick %v nor the DLCS pick %v", got, dlisPick, dlcsPick)
		}
	}
}
