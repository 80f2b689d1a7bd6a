package solver

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestRunHeuristicPortfolioAgreesWithSingleEngine(t *testing.T) {
	for _, tt := range loadFixtures(t) {
		res, err := RunHeuristicPortfolio(context.Background(), hclog.NewNullLogger(), tt.problem, 5)
		if err != nil {
			t.Fatalf("%s: %s", tt.name, err)
		}
		if res.Sat != tt.sat {
			t.Fatalf("%s: heuristic portfolio returned sat=%v, want %v", tt.name, res.Sat, tt.sat)
		}
		if res.Sat && !Check(tt.problem, res.Solution.Values) {
			t.Fatalf("%s: winning worker's solution does not satisfy every clause", tt.name)
		}
	}
}

func TestRunHeuristicPortfolioEightWorkers(t *testing.T) {
	problem := [][]int{{1, 2}, {-1, 3}, {-2, -3, 4}, {-4}}
	res, err := RunHeuristicPortfolio(context.Background(), hclog.NewNullLogger(), problem, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Sat {
		t.Fatal("expected this instance to be satisfiable")
	}
}

func TestHeuristicLineupRepeatsRandDLISPastFive(t *testing.T) {
	lineup := heuristicLineup(8, 1)
	wantNames := []string{"DLIS", "DLCS", "RandDLIS", "RandDLCS", "Hybrid", "RandDLIS", "RandDLIS", "RandDLIS"}
	for i, want := range wantNames {
		if got := lineup[i].Name(); got != want {
			t.Fatalf("lineup[%d] = %s, want %s", i, got, want)
		}
	}
}

func TestRunAssignmentPortfolioAgreesWithSingleEngine(t *testing.T) {
	for _, tt := range loadFixtures(t) {
		res, err := RunAssignmentPortfolio(context.Background(), hclog.NewNullLogger(), tt.problem)
		if err != nil {
			t.Fatalf("%s: %s", tt.name, err)
		}
		if res.Sat != tt.sat {
			t.Fatalf("%s: assignment portfolio returned sat=%v, want %v", tt.name, res.Sat, tt.sat)
		}
		if res.Sat && !Check(tt.problem, res.Solution.Values) {
			t.Fatalf("%s: winning worker's solution does not satisfy every clause", tt.name)
		}
	}
}

func TestAllCubesCoversEveryCorner(t *testing.T) {
	cubes := allCubes()
	if len(cubes) != 8 {
		t.Fatalf("expected 8 cube corners, got %d", len(cubes))
	}
	seen := make(map[cube]bool)
	for _, c := range cubes {
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct corners, got %d", len(seen))
	}
}
