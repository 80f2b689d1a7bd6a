package solver

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// WorkerResult is one worker's contribution to a portfolio run: either a
// decisive outcome (sat known, solution populated when sat is true) or a
// non-fatal failure (a recovered panic), which counts toward UNSAT unless
// every worker fails the same way.
type WorkerResult struct {
	Label    string
	Sat      bool
	Decisive bool
	Solution *Solution
	Stats    Stats
	err      error
}

// heuristicLineup is the fixed Mode A worker order: DLIS, DLCS, RandDLIS,
// RandDLCS, Hybrid, then RandDLIS again for every worker beyond the base
// five (an 8-worker run). Each constructor call gets its own independent
// seed so two RandDLIS workers never share an RNG stream.
func heuristicLineup(workers int, baseSeed int64) []Heuristic {
	base := []func(seed int64) Heuristic{
		func(int64) Heuristic { return NewDLIS() },
		func(int64) Heuristic { return NewDLCS() },
		NewRandDLIS,
		NewRandDLCS,
		NewHybrid,
	}
	out := make([]Heuristic, workers)
	for i := 0; i < workers; i++ {
		ctor := NewRandDLIS
		if i < len(base) {
			ctor = base[i]
		}
		out[i] = ctor(baseSeed + int64(i))
	}
	return out
}

// runWorker executes one Searcher to completion inside a recovered
// goroutine, converting a panic (the Heuristic Oracle's documented
// zero-literal defect, or anything else) into a non-decisive failed
// result instead of taking down the whole portfolio run.
func runWorker(label string, ins *Instance, h Heuristic) (res WorkerResult) {
	defer func() {
		if r := recover(); r != nil {
			res = WorkerResult{Label: label, err: fmt.Errorf("worker %s panicked: %v", label, r)}
		}
	}()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	s := NewSearcher(ins, h)
	sat := s.Solve()
	res = WorkerResult{Label: label, Sat: sat, Decisive: true, Stats: s.Stats()}
	if sat {
		vars := make([]int, len(ins.varOrder))
		copy(vars, ins.varOrder) // first-seen order, the Partial Assignment's iteration order
		values := make(map[int]bool, len(vars))
		for _, v := range vars {
			values[v] = ins.assignment[v]
		}
		res.Solution = &Solution{Vars: vars, Values: values}
	}
	recordWorkerResult(label, sat)
	return res
}

// collect races workers to a decisive answer: the first SAT short-circuits
// immediately, and UNSAT is returned only once every worker has reported
// in without a SAT result (every worker here solves the identical
// formula under a different heuristic or a different pre-assignment, so
// one UNSAT report doesn't preclude another worker finding a model along a
// branch this one never explored). If every worker fails (panics), the
// aggregated errors are returned so the caller can tell "definitely UNSAT"
// apart from "the portfolio couldn't finish."
func collect(ctx context.Context, results <-chan WorkerResult, total int) (*WorkerResult, error) {
	var unsatCount, failCount int
	var errs error
	for i := 0; i < total; i++ {
		select {
		case r := <-results:
			if r.err != nil {
				failCount++
				errs = multierror.Append(errs, r.err)
				continue
			}
			if r.Sat {
				return &r, nil
			}
			unsatCount++
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if failCount == total {
		return nil, fmt.Errorf("every portfolio worker failed: %w", errs)
	}
	if unsatCount+failCount == total {
		return &WorkerResult{Sat: false, Decisive: true}, nil
	}
	// Unreachable in practice: every branch above accounts for one slot
	// per worker, but guard against a miscount rather than hang the caller.
	return nil, fmt.Errorf("portfolio run produced no decisive result")
}

// RunHeuristicPortfolio is Mode A: workers * heuristics racing over
// independently re-parsed copies of the same formula. workers is typically
// 5 (one per heuristic) or 8 (wrapping back to RandDLIS for the extra
// three).
func RunHeuristicPortfolio(ctx context.Context, logger hclog.Logger, problem [][]int, workers int) (*WorkerResult, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("portfolio").With("mode", "heuristic", "workers", workers)
	logger.Debug("starting heuristic portfolio")

	heuristics := heuristicLineup(workers, 1)
	results := make(chan WorkerResult, workers)
	g, gctx := errgroup.WithContext(context.Background())
	for i := 0; i < workers; i++ {
		i := i
		wlog := logger.Named(fmt.Sprintf("worker-%d", i))
		g.Go(func() error {
			ins := NewInstanceFromClauses(problem)
			res := runWorker(fmt.Sprintf("%s#%d", heuristics[i].Name(), i), ins, heuristics[i])
			wlog.Debug("worker finished", "sat", res.Sat, "decisive", res.Decisive)
			select {
			case results <- res:
			case <-gctx.Done():
			}
			return nil
		})
	}

	// Deliberately does not block on g.Wait(): the Driver returns as soon
	// as collect has a conclusive answer, same as the input contract's
	// "workers run to completion harmlessly" collection policy. The
	// buffered results channel (one slot per worker) means every
	// in-flight worker can still deliver its result without blocking, even
	// after nothing is left to read it.
	best, err := collect(ctx, results, workers)
	if err != nil {
		logger.Error("heuristic portfolio failed", "error", err)
		return nil, err
	}
	logger.Info("heuristic portfolio finished", "sat", best.Sat)
	return best, nil
}

// cube is one corner of the 2^3 assignment cube Mode B splits across
// workers: a fixed sign for each of three high-degree literals.
type cube [3]bool

func allCubes() []cube {
	out := make([]cube, 0, 8)
	for i := 0; i < 8; i++ {
		out = append(out, cube{i&1 != 0, i&2 != 0, i&4 != 0})
	}
	return out
}

// pickCubeVars finds up to three high-degree variables to split the
// search on: the same combined-occurrence ranking DLCS uses, taken three
// deep instead of one. A formula with fewer than three candidate
// variables (or none at all) fills the remaining cube dimensions with 0,
// a sentinel the caller skips rather than pre-assigning: there is no
// variable to split on, so those workers simply duplicate each other.
func pickCubeVars(ins *Instance) [3]int {
	top := topKByCombined(ins, 3)
	var vars [3]int
	for i, e := range top {
		if e.lit != 0 {
			vars[i] = e.lit.Variable()
		}
	}
	return vars
}

// RunAssignmentPortfolio is Mode B: one driver-side DLCS-style scan over
// the formula picks three high-degree variables, and eight workers each
// pre-assign one corner of the resulting cube before racing a RandDLIS
// search to completion.
func RunAssignmentPortfolio(ctx context.Context, logger hclog.Logger, problem [][]int) (*WorkerResult, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("portfolio").With("mode", "assignment", "workers", 8)

	scan := NewInstanceFromClauses(problem)
	vars := pickCubeVars(scan)
	logger.Debug("cube variables chosen", "vars", vars)

	cubes := allCubes()
	results := make(chan WorkerResult, len(cubes))
	g, gctx := errgroup.WithContext(context.Background())
	for i, c := range cubes {
		i, c := i, c
		wlog := logger.Named(fmt.Sprintf("worker-%d", i))
		g.Go(func() error {
			ins := NewInstanceFromClauses(problem)
			for j, v := range vars {
				if v == 0 {
					continue // fewer than 3 candidate variables; nothing to pre-seed here
				}
				lit := newLiteral(v)
				if !c[j] {
					lit = lit.Complement()
				}
				ins.Assign(lit)
			}
			label := fmt.Sprintf("cube#%d", i)
			res := runWorker(label, ins, NewRandDLIS(int64(100+i)))
			wlog.Debug("worker finished", "sat", res.Sat, "decisive", res.Decisive)
			select {
			case results <- res:
			case <-gctx.Done():
			}
			return nil
		})
	}

	best, err := collect(ctx, results, len(cubes))
	if err != nil {
		logger.Error("assignment portfolio failed", "error", err)
		return nil, err
	}
	logger.Info("assignment portfolio finished", "sat", best.Sat)
	return best, nil
}
