package solver

import (
	"sync"
	"time"

	"github.com/hashicorp/go-metrics"
)

const (
	metricsInterval = 10 * time.Second
	metricsRetain   = time.Minute
)

// The global in-memory sink is installed lazily, the first time any counter fires. Tests
// that never touch it keep running against metrics' package-level no-op
// default, same as leaving a nomad agent's telemetry stanza unconfigured.
var metricsOnce sync.Once

func ensureMetrics() {
	metricsOnce.Do(func() {
		conf := metrics.DefaultConfig("dpll")
		conf.EnableHostname = false
		conf.EnableRuntimeMetrics = false
		sink := metrics.NewInmemSink(metricsInterval, metricsRetain)
		if _, err := metrics.NewGlobal(conf, sink); err != nil {
			// NewGlobal only fails on a malformed config; DefaultConfig
			// never produces one, but if it somehow did there is nothing
			// sane to do besides leave the package-level no-op sink in
			// place.
			return
		}
	})
}

func recordDecision() {
	ensureMetrics()
	metrics.IncrCounter([]string{"search", "decisions"}, 1)
}

func recordConflict() {
	ensureMetrics()
	metrics.IncrCounter([]string{"search", "conflicts"}, 1)
}

// recordWorkerResult is called once per Portfolio Driver worker (portfolio.go)
// with the heuristic or cube assignment that produced it, tagged so an
// operator can tell which strategy is winning races across many runs.
func recordWorkerResult(label string, sat bool) {
	ensureMetrics()
	result := "unsat"
	if sat {
		result = "sat"
	}
	metrics.IncrCounterWithLabels([]string{"portfolio", "worker", "result"}, 1,
		[]metrics.Label{{Name: "strategy", Value: label}, {Name: "result", Value: result}})
}
