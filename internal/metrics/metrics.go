// Package metrics exposes prometheus counters and gauges for a
// compose run: entities absorbed, ids allocated, placements
// synthesized, and warnings raised. cmd/stepfuse's debug server
// registers these on its own mux and serves them at /metrics, mirroring
// the job pgraph's cmd/server does for query counters.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry is the package-level registry cmd/stepfuse registers
// against its own handler rather than the global default, so a compose
// run embedded as a library never mutates process-wide state.
var Registry = prometheus.NewRegistry()

var (
	EntitiesAbsorbed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stepfuse_entities_absorbed_total",
		Help: "Total entities absorbed from linked STEP files across all compose runs.",
	})

	IDsAllocated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stepfuse_ids_allocated_total",
		Help: "Total entity ids allocated by the merger across all compose runs.",
	})

	PlacementsSynthesized = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stepfuse_placements_synthesized_total",
		Help: "Total AXIS2_PLACEMENT_3D chains synthesized to attach absorbed geometry.",
	})

	WarningsRaised = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stepfuse_warnings_raised_total",
		Help: "Total non-fatal merge.Warning values raised across all compose runs.",
	})

	LastRunNodes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "stepfuse_last_run_nodes",
		Help: "Number of assembly tree nodes walked in the most recent compose run.",
	})
)

func init() {
	Registry.MustRegister(EntitiesAbsorbed, IDsAllocated, PlacementsSynthesized, WarningsRaised, LastRunNodes)
}

// Observe records the outcome of one compose run against the counters
// and gauges above. absorbed is the count of entities newly inserted
// via Merger.Absorb (not including synthesized product-structure
// entities); allocated is the total ids the merger handed out;
// placements is the number of AttachGeometryUnderTransform calls made;
// warnings is len(mg.Warnings); nodes is len(tree.Nodes).
func Observe(absorbed, allocated, placements, warnings, nodes int) {
	EntitiesAbsorbed.Add(float64(absorbed))
	IDsAllocated.Add(float64(allocated))
	PlacementsSynthesized.Add(float64(placements))
	WarningsRaised.Add(float64(warnings))
	LastRunNodes.Set(float64(nodes))
}
