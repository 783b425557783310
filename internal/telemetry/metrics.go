package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels shared by the move and command counters.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeUnknown  = "unknown"
)

// Metrics groups the world's Prometheus collectors under one registry.
type Metrics struct {
	Registry       *prometheus.Registry
	TilesGenerated *prometheus.CounterVec
	Moves          *prometheus.CounterVec
	Commands       *prometheus.CounterVec
	LevelUps       *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		TilesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "tiles_generated_total",
			Help:      "Grid cells materialised by lazy generation, by tile id.",
		}, []string{"tile"}),
		Moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "moves_total",
			Help:      "Player move attempts by outcome.",
		}, []string{"outcome"}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "commands_total",
			Help:      "Text commands handled by outcome.",
		}, []string{"outcome"}),
		LevelUps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "building_level_ups_total",
			Help:      "Building level-ups by building type.",
		}, []string{"building"}),
	}
	m.Registry.MustRegister(m.TilesGenerated, m.Moves, m.Commands, m.LevelUps)
	return m
}
