// Package metrics exposes optimizer progress as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/katalvlaran/beehive/ga"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the optimizer collectors and the registry they live on.
type Metrics struct {
	// Registry is the dedicated registry for the run
	Registry *prometheus.Registry
	// Generations counts completed generations
	Generations prometheus.Counter
	// Mutations counts mutations applied before a generation
	Mutations prometheus.Counter
	// BestFitness is the best-ever tour length
	BestFitness prometheus.Gauge
	// MeanFitness is the mean tour length of the latest generation
	MeanFitness prometheus.Gauge
	// PopulationSize is the member count after the latest replacement
	PopulationSize prometheus.Gauge
}

// New creates the collectors on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Generations: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "beehive_generations_total", Help: "Completed generations."},
		),
		Mutations: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "beehive_mutations_total", Help: "Mutations applied before a generation."},
		),
		BestFitness: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "beehive_best_fitness", Help: "Best-ever tour length."},
		),
		MeanFitness: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "beehive_mean_fitness", Help: "Mean tour length of the latest generation."},
		),
		PopulationSize: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "beehive_population_size", Help: "Members after the latest replacement."},
		),
	}
	m.Registry.MustRegister(m.Generations, m.Mutations, m.BestFitness, m.MeanFitness, m.PopulationSize)
	// Go/process collectors on our registry
	m.Registry.MustRegister(collectors.NewGoCollector())
	m.Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// ObserveGeneration implements ga.Observer.
func (m *Metrics) ObserveGeneration(s ga.GenerationStats) {
	m.Generations.Inc()
	if s.Mutated {
		m.Mutations.Inc()
	}
	m.BestFitness.Set(s.BestEver)
	m.MeanFitness.Set(s.Mean)
	m.PopulationSize.Set(float64(s.Size))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

var _ ga.Observer = (*Metrics)(nil)
