// Command beehive searches for a short closed tour that leaves the hive,
// visits every flower once and returns.
//
// Usage:
//
//	beehive [flags] [input.xlsx|input.csv]
//
// Parameters come from config.Default, then the -config YAML file, then
// flags. The run writes a fitness chart, a best-tour chart and a Graphviz
// genealogy of the best tour into -out, each prefixed with the run id.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/beehive/chart"
	"github.com/katalvlaran/beehive/config"
	"github.com/katalvlaran/beehive/ga"
	"github.com/katalvlaran/beehive/genealogy"
	"github.com/katalvlaran/beehive/loader"
	"github.com/katalvlaran/beehive/metrics"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML configuration file")
		verbose = flag.Bool("v", false, "log every generation")
	)
	ov := bindFlags(flag.CommandLine)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	if flag.NArg() > 0 {
		cfg.Input = flag.Arg(0)
	}
	ov.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := run(cfg, *verbose, os.Stdout); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}

// run executes one optimizer run and writes the report to w.
func run(cfg config.Config, verbose bool, w io.Writer) error {
	runID := uuid.New().String()

	pts, err := loader.Load(cfg.Input)
	if err != nil {
		return err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	eval, err := ga.NewEvaluator(cfg.DepotPoint(), pts, policy)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	pop, err := ga.NewPopulation(eval, opts...)
	if err != nil {
		return err
	}
	log.Printf("run %s: %d flowers from %s, population %d, elite %d, %d generations",
		runID, eval.Len(), cfg.Input, cfg.Population, cfg.Elite, cfg.Generations)

	var observers []ga.Observer
	if verbose {
		observers = append(observers, ga.ObserverFunc(logGeneration))
	}
	if cfg.MetricsAddr != "" {
		m := metrics.New()
		observers = append(observers, m)
		stop := serveMetrics(cfg.MetricsAddr, m)
		defer stop()
	}

	start := time.Now()
	res, err := ga.Run(pop, cfg.RunConfig(), observers...)
	if err != nil {
		return err
	}
	log.Printf("run %s: finished in %v", runID, time.Since(start))

	fmt.Fprintln(w, report(runID, res))
	if res.Best == nil {
		log.Printf("run %s: no generation completed, skipping outputs", runID)
		return nil
	}

	tour := res.Best.Stops()
	if cfg.Polish {
		before, _ := res.Best.Fitness()
		polished, length, err := eval.Polish(tour, 0)
		if err != nil {
			return err
		}
		log.Printf("run %s: 2-opt polish %.2f -> %.2f", runID, before, length)
		fmt.Fprintf(w, "\nPOLISHED LENGTH %.2f\n", length)
		tour = polished
	}

	return writeOutputs(cfg, runID, res, tour)
}

func logGeneration(s ga.GenerationStats) {
	if s.Mutated {
		log.Printf("generation %d: mutated bee %d", s.Generation, s.MutatedID)
	}
	log.Printf("generation %d: size %d mean %.2f min %.2f best %.2f",
		s.Generation, s.Size, s.Mean, s.Min, s.BestEver)
}

// serveMetrics exposes m on addr until the returned stop function runs.
func serveMetrics(addr string, m *metrics.Metrics) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("metrics listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server error: %v", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("metrics shutdown: %v", err)
		}
	}
}

// outputPath prefixes name with the first block of the run id.
func outputPath(dir, runID, name string) string {
	prefix := runID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}

	return filepath.Join(dir, prefix+"_"+name)
}

// writeOutputs stores the charts and the genealogy of the best tour.
// tour is the order drawn in the tour chart.
func writeOutputs(cfg config.Config, runID string, res ga.Result, tour []ga.Point) error {
	out := cfg.Output
	if out.Fitness == "" && out.Tour == "" && out.Genealogy == "" {
		return nil
	}
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	if out.Fitness != "" {
		path := outputPath(out.Dir, runID, out.Fitness)
		if err := chart.FitnessCurve(res.Stats, path); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	if out.Tour != "" {
		path := outputPath(out.Dir, runID, out.Tour)
		if err := chart.BestTour(res.Depot, tour, path); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	if out.Genealogy != "" {
		depth := min(cfg.GenealogyDepth, cfg.Generations)
		tree, err := genealogy.Build(res.Lineage, res.Best.ID(), depth)
		if err != nil {
			return err
		}
		b, err := tree.DOT()
		if err != nil {
			return err
		}
		path := outputPath(out.Dir, runID, out.Genealogy)
		if err = os.WriteFile(path, b, 0o644); err != nil {
			return fmt.Errorf("genealogy: %w", err)
		}
		log.Printf("wrote %s (%d bees)", path, tree.Len())
	}

	return nil
}
