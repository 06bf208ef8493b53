package main

import (
	"flag"

	"github.com/katalvlaran/beehive/config"
)

// overrides binds flags to a scratch Config and copies only the flags the
// user actually set onto the loaded configuration.
type overrides struct {
	fs    *flag.FlagSet
	val   config.Config
	copyf map[string]func(dst, src *config.Config)
}

func bindFlags(fs *flag.FlagSet) *overrides {
	o := &overrides{fs: fs, val: config.Default(), copyf: make(map[string]func(dst, src *config.Config))}
	v := &o.val

	fs.StringVar(&v.Input, "input", v.Input, "flower coordinates (.xlsx or .csv)")
	o.on("input", func(d, s *config.Config) { d.Input = s.Input })
	fs.IntVar(&v.Population, "population", v.Population, "number of founder tours")
	o.on("population", func(d, s *config.Config) { d.Population = s.Population })
	fs.IntVar(&v.Elite, "elite", v.Elite, "tours kept and bred each generation")
	o.on("elite", func(d, s *config.Config) { d.Elite = s.Elite })
	fs.IntVar(&v.Generations, "generations", v.Generations, "number of generations")
	o.on("generations", func(d, s *config.Config) { d.Generations = s.Generations })
	fs.IntVar(&v.MutateEvery, "mutate-every", v.MutateEvery, "mutate before every k-th generation (0 disables)")
	o.on("mutate-every", func(d, s *config.Config) { d.MutateEvery = s.MutateEvery })
	fs.Float64Var(&v.Depot.X, "depot-x", v.Depot.X, "hive x coordinate")
	o.on("depot-x", func(d, s *config.Config) { d.Depot.X = s.Depot.X })
	fs.Float64Var(&v.Depot.Y, "depot-y", v.Depot.Y, "hive y coordinate")
	o.on("depot-y", func(d, s *config.Config) { d.Depot.Y = s.Depot.Y })
	fs.StringVar(&v.Crossover, "crossover", v.Crossover, "crossover strategy: classic or two-point")
	o.on("crossover", func(d, s *config.Config) { d.Crossover = s.Crossover })
	fs.StringVar(&v.Mutation, "mutation", v.Mutation, "mutation operator: coin-flip, swap or reverse")
	o.on("mutation", func(d, s *config.Config) { d.Mutation = s.Mutation })
	fs.StringVar(&v.Distance, "distance", v.Distance, "per-edge distance: truncate or exact")
	o.on("distance", func(d, s *config.Config) { d.Distance = s.Distance })
	fs.Int64Var(&v.Seed, "seed", v.Seed, "random seed (0 uses the fixed default)")
	o.on("seed", func(d, s *config.Config) { d.Seed = s.Seed })
	fs.IntVar(&v.Workers, "workers", v.Workers, "goroutines for evaluation and crossover")
	o.on("workers", func(d, s *config.Config) { d.Workers = s.Workers })
	fs.IntVar(&v.LineageDepth, "lineage-depth", v.LineageDepth, "generations of ancestry kept (0 keeps all)")
	o.on("lineage-depth", func(d, s *config.Config) { d.LineageDepth = s.LineageDepth })
	fs.IntVar(&v.GenealogyDepth, "genealogy-depth", v.GenealogyDepth, "generations drawn in the genealogy")
	o.on("genealogy-depth", func(d, s *config.Config) { d.GenealogyDepth = s.GenealogyDepth })
	fs.BoolVar(&v.Polish, "polish", v.Polish, "apply 2-opt to the best tour before writing outputs")
	o.on("polish", func(d, s *config.Config) { d.Polish = s.Polish })
	fs.StringVar(&v.Output.Dir, "out", v.Output.Dir, "output directory")
	o.on("out", func(d, s *config.Config) { d.Output.Dir = s.Output.Dir })
	fs.StringVar(&v.MetricsAddr, "metrics-addr", v.MetricsAddr, "serve Prometheus metrics on this address during the run")
	o.on("metrics-addr", func(d, s *config.Config) { d.MetricsAddr = s.MetricsAddr })

	return o
}

func (o *overrides) on(name string, f func(dst, src *config.Config)) { o.copyf[name] = f }

// apply copies every explicitly set flag onto cfg.
func (o *overrides) apply(cfg *config.Config) {
	o.fs.Visit(func(f *flag.Flag) {
		if cp, ok := o.copyf[f.Name]; ok {
			cp(cfg, &o.val)
		}
	})
}
