// Package beehive is a genetic-algorithm tour optimizer: bees leave the
// hive, visit every flower in a field exactly once and return, and the
// colony breeds shorter and shorter flight paths.
//
// What is inside?
//
//	A small, deterministic, seedable GA for the single-depot TSP:
//		• Tours (bees) as permutations of the flowers, fitness = closed walk length
//		• (μ+λ) elitist replacement with stable ranking
//		• Two crossovers: classic single split and two-point with gap repair
//		• Two mutations: swap and segment reversal, or a fair coin between them
//		• Best-ever snapshot, fitness history and a bounded lineage arena
//		• Optional 2-opt polish of the final tour
//
// Packages:
//
//	ga/        — tours, fitness, selection, crossover, mutation, population, run loop
//	matrix/    — dense pairwise distance table
//	loader/    — flower coordinates from .xlsx or .csv
//	chart/     — fitness curve and best-tour plots (gonum/plot)
//	genealogy/ — ancestry graph of a tour, Graphviz DOT export (gonum/graph)
//	config/    — YAML run parameters with legacy defaults
//	metrics/   — Prometheus collectors fed by a run observer
//	cmd/beehive — command-line driver
//
// Quick start:
//
//	e, _ := ga.NewEvaluator(ga.DefaultDepot, flowers, ga.Truncate)
//	p, _ := ga.NewPopulation(e, ga.WithSeed(42))
//	res, _ := ga.Run(p, ga.DefaultRunConfig())
//	fmt.Println(res.Best)
//
//	go run ./cmd/beehive -generations 200 -crossover two-point flowers.xlsx
package beehive
