// Package config holds the run parameters of the beehive command.
//
// Parameters come from three layers, later layers winning:
//
//  1. Default(): the legacy optimizer's constants.
//  2. An optional YAML file read by Load (unknown keys are rejected).
//  3. Command-line flags applied by the caller.
//
// Validate checks the merged result once; Options and RunConfig translate it
// for package ga.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/beehive/ga"
	"gopkg.in/yaml.v3"
)

// Point is a YAML-friendly coordinate pair.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Output names the files a run writes. Empty entries are skipped.
type Output struct {
	Dir       string `yaml:"dir"`
	Fitness   string `yaml:"fitness_chart"`
	Tour      string `yaml:"tour_chart"`
	Genealogy string `yaml:"genealogy"`
}

// Config is the full parameter set of one optimizer run.
type Config struct {
	Input          string `yaml:"input"`
	Population     int    `yaml:"population"`
	Elite          int    `yaml:"elite"`
	Generations    int    `yaml:"generations"`
	MutateEvery    int    `yaml:"mutate_every"`
	Depot          Point  `yaml:"depot"`
	Crossover      string `yaml:"crossover"`
	Mutation       string `yaml:"mutation"`
	Distance       string `yaml:"distance"`
	Seed           int64  `yaml:"seed"`
	Workers        int    `yaml:"workers"`
	LineageDepth   int    `yaml:"lineage_depth"`
	GenealogyDepth int    `yaml:"genealogy_depth"`
	Polish         bool   `yaml:"polish"`
	Output         Output `yaml:"output"`
	MetricsAddr    string `yaml:"metrics_addr"`
}

// Default returns the parameters of the legacy optimizer.
func Default() Config {
	return Config{
		Population:     ga.DefaultPopulationSize,
		Elite:          ga.DefaultEliteSize,
		Generations:    ga.DefaultGenerations,
		MutateEvery:    ga.DefaultMutateEvery,
		Depot:          Point{X: ga.DefaultDepot.X, Y: ga.DefaultDepot.Y},
		Crossover:      ga.SingleSplit{}.Name(),
		Mutation:       ga.CoinFlip{}.Name(),
		Distance:       ga.Truncate.String(),
		Workers:        1,
		LineageDepth:   ga.DefaultLineageDepth,
		GenealogyDepth: ga.DefaultLineageDepth,
		Output: Output{
			Dir:       ".",
			Fitness:   "fitness.png",
			Tour:      "best_tour.png",
			Genealogy: "genealogy.dot",
		},
	}
}

// Load reads a YAML file on top of Default. Keys absent from the file keep
// their default; unknown keys are an error. An empty file yields Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads YAML from r on top of Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	return cfg, nil
}

// Validate reports the first meaningless parameter, wrapped with
// ga.ErrInvalidConfig (or the ga parse sentinel for unknown names).
func (c Config) Validate() error {
	switch {
	case c.Population < 2:
		return fmt.Errorf("population %d < 2: %w", c.Population, ga.ErrInvalidConfig)
	case c.Elite < 2:
		return fmt.Errorf("elite %d < 2: %w", c.Elite, ga.ErrInvalidConfig)
	case c.Elite > c.Population:
		return fmt.Errorf("elite %d > population %d: %w", c.Elite, c.Population, ga.ErrInsufficientPopulation)
	case c.Generations < 0:
		return fmt.Errorf("generations %d < 0: %w", c.Generations, ga.ErrInvalidConfig)
	case c.MutateEvery < 0:
		return fmt.Errorf("mutate_every %d < 0: %w", c.MutateEvery, ga.ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers %d < 1: %w", c.Workers, ga.ErrInvalidConfig)
	case c.LineageDepth < 0:
		return fmt.Errorf("lineage_depth %d < 0: %w", c.LineageDepth, ga.ErrInvalidConfig)
	case c.GenealogyDepth < 0:
		return fmt.Errorf("genealogy_depth %d < 0: %w", c.GenealogyDepth, ga.ErrInvalidConfig)
	case c.LineageDepth > 0 && c.GenealogyDepth > c.LineageDepth:
		return fmt.Errorf("genealogy_depth %d > lineage_depth %d: %w",
			c.GenealogyDepth, c.LineageDepth, ga.ErrInvalidConfig)
	case strings.TrimSpace(c.Input) == "":
		return fmt.Errorf("input file not set: %w", ga.ErrInvalidConfig)
	}
	if _, err := ga.ParseCrossover(c.Crossover); err != nil {
		return fmt.Errorf("crossover: %w", err)
	}
	if _, err := ga.ParseMutation(c.Mutation); err != nil {
		return fmt.Errorf("mutation: %w", err)
	}
	if _, err := ga.ParseDistancePolicy(c.Distance); err != nil {
		return fmt.Errorf("distance: %w", err)
	}

	return nil
}

// DepotPoint returns the depot as a ga.Point.
func (c Config) DepotPoint() ga.Point { return ga.Point{X: c.Depot.X, Y: c.Depot.Y} }

// Policy returns the parsed distance policy.
func (c Config) Policy() (ga.DistancePolicy, error) {
	return ga.ParseDistancePolicy(c.Distance)
}

// Options translates c into population options.
func (c Config) Options() ([]ga.Option, error) {
	x, err := ga.ParseCrossover(c.Crossover)
	if err != nil {
		return nil, fmt.Errorf("crossover: %w", err)
	}
	m, err := ga.ParseMutation(c.Mutation)
	if err != nil {
		return nil, fmt.Errorf("mutation: %w", err)
	}

	return []ga.Option{
		ga.WithPopulationSize(c.Population),
		ga.WithEliteSize(c.Elite),
		ga.WithCrossover(x),
		ga.WithMutation(m),
		ga.WithSeed(c.Seed),
		ga.WithWorkers(c.Workers),
		ga.WithLineageDepth(c.LineageDepth),
	}, nil
}

// RunConfig returns the generation loop parameters.
func (c Config) RunConfig() ga.RunConfig {
	return ga.RunConfig{Generations: c.Generations, MutateEvery: c.MutateEvery}
}
