package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/katalvlaran/beehive/ga"
)

// report renders the per-generation statistics and the best tour.
func report(runID string, res ga.Result) string {
	gens := uitable.New()
	gens.MaxColWidth = 40
	gens.Wrap = false
	gens.AddRow("GENERATION", "SIZE", "MEAN", "STDDEV", "MIN", "MAX", "BEST EVER", "MUTATED")
	for _, s := range res.Stats {
		mutated := "-"
		if s.Mutated {
			mutated = fmt.Sprintf("bee %d", s.MutatedID)
		}
		gens.AddRow(s.Generation, s.Size,
			fmt.Sprintf("%.2f", s.Mean), fmt.Sprintf("%.2f", s.StdDev),
			fmt.Sprintf("%.2f", s.Min), fmt.Sprintf("%.2f", s.Max),
			fmt.Sprintf("%.2f", s.BestEver), mutated)
	}

	summary := uitable.New()
	summary.MaxColWidth = 120
	summary.Wrap = true
	summary.AddRow("RUN", runID)
	summary.AddRow("HIVE", res.Depot.String())
	if res.Best == nil {
		summary.AddRow("BEST BEE", "none")
	} else {
		f, _ := res.Best.Fitness()
		stops := res.Best.Stops()
		path := make([]string, 0, len(stops)+2)
		path = append(path, "hive")
		for _, p := range stops {
			path = append(path, p.String())
		}
		path = append(path, "hive")

		summary.AddRow("BEST BEE", fmt.Sprintf("Bee %d (generation %d)", res.Best.ID(), res.Best.Generation()))
		summary.AddRow("LENGTH", fmt.Sprintf("%.2f", f))
		summary.AddRow("FLOWERS", len(stops))
		summary.AddRow("PATH", strings.Join(path, " -> "))
	}

	return gens.String() + "\n\n" + summary.String()
}
