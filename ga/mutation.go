package ga

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// Mutation perturbs a visiting order in place. Orders with fewer than two
// stops are left unchanged.
type Mutation interface {
	Name() string
	Mutate(stops []Point, r *rand.Rand)
}

// Swap exchanges the points at two distinct random positions.
type Swap struct{}

// Name implements Mutation.
func (Swap) Name() string { return "swap" }

// Mutate implements Mutation. O(1).
func (Swap) Mutate(stops []Point, r *rand.Rand) {
	if len(stops) < 2 {
		return
	}
	i, j := distinctPair(len(stops), r)
	stops[i], stops[j] = stops[j], stops[i]
}

// Reverse reverses the inclusive segment between two distinct random positions.
type Reverse struct{}

// Name implements Mutation.
func (Reverse) Name() string { return "reverse" }

// Mutate implements Mutation. O(j-i).
func (Reverse) Mutate(stops []Point, r *rand.Rand) {
	if len(stops) < 2 {
		return
	}
	i, j := distinctPair(len(stops), r)
	if i > j {
		i, j = j, i
	}
	slices.Reverse(stops[i : j+1])
}

// CoinFlip applies Swap or Reverse, chosen by an unbiased coin on every call.
type CoinFlip struct{}

// Name implements Mutation.
func (CoinFlip) Name() string { return "coin-flip" }

// Mutate implements Mutation.
func (CoinFlip) Mutate(stops []Point, r *rand.Rand) {
	if r.Intn(2) == 0 {
		Swap{}.Mutate(stops, r)
		return
	}
	Reverse{}.Mutate(stops, r)
}

// ParseMutation maps an operator name to its Mutation.
// Accepted: "coin-flip", "swap", "reverse" (case-insensitive).
func ParseMutation(name string) (Mutation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "coin-flip", "coinflip", "coin":
		return CoinFlip{}, nil
	case "swap":
		return Swap{}, nil
	case "reverse", "inversion":
		return Reverse{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMutation)
	}
}
