package bench

import "math"

// aggregate folds samples[trial][config] into one Stats per config.
// Trials are visited in index order so float sums are reproducible.
func aggregate(configs []Config, samples [][]sample) []Stats {
	out := make([]Stats, len(configs))
	for i, c := range configs {
		var msSum, costSum float64
		var expSum int
		st := Stats{Name: c.Name, Weight: c.Weight, Trials: len(samples), MaxSubopt: math.NaN()}

		for _, row := range samples {
			sm := row[i]
			msSum += sm.millis
			expSum += sm.expanded
			if !sm.found {
				continue
			}
			st.Successes++
			costSum += sm.cost
			ratio := subopt(sm.cost, sm.optimal)
			if math.IsNaN(st.MaxSubopt) || ratio > st.MaxSubopt {
				st.MaxSubopt = ratio
			}
		}

		st.AvgMillis = mean(msSum, len(samples))
		st.AvgExpanded = mean(float64(expSum), len(samples))
		st.AvgCost = mean(costSum, st.Successes)
		out[i] = st
	}
	return out
}

// mean returns sum/n, or NaN when n is zero.
func mean(sum float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// subopt is cost/optimal; a zero-length optimum counts as exactly optimal.
func subopt(cost, optimal float64) float64 {
	if optimal == 0 {
		return 1
	}
	return cost / optimal
}
