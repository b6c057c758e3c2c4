package scoring

// ComputeBreakdown returns the non-zero contributions for stats under weights
// and their total. ComputePoints is defined through this function so the two
// can never disagree.
func ComputeBreakdown(stats StatLine, isGoalie bool, weights Weights) Breakdown {
	statOrder := SkaterStats
	if isGoalie {
		statOrder = GoalieStats
	}
	table := weights.table(isGoalie)

	out := Breakdown{Contributions: make([]Contribution, 0, len(statOrder))}
	for _, stat := range statOrder {
		count := stats[stat]
		weight := table[stat]
		if count == 0 || weight == 0 {
			continue
		}
		subtotal := float64(count) * weight
		out.Contributions = append(out.Contributions, Contribution{
			Stat:     stat,
			Count:    count,
			Weight:   weight,
			Subtotal: subtotal,
		})
		out.Total += subtotal
	}
	return out
}

// ComputePoints is the weighted sum of stats. Stats without a weight add nothing.
func ComputePoints(stats StatLine, isGoalie bool, weights Weights) float64 {
	return ComputeBreakdown(stats, isGoalie, weights).Total
}
