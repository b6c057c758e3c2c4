package scoring

import (
	"fmt"
	"sort"
)

// WeightVersion is a weight table in force from a given matchup week onward.
type WeightVersion struct {
	EffectiveFromWeek int     `json:"effectiveFromWeek"`
	Weights           Weights `json:"weights"`
}

// WeightSchedule is the per-league history of weight tables, ordered by week.
type WeightSchedule []WeightVersion

func NewWeightSchedule(initial Weights) WeightSchedule {
	return WeightSchedule{{EffectiveFromWeek: 1, Weights: initial}}
}

// ForWeek returns the latest version effective on or before week. A league
// without any version scores with DefaultWeights.
func (s WeightSchedule) ForWeek(week int) Weights {
	var (
		found bool
		out   Weights
	)
	for _, v := range s {
		if v.EffectiveFromWeek > week {
			break
		}
		out = v.Weights
		found = true
	}
	if !found {
		if len(s) > 0 {
			return s[0].Weights
		}
		return DefaultWeights()
	}
	return out
}

// Latest is the most recently scheduled table.
func (s WeightSchedule) Latest() Weights {
	if len(s) == 0 {
		return DefaultWeights()
	}
	return s[len(s)-1].Weights
}

// With schedules weights from fromWeek onward. Versions starting at or after
// fromWeek are replaced; earlier versions are kept untouched.
func (s WeightSchedule) With(fromWeek int, weights Weights) (WeightSchedule, error) {
	if fromWeek < 1 {
		return nil, fmt.Errorf("effective week must be >= 1, got %d", fromWeek)
	}

	out := make(WeightSchedule, 0, len(s)+1)
	for _, v := range s {
		if v.EffectiveFromWeek >= fromWeek {
			continue
		}
		out = append(out, v)
	}
	out = append(out, WeightVersion{EffectiveFromWeek: fromWeek, Weights: weights.Clone()})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveFromWeek < out[j].EffectiveFromWeek
	})
	return out, nil
}
