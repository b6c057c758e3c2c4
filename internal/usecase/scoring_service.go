package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

type CalculatePointsInput struct {
	Stats    scoring.StatLine
	IsGoalie bool
	// Weights overrides league weights when set.
	Weights *scoring.Weights
	// LeagueID and Week select the league weights in force for that week.
	LeagueID string
	Week     int
}

type ScoringService struct {
	leagueRepo league.Repository
}

func NewScoringService(leagueRepo league.Repository) *ScoringService {
	return &ScoringService{leagueRepo: leagueRepo}
}

// Calculate scores one stat line. Without explicit weights or a league the
// default tables apply.
func (s *ScoringService) Calculate(ctx context.Context, input CalculatePointsInput) (scoring.Breakdown, error) {
	for stat, count := range input.Stats {
		if count < 0 {
			return scoring.Breakdown{}, fmt.Errorf("%w: stat %s cannot be negative", ErrInvalidInput, stat)
		}
	}

	weights, err := s.weightsFor(ctx, input)
	if err != nil {
		return scoring.Breakdown{}, err
	}
	return scoring.ComputeBreakdown(input.Stats, input.IsGoalie, weights), nil
}

func (s *ScoringService) weightsFor(ctx context.Context, input CalculatePointsInput) (scoring.Weights, error) {
	if input.Weights != nil {
		if err := validateWeights(*input.Weights); err != nil {
			return scoring.Weights{}, err
		}
		return *input.Weights, nil
	}
	if strings.TrimSpace(input.LeagueID) == "" {
		return scoring.DefaultWeights(), nil
	}

	l, err := loadLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return scoring.Weights{}, err
	}
	if input.Week > 0 {
		return l.Weights.ForWeek(input.Week), nil
	}
	return l.Weights.Latest(), nil
}
