package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
)

type ListPlayersInput struct {
	LeagueID string
	Position player.Position
	// AvailableOnly hides players already drafted in the league.
	AvailableOnly bool
}

type PlayerService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
	draftRepo  draft.Repository
}

func NewPlayerService(leagueRepo league.Repository, playerRepo player.Repository, draftRepo draft.Repository) *PlayerService {
	return &PlayerService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		draftRepo:  draftRepo,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, input ListPlayersInput) ([]player.Player, error) {
	ctx, span := startSpan(ctx, "PlayerService.ListPlayers", leagueAttr(input.LeagueID))
	defer span.End()

	l, err := loadLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return nil, err
	}
	position := player.Position(strings.ToUpper(strings.TrimSpace(string(input.Position))))
	if position != "" {
		if _, ok := player.AllPositions[position]; !ok {
			return nil, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, input.Position)
		}
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	var drafted map[string]struct{}
	if input.AvailableOnly {
		picks, err := s.draftRepo.ListPicks(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("list picks: %w", err)
		}
		drafted = draftedSet(picks)
	}

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if position != "" && p.Position != position {
			continue
		}
		if _, taken := drafted[p.ID]; taken {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return p, nil
}
