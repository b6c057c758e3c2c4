package memory

import (
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
)

const (
	LeagueIDDemo         = "citrus-demo-2025"
	DemoCommissionerUser = "user-1"
)

var seedCreatedAt = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:                 LeagueIDDemo,
			Name:               "Citrus Demo League",
			Season:             "2025-2026",
			CommissionerUserID: DemoCommissionerUser,
			RosterSize:         4,
			DraftRounds:        3,
			DraftType:          draft.TypeSerpentine,
			DraftStatus:        draft.StatusNotStarted,
			Weights:            scoring.NewWeightSchedule(scoring.DefaultWeights()),
			CreatedAt:          seedCreatedAt,
			UpdatedAt:          seedCreatedAt,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-1", LeagueID: LeagueIDDemo, OwnerUserID: "user-1", Name: "Orange Crush", CreatedAt: seedCreatedAt},
		{ID: "team-2", LeagueID: LeagueIDDemo, OwnerUserID: "user-2", Name: "Lime Lightning", CreatedAt: seedCreatedAt.Add(time.Minute)},
		{ID: "team-3", LeagueID: LeagueIDDemo, OwnerUserID: "user-3", Name: "Lemon Squeezers", CreatedAt: seedCreatedAt.Add(2 * time.Minute)},
		{ID: "team-4", LeagueID: LeagueIDDemo, OwnerUserID: "user-4", Name: "Grapefruit Grinders", CreatedAt: seedCreatedAt.Add(3 * time.Minute)},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "nhl-c-01", Name: "Connor McDavid", ProTeam: "EDM", Position: player.PositionCenter},
		{ID: "nhl-c-02", Name: "Nathan MacKinnon", ProTeam: "COL", Position: player.PositionCenter},
		{ID: "nhl-c-03", Name: "Auston Matthews", ProTeam: "TOR", Position: player.PositionCenter},
		{ID: "nhl-c-04", Name: "Leon Draisaitl", ProTeam: "EDM", Position: player.PositionCenter},
		{ID: "nhl-lw-01", Name: "Kirill Kaprizov", ProTeam: "MIN", Position: player.PositionLeftWing},
		{ID: "nhl-lw-02", Name: "Artemi Panarin", ProTeam: "NYR", Position: player.PositionLeftWing},
		{ID: "nhl-rw-01", Name: "Nikita Kucherov", ProTeam: "TBL", Position: player.PositionRightWing},
		{ID: "nhl-rw-02", Name: "David Pastrnak", ProTeam: "BOS", Position: player.PositionRightWing},
		{ID: "nhl-rw-03", Name: "Mitch Marner", ProTeam: "TOR", Position: player.PositionRightWing},
		{ID: "nhl-d-01", Name: "Cale Makar", ProTeam: "COL", Position: player.PositionDefense},
		{ID: "nhl-d-02", Name: "Quinn Hughes", ProTeam: "VAN", Position: player.PositionDefense},
		{ID: "nhl-d-03", Name: "Adam Fox", ProTeam: "NYR", Position: player.PositionDefense},
		{ID: "nhl-g-01", Name: "Igor Shesterkin", ProTeam: "NYR", Position: player.PositionGoaltender},
		{ID: "nhl-g-02", Name: "Connor Hellebuyck", ProTeam: "WPG", Position: player.PositionGoaltender},
		{ID: "nhl-g-03", Name: "Andrei Vasilevskiy", ProTeam: "TBL", Position: player.PositionGoaltender},
		{ID: "nhl-g-04", Name: "Jeremy Swayman", ProTeam: "BOS", Position: player.PositionGoaltender},
	}
}
