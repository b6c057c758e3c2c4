package statsfeed

import (
	"strconv"
	"strings"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/playerstats"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

const playerIDPrefix = "nhl-"

type scheduleEnvelope struct {
	Games []scheduleGame `json:"games"`
}

type teamRef struct {
	Abbrev string `json:"abbrev"`
}

type scheduleGame struct {
	ID        int64   `json:"id"`
	StartTime string  `json:"startTimeUTC"`
	GameState string  `json:"gameState"`
	HomeTeam  teamRef `json:"homeTeam"`
	AwayTeam  teamRef `json:"awayTeam"`
}

func (g scheduleGame) toGame(date time.Time) (game.Game, bool) {
	if g.ID <= 0 {
		return game.Game{}, false
	}
	home := strings.ToUpper(strings.TrimSpace(g.HomeTeam.Abbrev))
	away := strings.ToUpper(strings.TrimSpace(g.AwayTeam.Abbrev))
	if home == "" || away == "" {
		return game.Game{}, false
	}

	out := game.Game{
		ID:       strconv.FormatInt(g.ID, 10),
		Date:     date,
		HomeTeam: home,
		AwayTeam: away,
		Status:   mapGameState(g.GameState),
	}
	if parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(g.StartTime)); err == nil {
		out.StartsAt = parsed.UTC()
	}
	return out, true
}

// mapGameState folds provider states onto the statuses the lock rule knows.
func mapGameState(state string) string {
	switch game.NormalizeStatus(state) {
	case "FUT", "PRE", game.StatusScheduled:
		return game.StatusScheduled
	case "LIVE", "CRIT":
		return game.StatusLive
	case "OFF", "FINAL":
		return game.StatusFinal
	case "PPD", game.StatusPostponed:
		return game.StatusPostponed
	case "CNCL", game.StatusCancelled:
		return game.StatusCancelled
	default:
		return game.NormalizeStatus(state)
	}
}

func hasBoxScore(status string) bool {
	return game.IsLiveStatus(status) || game.IsFinalStatus(status)
}

type boxScoreEnvelope struct {
	GameID      string      `json:"-"`
	ID          int64       `json:"id"`
	HomeTeam    teamRef     `json:"homeTeam"`
	AwayTeam    teamRef     `json:"awayTeam"`
	PlayerStats playerStats `json:"playerByGameStats"`
}

type playerStats struct {
	HomeTeam sideStats `json:"homeTeam"`
	AwayTeam sideStats `json:"awayTeam"`
}

type sideStats struct {
	Forwards []skaterLine `json:"forwards"`
	Defense  []skaterLine `json:"defense"`
	Goalies  []goalieLine `json:"goalies"`
}

type playerName struct {
	Default string `json:"default"`
}

type skaterLine struct {
	PlayerID          int64      `json:"playerId"`
	Name              playerName `json:"name"`
	Position          string     `json:"position"`
	Goals             int        `json:"goals"`
	Assists           int        `json:"assists"`
	PowerPlayPoints   int        `json:"powerPlayPoints"`
	ShortHandedPoints int        `json:"shortHandedPoints"`
	ShotsOnGoal       int        `json:"sog"`
	BlockedShots      int        `json:"blockedShots"`
	Hits              int        `json:"hits"`
	PenaltyMinutes    int        `json:"pim"`
}

type goalieLine struct {
	PlayerID     int64      `json:"playerId"`
	Name         playerName `json:"name"`
	Saves        int        `json:"saves"`
	GoalsAgainst int        `json:"goalsAgainst"`
	Decision     string     `json:"decision"`
}

func (b boxScoreEnvelope) flatten(date time.Time) ([]player.Player, []playerstats.DayStats) {
	players := make([]player.Player, 0, 40)
	stats := make([]playerstats.DayStats, 0, 40)

	sides := []struct {
		team  string
		lines sideStats
	}{
		{team: b.HomeTeam.Abbrev, lines: b.PlayerStats.HomeTeam},
		{team: b.AwayTeam.Abbrev, lines: b.PlayerStats.AwayTeam},
	}
	for _, side := range sides {
		team := strings.ToUpper(strings.TrimSpace(side.team))
		skaters := append(append([]skaterLine(nil), side.lines.Forwards...), side.lines.Defense...)
		for _, line := range skaters {
			if line.PlayerID <= 0 {
				continue
			}
			id := playerIDPrefix + strconv.FormatInt(line.PlayerID, 10)
			players = append(players, player.Player{
				ID:       id,
				Name:     strings.TrimSpace(line.Name.Default),
				ProTeam:  team,
				Position: mapPosition(line.Position),
			})
			stats = append(stats, playerstats.DayStats{
				PlayerID: id,
				Date:     date,
				GameID:   b.GameID,
				Stats: scoring.StatLine{
					scoring.StatGoals:             line.Goals,
					scoring.StatAssists:           line.Assists,
					scoring.StatPowerPlayPoints:   line.PowerPlayPoints,
					scoring.StatShortHandedPoints: line.ShortHandedPoints,
					scoring.StatShotsOnGoal:       line.ShotsOnGoal,
					scoring.StatBlockedShots:      line.BlockedShots,
					scoring.StatHits:              line.Hits,
					scoring.StatPenaltyMinutes:    line.PenaltyMinutes,
				},
			})
		}
		for _, line := range side.lines.Goalies {
			if line.PlayerID <= 0 {
				continue
			}
			id := playerIDPrefix + strconv.FormatInt(line.PlayerID, 10)
			won := strings.EqualFold(strings.TrimSpace(line.Decision), "W")
			players = append(players, player.Player{
				ID:       id,
				Name:     strings.TrimSpace(line.Name.Default),
				ProTeam:  team,
				Position: player.PositionGoaltender,
			})
			stats = append(stats, playerstats.DayStats{
				PlayerID: id,
				Date:     date,
				GameID:   b.GameID,
				Stats: scoring.StatLine{
					scoring.StatWins:         boolCount(won),
					scoring.StatSaves:        line.Saves,
					scoring.StatShutouts:     boolCount(won && line.GoalsAgainst == 0),
					scoring.StatGoalsAgainst: line.GoalsAgainst,
				},
			})
		}
	}
	return players, stats
}

func mapPosition(value string) player.Position {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "L", "LW":
		return player.PositionLeftWing
	case "R", "RW":
		return player.PositionRightWing
	case "D":
		return player.PositionDefense
	case "G":
		return player.PositionGoaltender
	default:
		return player.PositionCenter
	}
}

func boolCount(v bool) int {
	if v {
		return 1
	}
	return 0
}
