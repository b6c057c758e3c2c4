package player

import "fmt"

// Position is a hockey roster position.
type Position string

const (
	PositionCenter     Position = "C"
	PositionLeftWing   Position = "LW"
	PositionRightWing  Position = "RW"
	PositionDefense    Position = "D"
	PositionGoaltender Position = "G"
)

var AllPositions = map[Position]struct{}{
	PositionCenter:     {},
	PositionLeftWing:   {},
	PositionRightWing:  {},
	PositionDefense:    {},
	PositionGoaltender: {},
}

// Player is a draftable NHL player.
type Player struct {
	ID       string
	Name     string
	ProTeam  string
	Position Position
}

func (p Player) IsGoalie() bool {
	return p.Position == PositionGoaltender
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.ProTeam == "" {
		return fmt.Errorf("player pro team is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
