package draft

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// EffectiveIndex maps a team's position in the frozen order to its position
// within round r (1-indexed).
func EffectiveIndex(round, index, teamCount int, draftType Type) int {
	if draftType == TypeSerpentine && round%2 == 0 {
		return teamCount - 1 - index
	}
	return index
}

// PickNumber is (r-1)*teamCount + effectiveIndex + 1.
func PickNumber(round, index, teamCount int, draftType Type) int {
	return (round-1)*teamCount + EffectiveIndex(round, index, teamCount, draftType) + 1
}

// SlotForPick inverts PickNumber, returning the round and the frozen-order
// index of the team owning pickNumber.
func SlotForPick(pickNumber, teamCount int, draftType Type) (round, index int) {
	zero := pickNumber - 1
	round = zero/teamCount + 1
	inRound := zero % teamCount
	// EffectiveIndex is an involution so it also maps back.
	return round, EffectiveIndex(round, inRound, teamCount, draftType)
}

// TotalPicks is the size of the board.
func TotalPicks(teamCount, rounds int) int {
	return teamCount * rounds
}

// TurnAt resolves which team owns pickNumber. ok is false outside the board.
func TurnAt(order []string, rounds int, draftType Type, pickNumber int) (Turn, bool) {
	teamCount := len(order)
	if teamCount == 0 || pickNumber < 1 || pickNumber > TotalPicks(teamCount, rounds) {
		return Turn{}, false
	}
	round, index := SlotForPick(pickNumber, teamCount, draftType)
	return Turn{PickNumber: pickNumber, Round: round, TeamID: order[index]}, true
}

// CurrentTurn derives the turn from the number of accepted picks. ok is false
// once the board is full.
func CurrentTurn(order []string, rounds int, draftType Type, pickCount int) (Turn, bool) {
	return TurnAt(order, rounds, draftType, pickCount+1)
}

// Board lists every slot in pick-number order.
func Board(order []string, rounds int, draftType Type) []Turn {
	total := TotalPicks(len(order), rounds)
	out := make([]Turn, 0, total)
	for n := 1; n <= total; n++ {
		turn, _ := TurnAt(order, rounds, draftType, n)
		out = append(out, turn)
	}
	return out
}

// RoundOrder is the sequence of teams picking in round r.
func RoundOrder(order []string, round int, draftType Type) []string {
	out := make([]string, len(order))
	for i, teamID := range order {
		out[EffectiveIndex(round, i, len(order), draftType)] = teamID
	}
	return out
}

// ValidateOrder checks that custom is a permutation of teamIDs.
func ValidateOrder(teamIDs, custom []string) error {
	if len(custom) != len(teamIDs) {
		return fmt.Errorf("%w: got %d teams, league has %d", ErrInvalidOrder, len(custom), len(teamIDs))
	}
	want := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		want[id] = struct{}{}
	}
	seen := make(map[string]struct{}, len(custom))
	for _, id := range custom {
		if _, ok := want[id]; !ok {
			return fmt.Errorf("%w: team %s is not in league", ErrInvalidOrder, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: team %s listed twice", ErrInvalidOrder, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// EffectiveOrder picks the order frozen at draft start: a custom order wins
// over randomization, which wins over team insertion order.
func EffectiveOrder(insertion, custom []string, randomize bool, rng *rand.Rand) ([]string, error) {
	if len(custom) > 0 {
		if err := ValidateOrder(insertion, custom); err != nil {
			return nil, err
		}
		return slices.Clone(custom), nil
	}

	out := slices.Clone(insertion)
	if randomize {
		shuffle := rand.Shuffle
		if rng != nil {
			shuffle = rng.Shuffle
		}
		shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out, nil
}

var transitions = map[Status][]Status{
	StatusNotStarted: {StatusLobby},
	StatusLobby:      {StatusActive},
	StatusActive:     {StatusPaused, StatusCompleted},
	StatusPaused:     {StatusActive},
}

// CanTransition reports whether from -> to is a legal move of the state machine.
func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

func ValidateTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
