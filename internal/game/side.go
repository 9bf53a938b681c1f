package game

import (
	"math/rand/v2"
	"strings"
)

// DefaultPlayerName is used when a side is registered without members
const DefaultPlayerName = "Anonymous Player"

// Player is a member of a side
type Player struct {
	Name string
	Wins int
}

// NewPlayer creates a player, falling back to the default name
func NewPlayer(name string) *Player {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPlayerName
	}
	return &Player{Name: name}
}

// Side is one competing party. Its ID is stable for the whole session and is
// what ownership checks compare against.
type Side struct {
	ID      int
	Name    string
	Players []*Player
}

// NewSide creates a side from a list of player names. An empty list yields a
// single default player.
func NewSide(id int, name string, playerNames ...string) *Side {
	var players []*Player
	for _, n := range playerNames {
		if strings.TrimSpace(n) == "" {
			continue
		}
		players = append(players, NewPlayer(n))
	}
	if len(players) == 0 {
		players = []*Player{NewPlayer("")}
	}
	return &Side{
		ID:      id,
		Name:    name,
		Players: players,
	}
}

// RandomPlayer picks the acting member for a turn
func (s *Side) RandomPlayer(rng *rand.Rand) *Player {
	if len(s.Players) == 1 || rng == nil {
		return s.Players[0]
	}
	return s.Players[rng.IntN(len(s.Players))]
}

// RecordWin credits every member of the side
func (s *Side) RecordWin() {
	for _, p := range s.Players {
		p.Wins++
	}
}

func validateSides(sides []*Side) error {
	if len(sides) < 2 {
		return ErrInvalidSides
	}
	seen := make(map[int]struct{}, len(sides))
	for _, s := range sides {
		if s == nil {
			return ErrInvalidSides
		}
		if _, dup := seen[s.ID]; dup {
			return ErrInvalidSides
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}
